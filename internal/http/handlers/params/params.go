package params

import (
	"errors"
	"healthmate/internal/core/domain/reminder"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
)

var ErrInvalidTimezone = errors.New("invalid timezone")

func ProfileID(r *http.Request) reminder.ProfileID {
	return reminder.ProfileID(chi.URLParam(r, "profileID"))
}

func ReminderID(r *http.Request) reminder.ID {
	return reminder.ID(chi.URLParam(r, "reminderID"))
}

// Location reads the IANA zone from the tz query parameter. Reminder times
// are wall-clock times of the client, so the zone travels with the request.
func Location(r *http.Request) (*time.Location, error) {
	tz := r.URL.Query().Get("tz")
	if tz == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}
