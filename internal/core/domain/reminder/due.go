package reminder

import (
	c "healthmate/internal/core/domain/common"
	"time"

	"github.com/golang-module/carbon/v2"
)

// IsDue reports whether the reminder fires at the minute of now. Only an
// exact hour and minute match counts; a missed minute is not caught up.
func IsDue(r Reminder, now time.Time) bool {
	if !r.IsActive {
		return false
	}
	if !r.Days.Has(now.Weekday()) {
		return false
	}
	at := NormalizeTime(r.Time)
	return now.Hour() == at.Hour && now.Minute() == at.Minute
}

// NextOccurrence returns the first minute strictly after the given moment at
// which the reminder is due, in the location of after.
func NextOccurrence(r Reminder, after time.Time) c.Optional[time.Time] {
	if !r.IsActive || !r.Days.Any() {
		return c.Optional[time.Time]{}
	}
	at := NormalizeTime(r.Time)
	loc := after.Location()
	midnight := time.Date(after.Year(), after.Month(), after.Day(), 0, 0, 0, 0, loc)
	for i := 0; i <= 7; i++ {
		day := carbon.Time2Carbon(midnight).AddDays(i).Carbon2Time().In(loc)
		candidate := time.Date(day.Year(), day.Month(), day.Day(), at.Hour, at.Minute, 0, 0, loc)
		if candidate.After(after) && r.Days.Has(candidate.Weekday()) {
			return c.NewOptional(candidate, true)
		}
	}
	return c.Optional[time.Time]{}
}
