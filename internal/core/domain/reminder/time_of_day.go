package reminder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	meridiemAM = "AM"
	meridiemPM = "PM"
)

// Hours 0 and 00 are accepted alongside 1 to 12 and read as 12.
var twelveHourClock = regexp.MustCompile(`^(0?[0-9]|1[0-2]):[0-5][0-9] (AM|PM)$`)

// TimeOfDay is a 24-hour wall-clock time.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTime parses a "H:MM AM|PM" string and converts it to 24-hour form.
func ParseTime(value string) (TimeOfDay, error) {
	if !twelveHourClock.MatchString(value) {
		return TimeOfDay{}, ErrInvalidTime
	}
	parts := strings.Split(value, " ")
	t, ok := normalize(parts[0], parts[1])
	if !ok {
		return TimeOfDay{}, ErrInvalidTime
	}
	return t, nil
}

// NormalizeTime converts a stored time string to 24-hour form. Anything that
// cannot be read falls back to midnight. A marker other than AM or PM leaves
// the hour as written.
func NormalizeTime(value string) TimeOfDay {
	parts := strings.Split(value, " ")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return TimeOfDay{}
	}
	t, ok := normalize(parts[0], parts[1])
	if !ok {
		return TimeOfDay{}
	}
	return t
}

func normalize(clock string, meridiem string) (t TimeOfDay, ok bool) {
	hm := strings.Split(clock, ":")
	if len(hm) != 2 {
		return t, false
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return t, false
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return t, false
	}

	switch {
	case meridiem == meridiemPM && hour < 12:
		hour += 12
	case meridiem == meridiemAM && hour == 12:
		hour = 0
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return t, false
	}
	return TimeOfDay{Hour: hour, Minute: minute}, true
}
