package reminder

import "time"

// FireLog remembers dispatched occurrences. MarkFired reports false when the
// reminder was already marked for the same minute.
type FireLog interface {
	MarkFired(owner Owner, id ID, minute time.Time) bool
}

// Minute truncates t to the start of its wall-clock minute.
func Minute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}
