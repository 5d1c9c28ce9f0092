package reminder

import (
	"context"
	"fmt"
)

const DefaultNamespace = "healthMate"

// Store persists whole reminder collections. Load never fails: a missing or
// unreadable collection is returned as empty. LoadForUpdate is used before a
// whole-collection Save and returns backend read errors instead of an empty
// collection; a missing or malformed value is still empty.
type Store interface {
	Load(ctx context.Context, owner Owner) []Reminder
	LoadForUpdate(ctx context.Context, owner Owner) ([]Reminder, error)
	Save(ctx context.Context, owner Owner, reminders []Reminder) error
}

func Key(namespace string, owner Owner) string {
	return fmt.Sprintf("%s_%s_profile_%s_reminders", namespace, owner.UserID, owner.ProfileID)
}

func IndexOf(reminders []Reminder, id ID) int {
	for ix, r := range reminders {
		if r.ID == id {
			return ix
		}
	}
	return -1
}

// Without returns a new collection without the reminder with the given ID,
// keeping the order of the rest.
func Without(reminders []Reminder, id ID) ([]Reminder, bool) {
	ix := IndexOf(reminders, id)
	if ix < 0 {
		return reminders, false
	}
	result := make([]Reminder, 0, len(reminders)-1)
	result = append(result, reminders[:ix]...)
	result = append(result, reminders[ix+1:]...)
	return result, true
}
