package firelog

import (
	"healthmate/internal/core/domain/reminder"
	"sync"
	"time"
)

type key struct {
	owner reminder.Owner
	id    reminder.ID
}

// Memory keeps the last fired minute per reminder. Entries older than the
// marked minute are dropped on each call.
type Memory struct {
	fired map[key]time.Time
	lock  sync.Mutex
}

func NewMemory() *Memory {
	return &Memory{fired: make(map[key]time.Time)}
}

func (m *Memory) MarkFired(owner reminder.Owner, id reminder.ID, at time.Time) bool {
	minute := reminder.Minute(at)
	m.lock.Lock()
	defer m.lock.Unlock()

	for k, firedAt := range m.fired {
		if firedAt.Before(minute) {
			delete(m.fired, k)
		}
	}

	k := key{owner: owner, id: id}
	if firedAt, ok := m.fired[k]; ok && firedAt.Equal(minute) {
		return false
	}
	m.fired[k] = minute
	return true
}
