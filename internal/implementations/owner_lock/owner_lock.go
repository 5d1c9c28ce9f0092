package ownerlock

import (
	"healthmate/internal/core/domain/reminder"
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// Mutexes holds one mutex per owner while anyone waits on or holds it.
type Mutexes struct {
	byOwner map[reminder.Owner]*entry
	lock    sync.Mutex
}

func New() *Mutexes {
	return &Mutexes{byOwner: make(map[reminder.Owner]*entry)}
}

func (m *Mutexes) Lock(owner reminder.Owner) func() {
	m.lock.Lock()
	en, ok := m.byOwner[owner]
	if !ok {
		en = &entry{}
		m.byOwner[owner] = en
	}
	en.refs++
	m.lock.Unlock()

	en.mu.Lock()
	return func() {
		en.mu.Unlock()
		m.lock.Lock()
		en.refs--
		if en.refs == 0 {
			delete(m.byOwner, owner)
		}
		m.lock.Unlock()
	}
}

func (m *Mutexes) size() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.byOwner)
}
