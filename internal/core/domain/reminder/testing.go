package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type FakeStore struct {
	LoadError error
	SaveError error
	LoadCount int
	SaveCount int
	byOwner   map[Owner][]Reminder
	lock      sync.Mutex
}

func NewFakeStore() *FakeStore {
	return &FakeStore{byOwner: make(map[Owner][]Reminder)}
}

func (s *FakeStore) Load(ctx context.Context, owner Owner) []Reminder {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.LoadCount++
	stored := s.byOwner[owner]
	result := make([]Reminder, len(stored))
	copy(result, stored)
	return result
}

func (s *FakeStore) LoadForUpdate(ctx context.Context, owner Owner) ([]Reminder, error) {
	if s.LoadError != nil {
		return nil, s.LoadError
	}
	return s.Load(ctx, owner), nil
}

func (s *FakeStore) Save(ctx context.Context, owner Owner, reminders []Reminder) error {
	if s.SaveError != nil {
		return s.SaveError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.SaveCount++
	stored := make([]Reminder, len(reminders))
	copy(stored, reminders)
	s.byOwner[owner] = stored
	return nil
}

// Put seeds the store without counting a save.
func (s *FakeStore) Put(owner Owner, reminders ...Reminder) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.byOwner[owner] = reminders
}

type FakeIDGenerator struct {
	next int
	lock sync.Mutex
}

func NewFakeIDGenerator() *FakeIDGenerator {
	return &FakeIDGenerator{}
}

func (g *FakeIDGenerator) GenerateID() ID {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.next++
	return ID(fmt.Sprintf("%d", g.next))
}

type FakeLocker struct {
	Locked []Owner
	lock   sync.Mutex
}

func NewFakeLocker() *FakeLocker {
	return &FakeLocker{}
}

func (l *FakeLocker) Lock(owner Owner) func() {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.Locked = append(l.Locked, owner)
	return func() {}
}

type FakeFireLog struct {
	fired map[string]struct{}
	lock  sync.Mutex
}

func NewFakeFireLog() *FakeFireLog {
	return &FakeFireLog{fired: make(map[string]struct{})}
}

func (l *FakeFireLog) MarkFired(owner Owner, id ID, minute time.Time) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	key := fmt.Sprintf("%s/%s/%d", owner, id, Minute(minute).Unix())
	if _, ok := l.fired[key]; ok {
		return false
	}
	l.fired[key] = struct{}{}
	return true
}
