package kv

import (
	"context"
	"sync"
)

type FakeStore struct {
	GetError error
	SetError error
	Values   map[string][]byte
	SetCount int
	lock     sync.Mutex
}

func NewFakeStore() *FakeStore {
	return &FakeStore{Values: make(map[string][]byte)}
}

func (s *FakeStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.GetError != nil {
		return nil, s.GetError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	value, ok := s.Values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

func (s *FakeStore) Set(ctx context.Context, key string, value []byte) error {
	if s.SetError != nil {
		return s.SetError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Values[key] = value
	s.SetCount++
	return nil
}
