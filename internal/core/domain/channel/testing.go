package channel

import (
	"context"
	"healthmate/internal/core/domain/user"
	"sync"
)

type FakeRepository struct {
	GetError error
	SetError error
	byUser   map[user.ID]Settings
	lock     sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{byUser: make(map[user.ID]Settings)}
}

func (r *FakeRepository) Get(ctx context.Context, userID user.ID) (Settings, error) {
	if r.GetError != nil {
		return nil, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	settings, ok := r.byUser[userID]
	if !ok {
		return nil, ErrChannelNotSet
	}
	return settings, nil
}

func (r *FakeRepository) Set(ctx context.Context, userID user.ID, settings Settings) error {
	if r.SetError != nil {
		return r.SetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.byUser[userID] = settings
	return nil
}
