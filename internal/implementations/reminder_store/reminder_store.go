package reminderstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/kv"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/reminder"
)

// KVStore keeps each owner's reminders as one JSON array under a single key.
type KVStore struct {
	log       logging.Logger
	kv        kv.Store
	namespace string
}

func New(log logging.Logger, store kv.Store, namespace string) *KVStore {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if namespace == "" {
		panic(e.NewEmptyArgumentError("namespace"))
	}
	return &KVStore{log: log, kv: store, namespace: namespace}
}

func (s *KVStore) Load(ctx context.Context, owner reminder.Owner) []reminder.Reminder {
	reminders, err := s.LoadForUpdate(ctx, owner)
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not read reminders.",
			logging.Entry("key", reminder.Key(s.namespace, owner)),
			logging.Entry("err", err),
		)
		return []reminder.Reminder{}
	}
	return reminders
}

func (s *KVStore) LoadForUpdate(ctx context.Context, owner reminder.Owner) ([]reminder.Reminder, error) {
	key := reminder.Key(s.namespace, owner)
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []reminder.Reminder{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reminder.ErrStoreUnavailable, err)
	}

	var reminders []reminder.Reminder
	if err := json.Unmarshal(data, &reminders); err != nil {
		s.log.Warning(ctx, "Stored reminders are malformed.", logging.Entry("key", key), logging.Entry("err", err))
		return []reminder.Reminder{}, nil
	}
	if reminders == nil {
		reminders = []reminder.Reminder{}
	}
	return reminders, nil
}

func (s *KVStore) Save(ctx context.Context, owner reminder.Owner, reminders []reminder.Reminder) error {
	if reminders == nil {
		reminders = []reminder.Reminder{}
	}
	data, err := json.Marshal(reminders)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, reminder.Key(s.namespace, owner), data)
}
