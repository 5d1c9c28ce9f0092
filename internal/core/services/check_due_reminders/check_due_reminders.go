package checkduereminders

import (
	"context"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/notification"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/services"
	"time"
)

type Input struct {
	Owner    reminder.Owner
	Location *time.Location
}

type Result struct {
	Skipped    bool
	Dispatched []reminder.ID
}

type service struct {
	log         logging.Logger
	store       reminder.Store
	permissions notification.PermissionRepository
	fireLog     reminder.FireLog
	dispatcher  notification.Dispatcher
	now         func() time.Time
}

func New(
	log logging.Logger,
	store reminder.Store,
	permissions notification.PermissionRepository,
	fireLog reminder.FireLog,
	dispatcher notification.Dispatcher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if permissions == nil {
		panic(e.NewNilArgumentError("permissions"))
	}
	if fireLog == nil {
		panic(e.NewNilArgumentError("fireLog"))
	}
	if dispatcher == nil {
		panic(e.NewNilArgumentError("dispatcher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:         log,
		store:       store,
		permissions: permissions,
		fireLog:     fireLog,
		dispatcher:  dispatcher,
		now:         now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	permission, err := s.permissions.Get(ctx, input.Owner.UserID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("owner", input.Owner))
		permission = notification.PermissionDefault
	}
	if permission != notification.PermissionGranted {
		result.Skipped = true
		return result, nil
	}

	reminders := s.store.Load(ctx, input.Owner)
	if len(reminders) == 0 {
		result.Skipped = true
		return result, nil
	}

	now := s.now()
	if input.Location != nil {
		now = now.In(input.Location)
	}
	for _, r := range reminders {
		if !reminder.IsDue(r, now) {
			continue
		}
		if !s.fireLog.MarkFired(input.Owner, r.ID, now) {
			continue
		}
		s.dispatcher.Dispatch(ctx, input.Owner, r)
		result.Dispatched = append(result.Dispatched, r.ID)
	}

	if len(result.Dispatched) > 0 {
		s.log.Info(
			ctx,
			"Due reminders dispatched.",
			logging.Entry("owner", input.Owner),
			logging.Entry("reminders", result.Dispatched),
		)
	}
	return result, nil
}
