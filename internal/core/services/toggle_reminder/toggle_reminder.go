package togglereminder

import (
	"context"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/domain/user"
	"healthmate/internal/core/services"
	"healthmate/internal/core/services/auth"
)

type Input struct {
	UserID     user.ID
	ProfileID  reminder.ProfileID
	ReminderID reminder.ID
}

func (i Input) WithAuthenticatedUser(userID user.ID) auth.Input {
	i.UserID = userID
	return i
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log    logging.Logger
	store  reminder.Store
	locker reminder.Locker
}

func New(log logging.Logger, store reminder.Store, locker reminder.Locker) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if locker == nil {
		panic(e.NewNilArgumentError("locker"))
	}
	return &service{log: log, store: store, locker: locker}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	owner := reminder.NewOwner(input.UserID, input.ProfileID)
	if err := owner.Validate(); err != nil {
		return result, err
	}

	unlock := s.locker.Lock(owner)
	defer unlock()

	reminders, err := s.store.LoadForUpdate(ctx, owner)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	ix := reminder.IndexOf(reminders, input.ReminderID)
	if ix < 0 {
		s.log.Info(ctx, "Reminder not found.", logging.Entry("input", input))
		return result, reminder.ErrReminderNotFound
	}
	reminders[ix].IsActive = !reminders[ix].IsActive

	if err := s.store.Save(ctx, owner, reminders); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder has been toggled.",
		logging.Entry("input", input),
		logging.Entry("isActive", reminders[ix].IsActive),
	)
	result.Reminder = reminders[ix]
	return result, nil
}
