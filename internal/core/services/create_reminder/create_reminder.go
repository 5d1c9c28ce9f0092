package createreminder

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
	UserID    user.ID
	ProfileID reminder.ProfileID
	Draft     reminder.Draft
}

func (i Input) WithAuthenticatedUser(userID user.ID) auth.Input {
	i.UserID = userID
	return i
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log         logging.Logger
	store       reminder.Store
	locker      reminder.Locker
	idGenerator reminder.IDGenerator
}

func New(
	log logging.Logger,
	store reminder.Store,
	locker reminder.Locker,
	idGenerator reminder.IDGenerator,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if locker == nil {
		panic(e.NewNilArgumentError("locker"))
	}
	if idGenerator == nil {
		panic(e.NewNilArgumentError("idGenerator"))
	}
	return &service{
		log:         log,
		store:       store,
		locker:      locker,
		idGenerator: idGenerator,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	owner := reminder.NewOwner(input.UserID, input.ProfileID)
	if err := owner.Validate(); err != nil {
		return result, err
	}
	if err := input.Draft.Validate(); err != nil {
		return result, err
	}

	unlock := s.locker.Lock(owner)
	defer unlock()

	reminders, err := s.store.LoadForUpdate(ctx, owner)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("owner", owner))
		return result, err
	}
	created := input.Draft.ToReminder(s.idGenerator.GenerateID())
	reminders = append(reminders, created)
	if err := s.store.Save(ctx, owner, reminders); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("owner", owner), logging.Entry("reminder", created))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder successfully created.",
		logging.Entry("owner", owner),
		logging.Entry("reminder", created),
	)
	result.Reminder = created
	return result, nil
}
