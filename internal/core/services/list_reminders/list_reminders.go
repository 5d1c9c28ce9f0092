package listreminders

import (
	"context"
	c "healthmate/internal/core/domain/common"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/domain/user"
	"healthmate/internal/core/services"
	"healthmate/internal/core/services/auth"
	"time"
)

type Input struct {
	UserID    user.ID
	ProfileID reminder.ProfileID
	// Location the reminder times are interpreted in. Defaults to the
	// location of the service clock.
	Location *time.Location
}

func (i Input) WithAuthenticatedUser(userID user.ID) auth.Input {
	i.UserID = userID
	return i
}

type Item struct {
	Reminder reminder.Reminder
	NextAt   c.Optional[time.Time]
}

type Result struct {
	Reminders []Item
}

type service struct {
	log   logging.Logger
	store reminder.Store
	now   func() time.Time
}

func New(log logging.Logger, store reminder.Store, now func() time.Time) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, store: store, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	owner := reminder.NewOwner(input.UserID, input.ProfileID)
	if err := owner.Validate(); err != nil {
		return result, err
	}

	now := s.now()
	if input.Location != nil {
		now = now.In(input.Location)
	}

	reminders := s.store.Load(ctx, owner)
	result.Reminders = make([]Item, 0, len(reminders))
	for _, r := range reminders {
		result.Reminders = append(result.Reminders, Item{
			Reminder: r,
			NextAt:   reminder.NextOccurrence(r, now),
		})
	}
	s.log.Debug(ctx, "Reminders listed.", logging.Entry("owner", owner), logging.Entry("count", len(reminders)))
	return result, nil
}
