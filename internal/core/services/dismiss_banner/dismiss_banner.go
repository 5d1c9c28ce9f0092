package dismissbanner

import (
	"context"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/notification"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/domain/user"
	"healthmate/internal/core/services"
	"healthmate/internal/core/services/auth"
)

type Input struct {
	UserID    user.ID
	ProfileID reminder.ProfileID
}

func (i Input) WithAuthenticatedUser(userID user.ID) auth.Input {
	i.UserID = userID
	return i
}

type Result struct{}

type service struct {
	log    logging.Logger
	banner notification.Banner
}

func New(log logging.Logger, banner notification.Banner) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if banner == nil {
		panic(e.NewNilArgumentError("banner"))
	}
	return &service{log: log, banner: banner}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	owner := reminder.NewOwner(input.UserID, input.ProfileID)
	if err := owner.Validate(); err != nil {
		return result, err
	}
	if err := s.banner.Dismiss(ctx, owner); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("owner", owner))
		return result, err
	}
	return result, nil
}
