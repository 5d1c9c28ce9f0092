package getnotificationpermission

import (
	"context"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/notification"
	"healthmate/internal/core/domain/user"
	"healthmate/internal/core/services"
	"healthmate/internal/core/services/auth"
)

type Input struct {
	UserID user.ID
}

func (i Input) WithAuthenticatedUser(userID user.ID) auth.Input {
	i.UserID = userID
	return i
}

type Result struct {
	Permission notification.Permission
}

type service struct {
	log         logging.Logger
	permissions notification.PermissionRepository
}

func New(log logging.Logger, permissions notification.PermissionRepository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if permissions == nil {
		panic(e.NewNilArgumentError("permissions"))
	}
	return &service{log: log, permissions: permissions}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	permission, err := s.permissions.Get(ctx, input.UserID)
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not read notification permission, falling back to default.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		permission = notification.PermissionDefault
	}
	result.Permission = permission
	return result, nil
}
