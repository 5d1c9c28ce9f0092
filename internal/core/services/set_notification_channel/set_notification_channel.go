package setnotificationchannel

import (
	"context"
	"healthmate/internal/core/domain/channel"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/notification"
	"healthmate/internal/core/domain/user"
	"healthmate/internal/core/services"
	"healthmate/internal/core/services/auth"
)

type Input struct {
	UserID   user.ID
	Settings channel.Settings
}

func (i Input) WithAuthenticatedUser(userID user.ID) auth.Input {
	i.UserID = userID
	return i
}

type Result struct {
	Settings   channel.Settings
	Permission notification.Permission
}

type service struct {
	log         logging.Logger
	channels    channel.Repository
	permissions notification.PermissionRepository
}

func New(
	log logging.Logger,
	channels channel.Repository,
	permissions notification.PermissionRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channels == nil {
		panic(e.NewNilArgumentError("channels"))
	}
	if permissions == nil {
		panic(e.NewNilArgumentError("permissions"))
	}
	return &service{log: log, channels: channels, permissions: permissions}
}

// Run registers the channel. A new channel is unconfirmed, so the permission
// goes back to default until the user enables notifications again.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Settings == nil {
		return result, channel.ErrInvalidSettings
	}
	if err := s.channels.Set(ctx, input.UserID, input.Settings); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}
	if err := s.permissions.Set(ctx, input.UserID, notification.PermissionDefault); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Notification channel registered.",
		logging.Entry("userID", input.UserID),
		logging.Entry("type", input.Settings.Type().String()),
	)
	result.Settings = input.Settings
	result.Permission = notification.PermissionDefault
	return result, nil
}
