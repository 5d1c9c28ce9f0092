package requestnotificationpermission

import (
	"context"
	"errors"
	"healthmate/internal/core/domain/channel"
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

func (i Input) GetRateLimitKey() string {
	return "request-notification-permission::" + string(i.UserID)
}

type Result struct {
	Outcome    notification.RequestResult
	Permission notification.Permission
}

type service struct {
	log         logging.Logger
	permissions notification.PermissionRepository
	channels    channel.Repository
	notifier    notification.SystemNotifier
}

// New builds the "enable notifications" action. The user's channel is
// confirmed by delivering a test notification through it.
func New(
	log logging.Logger,
	permissions notification.PermissionRepository,
	channels channel.Repository,
	notifier notification.SystemNotifier,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if permissions == nil {
		panic(e.NewNilArgumentError("permissions"))
	}
	if channels == nil {
		panic(e.NewNilArgumentError("channels"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	return &service{
		log:         log,
		permissions: permissions,
		channels:    channels,
		notifier:    notifier,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	current, err := s.permissions.Get(ctx, input.UserID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}
	if current == notification.PermissionGranted {
		result.Outcome = notification.RequestGranted
		result.Permission = current
		return result, nil
	}

	result.Outcome = s.request(ctx, input.UserID)
	result.Permission = result.Outcome.Permission(current)
	if result.Permission == current {
		return result, nil
	}

	if err := s.permissions.Set(ctx, input.UserID, result.Permission); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID), logging.Entry("permission", result.Permission))
		return result, err
	}
	s.log.Info(
		ctx,
		"Notification permission changed.",
		logging.Entry("userID", input.UserID),
		logging.Entry("permission", result.Permission),
	)
	return result, nil
}

func (s *service) request(ctx context.Context, userID user.ID) notification.RequestResult {
	if _, err := s.channels.Get(ctx, userID); err != nil {
		if !errors.Is(err, channel.ErrChannelNotSet) {
			logging.Error(ctx, s.log, err, logging.Entry("userID", userID))
		}
		return notification.RequestUnavailable
	}

	err := s.notifier.Notify(ctx, userID, notification.NotificationsEnabled())
	switch {
	case err == nil:
		return notification.RequestGranted
	case errors.Is(err, channel.ErrDeliveryRefused):
		s.log.Info(ctx, "Notification channel refused delivery.", logging.Entry("userID", userID))
		return notification.RequestDenied
	default:
		s.log.Warning(
			ctx,
			"Could not confirm notification channel.",
			logging.Entry("userID", userID),
			logging.Entry("err", err),
		)
		return notification.RequestUnavailable
	}
}
