package services

import (
	"healthmate/internal/app/deps"
	drl "healthmate/internal/core/domain/rate_limiter"
	"healthmate/internal/core/services"
	"healthmate/internal/core/services/auth"
	checkduereminders "healthmate/internal/core/services/check_due_reminders"
	createreminder "healthmate/internal/core/services/create_reminder"
	deletereminder "healthmate/internal/core/services/delete_reminder"
	dismissbanner "healthmate/internal/core/services/dismiss_banner"
	getnotificationpermission "healthmate/internal/core/services/get_notification_permission"
	listreminders "healthmate/internal/core/services/list_reminders"
	ratelimiting "healthmate/internal/core/services/rate_limiting"
	requestnotificationpermission "healthmate/internal/core/services/request_notification_permission"
	setnotificationchannel "healthmate/internal/core/services/set_notification_channel"
	togglereminder "healthmate/internal/core/services/toggle_reminder"
)

type Services struct {
	CreateReminder services.Service[createreminder.Input, createreminder.Result]
	ListReminders  services.Service[listreminders.Input, listreminders.Result]
	ToggleReminder services.Service[togglereminder.Input, togglereminder.Result]
	DeleteReminder services.Service[deletereminder.Input, deletereminder.Result]

	CheckDueReminders services.Service[checkduereminders.Input, checkduereminders.Result]
	DismissBanner     services.Service[dismissbanner.Input, dismissbanner.Result]

	GetNotificationPermission     services.Service[getnotificationpermission.Input, getnotificationpermission.Result]
	RequestNotificationPermission services.Service[requestnotificationpermission.Input, requestnotificationpermission.Result]
	SetNotificationChannel        services.Service[setnotificationchannel.Input, setnotificationchannel.Result]
}

func InitServices(deps *deps.Deps) *Services {
	return &Services{
		CreateReminder: auth.WithAuthentication(
			createreminder.New(
				deps.Logger,
				deps.ReminderStore,
				deps.ReminderLocker,
				deps.ReminderIDGenerator,
			),
		),
		ListReminders: auth.WithAuthentication(
			listreminders.New(deps.Logger, deps.ReminderStore, deps.Now),
		),
		ToggleReminder: auth.WithAuthentication(
			togglereminder.New(deps.Logger, deps.ReminderStore, deps.ReminderLocker),
		),
		DeleteReminder: auth.WithAuthentication(
			deletereminder.New(deps.Logger, deps.ReminderStore, deps.ReminderLocker),
		),
		CheckDueReminders: checkduereminders.New(
			deps.Logger,
			deps.ReminderStore,
			deps.PermissionRepository,
			deps.FireLog,
			deps.NotificationDispatcher,
			deps.Now,
		),
		DismissBanner: auth.WithAuthentication(
			dismissbanner.New(deps.Logger, deps.Banner),
		),
		GetNotificationPermission: auth.WithAuthentication(
			getnotificationpermission.New(deps.Logger, deps.PermissionRepository),
		),
		RequestNotificationPermission: auth.WithAuthentication(
			ratelimiting.WithRateLimiting(
				deps.Logger,
				deps.RateLimiter,
				drl.Limit{Interval: drl.Hour, Value: 5},
				requestnotificationpermission.New(
					deps.Logger,
					deps.PermissionRepository,
					deps.ChannelRepository,
					deps.DirectSystemNotifier,
				),
			),
		),
		SetNotificationChannel: auth.WithAuthentication(
			setnotificationchannel.New(deps.Logger, deps.ChannelRepository, deps.PermissionRepository),
		),
	}
}
