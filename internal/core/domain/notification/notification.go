package notification

import (
	"context"
	"fmt"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/domain/user"
	"time"
)

const (
	DefaultIcon          = "/favicon.ico"
	DefaultSound         = "/notification-sound.mp3"
	DefaultBannerTimeout = 8 * time.Second
)

type Notification struct {
	Title              string `json:"title"`
	Body               string `json:"body"`
	Icon               string `json:"icon"`
	RequireInteraction bool   `json:"requireInteraction"`
}

func ForReminder(r reminder.Reminder) Notification {
	return Notification{
		Title:              "Medicine Reminder",
		Body:               fmt.Sprintf("Time to take %s - %s", r.MedicineName, r.Dosage),
		Icon:               DefaultIcon,
		RequireInteraction: true,
	}
}

func NotificationsEnabled() Notification {
	return Notification{
		Title: "Notifications Enabled",
		Body:  "You will now receive medicine reminders",
		Icon:  DefaultIcon,
	}
}

// SystemNotifier delivers a notification outside of the application, through
// the channel the user registered.
type SystemNotifier interface {
	Notify(ctx context.Context, userID user.ID, n Notification) error
}

// Banner shows an in-app alert on the owner's open views.
type Banner interface {
	Show(ctx context.Context, owner reminder.Owner, r reminder.Reminder) error
	Dismiss(ctx context.Context, owner reminder.Owner) error
}

type AudioPlayer interface {
	Play(ctx context.Context, owner reminder.Owner, sound string) error
}

// Dispatcher alerts the user about a due reminder. Delivery is best-effort,
// failures are handled by the dispatcher itself.
type Dispatcher interface {
	Dispatch(ctx context.Context, owner reminder.Owner, r reminder.Reminder)
}

type PermissionRepository interface {
	Get(ctx context.Context, userID user.ID) (Permission, error)
	Set(ctx context.Context, userID user.ID, p Permission) error
}
