package systemnotifier

import (
	"context"
	"errors"
	"healthmate/internal/core/domain/channel"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/notification"
	"healthmate/internal/core/domain/user"
)

// Notifier delivers through the channel the user registered.
type Notifier struct {
	channels channel.Repository
	telegram *Telegram
	email    *Email
}

func New(channels channel.Repository, telegram *Telegram, email *Email) *Notifier {
	if channels == nil {
		panic(e.NewNilArgumentError("channels"))
	}
	return &Notifier{channels: channels, telegram: telegram, email: email}
}

func (n *Notifier) Notify(ctx context.Context, userID user.ID, notif notification.Notification) error {
	settings, err := n.channels.Get(ctx, userID)
	if err != nil {
		return err
	}
	return settings.Accept(&delivery{ctx: ctx, notifier: n, notification: notif})
}

type delivery struct {
	ctx          context.Context
	notifier     *Notifier
	notification notification.Notification
}

func (d *delivery) VisitTelegram(s *channel.TelegramSettings) error {
	if d.notifier.telegram == nil {
		return errTelegramDisabled
	}
	return d.notifier.telegram.Send(d.ctx, s.ChatID, d.notification)
}

func (d *delivery) VisitEmail(s *channel.EmailSettings) error {
	if d.notifier.email == nil {
		return errEmailDisabled
	}
	return d.notifier.email.Send(d.ctx, s.Email, d.notification)
}

var (
	errTelegramDisabled = errors.New("telegram delivery is not configured")
	errEmailDisabled    = errors.New("email delivery is not configured")
)

// RefusalTracker turns the user's permission to denied when their channel
// refuses a delivery, so polling stops until notifications are re-enabled.
type RefusalTracker struct {
	log         logging.Logger
	inner       notification.SystemNotifier
	permissions notification.PermissionRepository
}

func WithRefusalTracking(
	log logging.Logger,
	inner notification.SystemNotifier,
	permissions notification.PermissionRepository,
) *RefusalTracker {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	if permissions == nil {
		panic(e.NewNilArgumentError("permissions"))
	}
	return &RefusalTracker{log: log, inner: inner, permissions: permissions}
}

func (t *RefusalTracker) Notify(ctx context.Context, userID user.ID, n notification.Notification) error {
	err := t.inner.Notify(ctx, userID, n)
	if !errors.Is(err, channel.ErrDeliveryRefused) {
		return err
	}
	t.log.Warning(ctx, "Channel refused delivery, notifications disabled.", logging.Entry("userID", userID))
	if setErr := t.permissions.Set(ctx, userID, notification.PermissionDenied); setErr != nil {
		logging.Error(ctx, t.log, setErr, logging.Entry("userID", userID))
	}
	return err
}
