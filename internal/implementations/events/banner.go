package events

import (
	"context"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/reminder"
	"sync"
	"time"
)

type bannerPayload struct {
	Reminder   reminder.Reminder `json:"reminder"`
	DurationMS int64             `json:"durationMs"`
}

type dismissedPayload struct {
	ReminderID reminder.ID `json:"reminderId"`
}

type shownBanner struct {
	reminderID reminder.ID
	timer      *time.Timer
}

// Banner shows at most one banner per owner. A newer banner replaces the
// visible one, and every banner is dismissed after duration.
type Banner struct {
	log      logging.Logger
	streams  *Streams
	duration time.Duration
	shown    map[reminder.Owner]*shownBanner
	lock     sync.Mutex
}

func NewBanner(log logging.Logger, streams *Streams, duration time.Duration) *Banner {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if streams == nil {
		panic(e.NewNilArgumentError("streams"))
	}
	return &Banner{
		log:      log,
		streams:  streams,
		duration: duration,
		shown:    make(map[reminder.Owner]*shownBanner),
	}
}

func (b *Banner) Show(ctx context.Context, owner reminder.Owner, r reminder.Reminder) error {
	err := b.streams.Publish(owner, EventBanner, bannerPayload{Reminder: r, DurationMS: b.duration.Milliseconds()})
	if err != nil {
		return err
	}

	b.lock.Lock()
	defer b.lock.Unlock()
	if previous, ok := b.shown[owner]; ok {
		previous.timer.Stop()
	}
	shown := &shownBanner{reminderID: r.ID}
	shown.timer = time.AfterFunc(b.duration, func() { b.expire(owner, shown) })
	b.shown[owner] = shown
	return nil
}

func (b *Banner) Dismiss(ctx context.Context, owner reminder.Owner) error {
	b.lock.Lock()
	shown, ok := b.shown[owner]
	if ok {
		shown.timer.Stop()
		delete(b.shown, owner)
	}
	b.lock.Unlock()

	if !ok {
		return nil
	}
	return b.streams.Publish(owner, EventBannerDismissed, dismissedPayload{ReminderID: shown.reminderID})
}

func (b *Banner) expire(owner reminder.Owner, shown *shownBanner) {
	b.lock.Lock()
	current, ok := b.shown[owner]
	if !ok || current != shown {
		b.lock.Unlock()
		return
	}
	delete(b.shown, owner)
	b.lock.Unlock()

	err := b.streams.Publish(owner, EventBannerDismissed, dismissedPayload{ReminderID: shown.reminderID})
	if err != nil {
		b.log.Warning(context.Background(), "Could not dismiss banner.", logging.Entry("owner", owner), logging.Entry("err", err))
	}
}

// Close stops pending dismiss timers.
func (b *Banner) Close() {
	b.lock.Lock()
	defer b.lock.Unlock()
	for owner, shown := range b.shown {
		shown.timer.Stop()
		delete(b.shown, owner)
	}
}
