package reminderdispatcher

import (
	"context"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/notification"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/metrics"
)

// Dispatcher fires the system notification, the banner and the sound for a
// due reminder. Every tier is attempted regardless of the others.
type Dispatcher struct {
	log     logging.Logger
	system  notification.SystemNotifier
	banner  notification.Banner
	audio   notification.AudioPlayer
	metrics *metrics.Metrics
}

func New(
	log logging.Logger,
	system notification.SystemNotifier,
	banner notification.Banner,
	audio notification.AudioPlayer,
	m *metrics.Metrics,
) *Dispatcher {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if system == nil {
		panic(e.NewNilArgumentError("system"))
	}
	if banner == nil {
		panic(e.NewNilArgumentError("banner"))
	}
	if audio == nil {
		panic(e.NewNilArgumentError("audio"))
	}
	if m == nil {
		panic(e.NewNilArgumentError("metrics"))
	}
	return &Dispatcher{log: log, system: system, banner: banner, audio: audio, metrics: m}
}

func (d *Dispatcher) Dispatch(ctx context.Context, owner reminder.Owner, r reminder.Reminder) {
	entries := []logging.LogEntry{logging.Entry("owner", owner), logging.Entry("reminderID", r.ID)}

	if err := d.system.Notify(ctx, owner.UserID, notification.ForReminder(r)); err != nil {
		d.failed(ctx, metrics.TierSystem, err, entries)
	} else {
		d.metrics.Dispatches.WithLabelValues(metrics.TierSystem).Inc()
	}

	if err := d.banner.Show(ctx, owner, r); err != nil {
		d.failed(ctx, metrics.TierBanner, err, entries)
	} else {
		d.metrics.Dispatches.WithLabelValues(metrics.TierBanner).Inc()
	}

	if err := d.audio.Play(ctx, owner, notification.DefaultSound); err != nil {
		d.metrics.DispatchFailures.WithLabelValues(metrics.TierSound).Inc()
		d.log.Debug(ctx, "Could not play notification sound.", append(entries, logging.Entry("err", err))...)
	} else {
		d.metrics.Dispatches.WithLabelValues(metrics.TierSound).Inc()
	}
}

func (d *Dispatcher) failed(ctx context.Context, tier string, err error, entries []logging.LogEntry) {
	d.metrics.DispatchFailures.WithLabelValues(tier).Inc()
	all := make([]logging.LogEntry, 0, len(entries)+2)
	all = append(all, logging.Entry("tier", tier), logging.Entry("err", err))
	all = append(all, entries...)
	d.log.Warning(ctx, "Notification dispatch failed.", all...)
}
