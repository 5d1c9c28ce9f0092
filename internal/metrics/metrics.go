package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "healthmate"

const (
	TierSystem = "system"
	TierBanner = "banner"
	TierSound  = "sound"
)

type Metrics struct {
	Ticks            prometheus.Counter
	SkippedTicks     prometheus.Counter
	OverlappedTicks  prometheus.Counter
	ActivePollers    prometheus.Gauge
	Dispatches       *prometheus.CounterVec
	DispatchFailures *prometheus.CounterVec
}

func New(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poller_ticks_total",
			Help:      "Evaluation ticks run by reminder pollers.",
		}),
		SkippedTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poller_skipped_ticks_total",
			Help:      "Ticks that did nothing because permission was not granted or there were no reminders.",
		}),
		OverlappedTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poller_overlapped_ticks_total",
			Help:      "Ticks dropped because the previous tick was still running.",
		}),
		ActivePollers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_pollers",
			Help:      "Owners with a running reminder poller.",
		}),
		Dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_dispatches_total",
			Help:      "Notifications delivered per tier.",
		}, []string{"tier"}),
		DispatchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_dispatch_failures_total",
			Help:      "Notification deliveries that failed per tier.",
		}, []string{"tier"}),
	}
	registerer.MustRegister(
		m.Ticks,
		m.SkippedTicks,
		m.OverlappedTicks,
		m.ActivePollers,
		m.Dispatches,
		m.DispatchFailures,
	)
	return m
}

// NewUnregistered is meant for tests.
func NewUnregistered() *Metrics {
	return New(prometheus.NewRegistry())
}
