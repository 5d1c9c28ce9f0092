package scheduler

import (
	"context"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/services"
	checkduereminders "healthmate/internal/core/services/check_due_reminders"
	"healthmate/internal/metrics"
	"sync"
	"time"
)

type watched struct {
	poller *Poller
	refs   int
}

// Watcher keeps one poller per owner alive while at least one client watches
// that owner.
type Watcher struct {
	log      logging.Logger
	service  services.Service[checkduereminders.Input, checkduereminders.Result]
	interval time.Duration
	metrics  *metrics.Metrics
	ctx      context.Context
	pollers  map[reminder.Owner]*watched
	lock     sync.Mutex
}

func NewWatcher(
	ctx context.Context,
	log logging.Logger,
	service services.Service[checkduereminders.Input, checkduereminders.Result],
	interval time.Duration,
	m *metrics.Metrics,
) *Watcher {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if m == nil {
		panic(e.NewNilArgumentError("metrics"))
	}
	return &Watcher{
		log:      log,
		service:  service,
		interval: interval,
		metrics:  m,
		ctx:      ctx,
		pollers:  make(map[reminder.Owner]*watched),
	}
}

// Watch registers a client for the owner and returns its release function.
// The first client's location is used for the owner's poller.
func (w *Watcher) Watch(owner reminder.Owner, location *time.Location) (release func()) {
	w.lock.Lock()
	defer w.lock.Unlock()

	entry, ok := w.pollers[owner]
	if !ok {
		poller := NewPoller(
			w.log,
			w.service,
			checkduereminders.Input{Owner: owner, Location: location},
			w.interval,
			w.metrics,
		)
		poller.Start(w.ctx)
		entry = &watched{poller: poller}
		w.pollers[owner] = entry
		w.metrics.ActivePollers.Inc()
	}
	entry.refs++

	var once sync.Once
	return func() {
		once.Do(func() { w.release(owner, entry) })
	}
}

func (w *Watcher) release(owner reminder.Owner, entry *watched) {
	w.lock.Lock()
	entry.refs--
	// Entries dropped by Close are already stopped.
	last := entry.refs == 0 && w.pollers[owner] == entry
	if last {
		delete(w.pollers, owner)
		w.metrics.ActivePollers.Dec()
	}
	w.lock.Unlock()

	if last {
		entry.poller.Stop()
	}
}

func (w *Watcher) Watching(owner reminder.Owner) bool {
	w.lock.Lock()
	defer w.lock.Unlock()
	_, ok := w.pollers[owner]
	return ok
}

// Close stops every poller.
func (w *Watcher) Close() {
	w.lock.Lock()
	pollers := w.pollers
	w.pollers = make(map[reminder.Owner]*watched)
	w.lock.Unlock()

	for _, entry := range pollers {
		entry.poller.Stop()
		w.metrics.ActivePollers.Dec()
	}
}
