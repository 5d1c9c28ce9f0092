package scheduler

import (
	"context"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/services"
	checkduereminders "healthmate/internal/core/services/check_due_reminders"
	"healthmate/internal/metrics"
	"sync"
	"sync/atomic"
	"time"
)

// Poller runs the due check for one owner at a fixed interval. At most one
// check is in flight; a tick that fires while the previous check still runs
// is dropped.
type Poller struct {
	log      logging.Logger
	service  services.Service[checkduereminders.Input, checkduereminders.Result]
	input    checkduereminders.Input
	interval time.Duration
	metrics  *metrics.Metrics

	inFlight int32
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewPoller(
	log logging.Logger,
	service services.Service[checkduereminders.Input, checkduereminders.Result],
	input checkduereminders.Input,
	interval time.Duration,
	m *metrics.Metrics,
) *Poller {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if m == nil {
		panic(e.NewNilArgumentError("metrics"))
	}
	if interval <= 0 {
		panic(e.NewInvalidStateError("poll interval must be positive"))
	}
	return &Poller{log: log, service: service, input: input, interval: interval, metrics: m}
}

// Start launches the polling loop. It ends on Stop or when ctx is done.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.wg.Add(1)
				go func() {
					defer p.wg.Done()
					p.Tick(ctx)
				}()
			}
		}
	}()
	p.log.Debug(ctx, "Reminder poller started.", logging.Entry("owner", p.input.Owner))
}

// Tick runs one check unless another one is in flight. It reports whether
// the check ran.
func (p *Poller) Tick(ctx context.Context) bool {
	if !atomic.CompareAndSwapInt32(&p.inFlight, 0, 1) {
		p.metrics.OverlappedTicks.Inc()
		p.log.Warning(ctx, "Previous tick is still running, skipping.", logging.Entry("owner", p.input.Owner))
		return false
	}
	defer atomic.StoreInt32(&p.inFlight, 0)

	p.metrics.Ticks.Inc()
	result, err := p.service.Run(ctx, p.input)
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("owner", p.input.Owner))
		return true
	}
	if result.Skipped {
		p.metrics.SkippedTicks.Inc()
	}
	return true
}

// Stop cancels the loop and waits for an in-flight check to finish.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		if p.cancel != nil {
			p.cancel()
		}
		p.wg.Wait()
		p.log.Debug(context.Background(), "Reminder poller stopped.", logging.Entry("owner", p.input.Owner))
	})
}
