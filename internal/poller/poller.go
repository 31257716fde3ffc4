package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"injury-report-service/internal/logging"
	"injury-report-service/internal/report"
)

const defaultInterval = 15 * time.Minute

// Runner executes one aggregation cycle and returns its report.
type Runner interface {
	Run(ctx context.Context) (*report.Report, error)
}

// Poller re-runs the aggregation engine on an interval and holds the
// latest report for the HTTP layer to serve.
type Poller struct {
	runner     Runner
	logger     *slog.Logger
	interval   time.Duration
	runTimeout time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
	latest   *report.Report
}

// Status describes the recent health of the polling loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(runner Runner, logger *slog.Logger, interval, runTimeout time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		runner:     runner,
		logger:     logger,
		interval:   interval,
		runTimeout: runTimeout,
		done:       make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", logging.FieldDurationMS, p.interval.Milliseconds())
		// Initial run to warm data on boot.
		p.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) runOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	rctx := ctx
	cancel := func() {}
	if p.runTimeout > 0 {
		rctx, cancel = context.WithTimeout(ctx, p.runTimeout)
	}
	defer cancel()

	rep, err := p.runner.Run(rctx)
	if err != nil {
		logging.Error(p.logger, "aggregation run failed", err,
			logging.FieldDurationMS, time.Since(start).Milliseconds())
		p.recordFailure(err, rep, start)
		return
	}

	p.recordSuccess(rep, start)
	logging.Info(p.logger, "aggregation run refreshed report",
		logging.FieldCount, rep.TotalListed(),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(rep *report.Report, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.latest = rep
}

// recordFailure keeps the report when the run produced one: a failed
// state save still yields a servable report.
func (p *Poller) recordFailure(err error, rep *report.Report, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
	if rep != nil {
		p.latest = rep
	}
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Latest returns the most recent report, or nil before the first
// completed run.
func (p *Poller) Latest() *report.Report {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.latest
}
