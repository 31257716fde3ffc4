package sources

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"injury-report-service/internal/domain"
)

// Throttle enforces a minimum interval between requests that share an
// upstream host. It is shared across sources so that two adapters
// hitting the same origin domain still space their calls out.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	last     map[string]time.Time
	clock    clockwork.Clock
}

// NewThrottle builds a throttle with the given per-host interval. A
// non-positive interval disables throttling.
func NewThrottle(interval time.Duration, clock clockwork.Clock) *Throttle {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Throttle{
		interval: interval,
		last:     make(map[string]time.Time),
		clock:    clock,
	}
}

// Wait blocks until at least the configured interval has elapsed since
// the previous call for host, or until ctx is done.
func (t *Throttle) Wait(ctx context.Context, host string) error {
	if t == nil || t.interval <= 0 {
		return ctx.Err()
	}

	t.mu.Lock()
	now := t.clock.Now()
	wait := time.Duration(0)
	if prev, ok := t.last[host]; ok {
		if elapsed := now.Sub(prev); elapsed < t.interval {
			wait = t.interval - elapsed
		}
	}
	t.last[host] = now.Add(wait)
	t.mu.Unlock()

	if wait <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.clock.After(wait):
		return nil
	}
}

// ThrottledSource applies a shared Throttle before each fetch.
type ThrottledSource struct {
	inner    Source
	throttle *Throttle
	host     string
}

// NewThrottledSource decorates inner so fetches respect the shared
// per-host pacing under the given host key.
func NewThrottledSource(inner Source, throttle *Throttle, host string) *ThrottledSource {
	return &ThrottledSource{inner: inner, throttle: throttle, host: host}
}

func (s *ThrottledSource) Origin() string      { return s.inner.Origin() }
func (s *ThrottledSource) Sport() domain.Sport { return s.inner.Sport() }

func (s *ThrottledSource) Fetch(ctx context.Context) ([]domain.RawObservation, error) {
	if err := s.throttle.Wait(ctx, s.host); err != nil {
		return nil, err
	}
	return s.inner.Fetch(ctx)
}
