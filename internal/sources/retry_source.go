package sources

import (
	"context"
	"log/slog"

	"github.com/cenkalti/backoff/v4"

	"injury-report-service/internal/domain"
	"injury-report-service/internal/logging"
)

// RetrySource wraps a Source with a single delayed retry for transient
// failures. A definitive error (4xx, malformed payload) is surfaced
// immediately, and a successful empty fetch is never retried.
type RetrySource struct {
	inner   Source
	delay   backoff.BackOff
	retries uint64
	logger  *slog.Logger
}

// NewRetrySource decorates inner with one retry after delay.
func NewRetrySource(inner Source, delay backoff.BackOff, logger *slog.Logger) *RetrySource {
	return &RetrySource{
		inner:   inner,
		delay:   delay,
		retries: 1,
		logger:  logger,
	}
}

func (s *RetrySource) Origin() string      { return s.inner.Origin() }
func (s *RetrySource) Sport() domain.Sport { return s.inner.Sport() }

func (s *RetrySource) Fetch(ctx context.Context) ([]domain.RawObservation, error) {
	var observations []domain.RawObservation

	policy := backoff.WithContext(backoff.WithMaxRetries(s.delay, s.retries), ctx)
	attempt := 0

	err := backoff.Retry(func() error {
		attempt++
		obs, err := s.inner.Fetch(ctx)
		if err == nil {
			observations = obs
			return nil
		}
		if !IsTransient(err) {
			return backoff.Permanent(err)
		}
		logging.Warn(s.logger, "source fetch failed, will retry",
			logging.FieldOrigin, s.inner.Origin(),
			logging.FieldSport, string(s.inner.Sport()),
			"attempt", attempt,
			"error", err)
		return err
	}, policy)
	if err != nil {
		return nil, err
	}
	return observations, nil
}
