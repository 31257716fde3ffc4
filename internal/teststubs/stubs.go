// Package teststubs provides tiny hand-rolled fakes shared by tests
// across packages.
package teststubs

import (
	"context"
	"sync"

	"injury-report-service/internal/domain"
	"injury-report-service/internal/state"
)

// StubSource returns scripted observations or a scripted error.
type StubSource struct {
	Name         string
	SportName    domain.Sport
	Observations []domain.RawObservation
	Err          error

	mu    sync.Mutex
	calls int
}

func (s *StubSource) Origin() string      { return s.Name }
func (s *StubSource) Sport() domain.Sport { return s.SportName }

func (s *StubSource) Fetch(ctx context.Context) ([]domain.RawObservation, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]domain.RawObservation, len(s.Observations))
	copy(out, s.Observations)
	return out, nil
}

// Calls reports how many times Fetch ran.
func (s *StubSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// FlakyStore wraps an inner store with injectable failures.
type FlakyStore struct {
	Inner   state.Store
	LoadErr error
	SaveErr error
}

func (s *FlakyStore) Load(ctx context.Context) (state.Snapshot, error) {
	if s.LoadErr != nil {
		return state.NewSnapshot(), s.LoadErr
	}
	return s.Inner.Load(ctx)
}

func (s *FlakyStore) Save(ctx context.Context, snap state.Snapshot) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	return s.Inner.Save(ctx, snap)
}
