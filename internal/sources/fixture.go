package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"injury-report-service/internal/domain"
)

// FixtureSource serves a fixed set of observations. It backs local
// development and smoke tests when no upstream credentials exist, and
// is the default adapter for sports whose real feeds are configured
// out-of-process.
type FixtureSource struct {
	origin       string
	sport        domain.Sport
	observations []domain.RawObservation
}

// NewFixtureSource builds a fixture adapter serving the given
// observations verbatim.
func NewFixtureSource(origin string, sport domain.Sport, observations []domain.RawObservation) *FixtureSource {
	return &FixtureSource{origin: origin, sport: sport, observations: observations}
}

// NewFixtureSourceFromFile loads observations from a JSON file holding
// an array of raw observations.
func NewFixtureSourceFromFile(origin string, sport domain.Sport, path string) (*FixtureSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var observations []domain.RawObservation
	if err := json.Unmarshal(data, &observations); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return NewFixtureSource(origin, sport, observations), nil
}

func (s *FixtureSource) Origin() string      { return s.origin }
func (s *FixtureSource) Sport() domain.Sport { return s.sport }

func (s *FixtureSource) Fetch(ctx context.Context) ([]domain.RawObservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.RawObservation, len(s.observations))
	copy(out, s.observations)
	return out, nil
}
