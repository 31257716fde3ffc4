package schedule

import (
	"context"
	"time"

	"injury-report-service/internal/domain"
)

// Provider returns the slate of games for one sport on one date.
// Schedule data is best-effort: callers degrade to un-annotated reports
// when a provider fails rather than aborting the run.
type Provider interface {
	Matchups(ctx context.Context, sport domain.Sport, date time.Time) ([]domain.Matchup, error)
}

// StaticProvider serves a fixed slate, used in tests and offline runs.
type StaticProvider struct {
	BySport map[domain.Sport][]domain.Matchup
	Err     error
}

func (p *StaticProvider) Matchups(ctx context.Context, sport domain.Sport, date time.Time) ([]domain.Matchup, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.BySport[sport], nil
}
