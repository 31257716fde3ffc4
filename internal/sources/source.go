package sources

import (
	"context"

	"injury-report-service/internal/domain"
)

// Source produces raw injury observations for one sport from one origin.
// Implementations own all origin-specific fetch and field-extraction
// quirks; the pipeline only ever sees RawObservation.
type Source interface {
	// Origin identifies the upstream (e.g. "espn", "mlb-transactions").
	Origin() string
	Sport() domain.Sport
	Fetch(ctx context.Context) ([]domain.RawObservation, error)
}

// Priority ranks origins for cross-source dedupe ties: league-official
// feeds beat media aggregators. Unknown origins rank zero.
func Priority(origin string) int {
	switch origin {
	case "nba-official", "mlb-transactions":
		return 3
	case "espn":
		return 2
	case "cbs":
		return 1
	default:
		return 0
	}
}
