package state

import (
	"context"
	"time"

	"injury-report-service/internal/domain"
)

// Entry is the last-seen canonical record for one player, as persisted
// between runs. It carries just enough to diff the next poll against.
type Entry struct {
	Player      domain.PlayerKey `json:"player"`
	Sport       domain.Sport     `json:"sport"`
	Status      domain.Status    `json:"status"`
	Description string           `json:"injury,omitempty"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Source      string           `json:"source,omitempty"`
	LastSeen    time.Time        `json:"last_seen"`
}

// Snapshot maps player identity keys to their last-seen entries. It is
// the baseline the change detector diffs against.
type Snapshot struct {
	SavedAt time.Time        `json:"saved_at"`
	Players map[string]Entry `json:"players"`
}

// NewSnapshot returns an empty snapshot ready for inserts.
func NewSnapshot() Snapshot {
	return Snapshot{Players: make(map[string]Entry)}
}

// Lookup returns the entry for a player identity, if present.
func (s Snapshot) Lookup(key domain.PlayerKey) (Entry, bool) {
	e, ok := s.Players[key.Key()]
	return e, ok
}

// Len reports the number of tracked players.
func (s Snapshot) Len() int {
	return len(s.Players)
}

// Store is the single access point to persisted state. Load never fails
// the run: a missing or unreadable snapshot degrades to empty. Save
// failures are surfaced because losing the snapshot breaks the next
// run's change detection.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
}
