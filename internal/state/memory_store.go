package state

import (
	"context"
	"sync"
)

// MemoryStore keeps the snapshot in memory. Used by tests and by
// embedders that manage persistence themselves.
type MemoryStore struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snap: NewSnapshot()}
}

// Load returns a copy of the held snapshot.
func (s *MemoryStore) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return NewSnapshot(), err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySnapshot(s.snap), nil
}

// Save replaces the held snapshot.
func (s *MemoryStore) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = copySnapshot(snap)
	return nil
}

func copySnapshot(snap Snapshot) Snapshot {
	out := Snapshot{SavedAt: snap.SavedAt, Players: make(map[string]Entry, len(snap.Players))}
	for k, v := range snap.Players {
		out.Players[k] = v
	}
	return out
}
