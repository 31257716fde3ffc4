package state

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"injury-report-service/internal/logging"
)

// FSStore persists the snapshot as a single JSON file. Writes go through
// a temp file and rename so a crash mid-write cannot corrupt the file
// the next run loads.
type FSStore struct {
	path   string
	logger *slog.Logger
}

// NewFSStore constructs a file-backed store at path.
func NewFSStore(path string, logger *slog.Logger) *FSStore {
	return &FSStore{path: path, logger: logger}
}

// Load reads the snapshot from disk. A missing file is a normal first
// run; a corrupt file is logged and degrades to an empty snapshot.
func (s *FSStore) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return NewSnapshot(), err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn(s.logger, "state load failed, starting empty", logging.FieldStatePath, s.path, "error", err)
		}
		return NewSnapshot(), nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logging.Warn(s.logger, "state file corrupt, starting empty", logging.FieldStatePath, s.path, "error", err)
		return NewSnapshot(), nil
	}
	if snap.Players == nil {
		snap.Players = make(map[string]Entry)
	}
	return snap, nil
}

// Save writes the snapshot atomically (write-temp-then-replace).
func (s *FSStore) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state snapshot: %w", err)
	}
	return nil
}
