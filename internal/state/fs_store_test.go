package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"injury-report-service/internal/domain"
)

func sampleSnapshot(t *testing.T) Snapshot {
	t.Helper()
	snap := NewSnapshot()
	snap.SavedAt = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	key := domain.PlayerKey{Name: "Ja Morant", Team: "Memphis Grizzlies"}
	snap.Players[key.Key()] = Entry{
		Player:    key,
		Sport:     domain.SportNBA,
		Status:    domain.StatusQuestionable,
		UpdatedAt: snap.SavedAt,
		LastSeen:  snap.SavedAt,
	}
	return snap
}

func TestFSStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	store := NewFSStore(path, nil)

	if err := store.Save(context.Background(), sampleSnapshot(t)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	key := domain.PlayerKey{Name: "Ja Morant", Team: "Memphis Grizzlies"}
	entry, ok := loaded.Lookup(key)
	if !ok {
		t.Fatal("expected persisted player to round-trip")
	}
	if entry.Status != domain.StatusQuestionable {
		t.Fatalf("unexpected status %s", entry.Status)
	}
}

func TestFSStoreMissingFileIsEmptyNotError(t *testing.T) {
	store := NewFSStore(filepath.Join(t.TempDir(), "absent.json"), nil)
	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
	if snap.Len() != 0 {
		t.Fatalf("expected empty snapshot, got %d players", snap.Len())
	}
}

func TestFSStoreCorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewFSStore(path, nil)
	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("corrupt file must not error, got %v", err)
	}
	if snap.Len() != 0 {
		t.Fatalf("expected empty snapshot, got %d players", snap.Len())
	}
}

func TestFSStoreSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	store := NewFSStore(path, nil)

	if err := store.Save(context.Background(), sampleSnapshot(t)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestMemoryStoreCopiesOnLoad(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save(context.Background(), sampleSnapshot(t)); err != nil {
		t.Fatal(err)
	}

	first, _ := store.Load(context.Background())
	delete(first.Players, domain.PlayerKey{Name: "Ja Morant", Team: "Memphis Grizzlies"}.Key())

	second, _ := store.Load(context.Background())
	if second.Len() != 1 {
		t.Fatal("mutating a loaded snapshot must not affect the store")
	}
}
