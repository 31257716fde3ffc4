package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksSourceFetches(t *testing.T) {
	rec := NewRecorder()

	rec.RecordSourceFetch("espn", "nba", 120*time.Millisecond, nil)
	rec.RecordSourceFetch("espn", "nba", 340*time.Millisecond, errors.New("boom"))
	rec.RecordSkippedObservations("espn", 2)

	if got := rec.SourceFetches("espn"); got != 2 {
		t.Fatalf("expected 2 fetches, got %d", got)
	}
	if got := rec.SourceErrors("espn"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.SkippedObservations("espn"); got != 2 {
		t.Fatalf("expected 2 skipped, got %d", got)
	}
	if got := rec.LastFetchLatency("espn"); got != 340*time.Millisecond {
		t.Fatalf("expected last latency recorded, got %v", got)
	}
}

func TestRecorderIsolatesOrigins(t *testing.T) {
	rec := NewRecorder()

	rec.RecordSourceFetch("espn", "nba", time.Millisecond, nil)

	if got := rec.SourceFetches("cbs"); got != 0 {
		t.Fatalf("expected untouched origin to read zero, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder

	rec.RecordSourceFetch("espn", "nba", time.Millisecond, nil)
	rec.RecordSkippedObservations("espn", 1)
	rec.RecordRunCycle(time.Second, nil)
	rec.RecordStateSaveError()
	rec.RecordHTTPRequest("GET", "/report", 200, time.Millisecond)

	if got := rec.Snapshot("espn"); got != (Snapshot{}) {
		t.Fatalf("nil recorder must read zero, got %+v", got)
	}
}

func TestSetupDisabledReturnsWorkingRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("disabled setup must not fail: %v", err)
	}
	if handler != nil {
		t.Fatal("disabled setup must not expose a prometheus handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown must be a no-op: %v", err)
	}

	rec.RecordSourceFetch("espn", "nba", time.Millisecond, nil)
	if got := rec.SourceFetches("espn"); got != 1 {
		t.Fatalf("recorder must still count, got %d", got)
	}
}

func TestSetupEnabledBuildsPrometheusHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, ServiceName: "test"})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	defer shutdown(context.Background())

	if handler == nil {
		t.Fatal("expected a prometheus handler")
	}
	rec.RecordSourceFetch("espn", "nba", time.Millisecond, nil)
	rec.RecordRunCycle(time.Second, errors.New("boom"))
}
