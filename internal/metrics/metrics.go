package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	fetches          int
	errors           int
	skipped          int
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about source fetches
// and run cycles. It is intentionally simple so it can be swapped for a
// real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sourceStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordSourceFetch increments counters for a source fetch and stores
// the last observed latency.
func (r *Recorder) RecordSourceFetch(origin, sport string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(origin)
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordSourceFetch(origin, sport, duration, err)
	}
}

// RecordSkippedObservations tracks observations dropped during
// normalization for lacking player identity.
func (r *Recorder) RecordSkippedObservations(origin string, count int) {
	if r == nil || count == 0 {
		return
	}

	stats := r.ensureStats(origin)
	stats.skipped += count
	if r.otel != nil {
		r.otel.recordSkipped(origin, count)
	}
}

// RecordStatusChanges tracks how many status transitions a run surfaced.
func (r *Recorder) RecordStatusChanges(sport string, count int) {
	if r == nil || r.otel == nil || count == 0 {
		return
	}
	r.otel.recordStatusChanges(sport, count)
}

// RecordRunCycle tracks aggregation runs and their outcome.
func (r *Recorder) RecordRunCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRun(duration, err)
}

// RecordStateSaveError tracks failed snapshot persists.
func (r *Recorder) RecordStateSaveError() {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordStateSaveError()
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// SourceFetches returns the total fetches recorded for an origin.
func (r *Recorder) SourceFetches(origin string) int {
	return r.Snapshot(origin).Fetches
}

// SourceErrors returns the total failed fetches recorded for an origin.
func (r *Recorder) SourceErrors(origin string) int {
	return r.Snapshot(origin).Errors
}

// SkippedObservations returns the skipped observation count for an origin.
func (r *Recorder) SkippedObservations(origin string) int {
	return r.Snapshot(origin).Skipped
}

// LastFetchLatency returns the last recorded latency for an origin fetch.
func (r *Recorder) LastFetchLatency(origin string) time.Duration {
	return r.Snapshot(origin).LastFetchLatency
}

// Snapshot is a copy of the current stats for one origin.
type Snapshot struct {
	Fetches          int
	Errors           int
	Skipped          int
	LastFetchLatency time.Duration
}

func (r *Recorder) Snapshot(origin string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(origin)
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		Skipped:          stats.skipped,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

func (r *Recorder) ensureStats(origin string) *sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[origin]
	if !ok {
		stats = &sourceStats{}
		r.stats[origin] = stats
	}
	return stats
}

func (r *Recorder) snapshot(origin string) sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[origin]; ok && stats != nil {
		return *stats
	}
	return sourceStats{}
}
