package domain

import "time"

// RawObservation is the uniform shape every source adapter emits before
// normalization. Field extraction quirks stay inside the adapters; the
// normalizer only ever sees this.
type RawObservation struct {
	Player      string
	Team        string
	Status      string
	Description string
	// Updated is the origin's own "last updated" string, if it supplied
	// one. Loosely formatted; empty when the origin has no timestamps.
	Updated string
}

// SourceResult is the per-origin fetch outcome surfaced in the report so
// consumers can judge feed completeness. SkippedCount tallies observations
// dropped by normalization.
type SourceResult struct {
	Origin       string        `json:"origin"`
	Sport        Sport         `json:"sport"`
	Succeeded    bool          `json:"succeeded"`
	RecordCount  int           `json:"record_count"`
	SkippedCount int           `json:"skipped_count,omitempty"`
	Error        string        `json:"error,omitempty"`
	Duration     time.Duration `json:"-"`
}
