package diff

import (
	"sort"
	"strings"
	"time"

	"injury-report-service/internal/domain"
	"injury-report-service/internal/state"
)

// Result is the outcome of comparing a run's records against the
// previous snapshot. The three buckets are disjoint: a player appears
// as a change, a new listing, or a disappearance, never two of them.
type Result struct {
	// Changes holds players whose canonical status moved between runs.
	Changes []domain.StatusChange
	// NewlyListed holds players absent from the previous snapshot. A
	// first sighting is not a status change; there is no prior status
	// to change from.
	NewlyListed []domain.InjuryRecord
	// Dropped holds previous entries that no longer appear, carried
	// with their last known status. No recovery status is fabricated
	// for them.
	Dropped []state.Entry
}

// Detect compares current records against the previous snapshot.
// sports bounds the disappearance scan: a sport not covered by this run
// says nothing about its players, so its snapshot entries are left
// alone rather than reported as dropped.
func Detect(records []domain.InjuryRecord, previous state.Snapshot, sports []domain.Sport, now time.Time) Result {
	covered := make(map[domain.Sport]bool, len(sports))
	for _, s := range sports {
		covered[s] = true
	}

	var result Result
	seen := make(map[string]bool, len(records))

	for _, record := range records {
		key := record.Player.Key()
		seen[key] = true

		prev, ok := previous.Lookup(record.Player)
		if !ok {
			result.NewlyListed = append(result.NewlyListed, record)
			continue
		}
		if prev.Status == record.Status {
			continue
		}
		result.Changes = append(result.Changes, domain.StatusChange{
			Player:      record.Player,
			Sport:       record.Sport,
			From:        prev.Status,
			To:          record.Status,
			Description: record.Description,
			UpdatedAt:   record.UpdatedAt,
			DetectedAt:  now,
			Game:        record.Game,
		})
	}

	for key, entry := range previous.Players {
		if seen[key] || !covered[entry.Sport] {
			continue
		}
		result.Dropped = append(result.Dropped, entry)
	}

	sortChanges(result.Changes)
	sortRecords(result.NewlyListed)
	sort.Slice(result.Dropped, func(i, j int) bool {
		return result.Dropped[i].Player.Key() < result.Dropped[j].Player.Key()
	})
	return result
}

// sortChanges orders by new-status severity, then recency, then name,
// so the most urgent movement reads first.
func sortChanges(changes []domain.StatusChange) {
	sort.Slice(changes, func(i, j int) bool {
		a, b := changes[i], changes[j]
		if sa, sb := a.To.Severity(), b.To.Severity(); sa != sb {
			return sa > sb
		}
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return strings.ToLower(a.Player.Name) < strings.ToLower(b.Player.Name)
	})
}

func sortRecords(records []domain.InjuryRecord) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if sa, sb := a.Status.Severity(), b.Status.Severity(); sa != sb {
			return sa > sb
		}
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return strings.ToLower(a.Player.Name) < strings.ToLower(b.Player.Name)
	})
}
