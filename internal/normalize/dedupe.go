package normalize

import (
	"sort"
	"strings"

	"injury-report-service/internal/domain"
	"injury-report-service/internal/sources"
)

// Dedupe collapses records describing the same player into one. The
// freshest UpdatedAt wins; on an exact timestamp tie the higher-ranked
// origin wins. Losing origins are recorded on the survivor so reports
// can show which feeds corroborated the entry.
func Dedupe(records []domain.InjuryRecord) []domain.InjuryRecord {
	byPlayer := make(map[string]domain.InjuryRecord, len(records))

	for _, record := range records {
		key := record.Player.Key()
		current, seen := byPlayer[key]
		if !seen {
			byPlayer[key] = record
			continue
		}

		winner, loser := current, record
		if supersedes(record, current) {
			winner, loser = record, current
		}
		winner.Superseded = mergeSuperseded(winner.Superseded, loser.Superseded, loser.Source)
		byPlayer[key] = winner
	}

	out := make([]domain.InjuryRecord, 0, len(byPlayer))
	for _, record := range byPlayer {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].Player.Key(), out[j].Player.Key()) < 0
	})
	return out
}

func supersedes(candidate, incumbent domain.InjuryRecord) bool {
	if candidate.UpdatedAt.After(incumbent.UpdatedAt) {
		return true
	}
	if candidate.UpdatedAt.Before(incumbent.UpdatedAt) {
		return false
	}
	return sources.Priority(candidate.Source) > sources.Priority(incumbent.Source)
}

func mergeSuperseded(existing, losers []string, loser string) []string {
	merged := existing
	for _, origin := range append(losers, loser) {
		if origin == "" || contains(merged, origin) {
			continue
		}
		merged = append(merged, origin)
	}
	return merged
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
