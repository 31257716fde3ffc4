package report

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"injury-report-service/internal/diff"
	"injury-report-service/internal/domain"
	"injury-report-service/internal/state"
)

// Entry is one player's line in a report: the canonical record plus
// run-relative flags the raw record cannot carry.
type Entry struct {
	domain.InjuryRecord
	StatusChanged  bool          `json:"status_changed"`
	PreviousStatus domain.Status `json:"previous_status,omitempty"`
	NewlyListed    bool          `json:"newly_listed,omitempty"`
}

// Urgent reports whether the entry needs attention before tonight's
// games: the player's team plays today and the listing is either
// meaningfully severe or moved this run.
func (e Entry) Urgent() bool {
	if e.Game == nil {
		return false
	}
	return e.Status.Severity() >= 2 || e.StatusChanged
}

// SportReport groups one sport's section of the aggregate report. The
// games_today and affected_games keys carry counts; the matchup detail
// lists serialize separately so count consumers stay cheap.
type SportReport struct {
	Sport              domain.Sport          `json:"sport"`
	Injuries           []Entry               `json:"injuries"`
	Totals             map[domain.Status]int `json:"totals"`
	TotalInjuries      int                   `json:"total_injuries"`
	StatusChanges      int                   `json:"status_changes"`
	GamesTodayCount    int                   `json:"games_today"`
	AffectedGamesCount int                   `json:"affected_games"`
	GamesToday         []domain.Matchup      `json:"games_today_detail,omitempty"`
	AffectedGames      []domain.Matchup      `json:"affected_games_detail,omitempty"`
	NoLongerListed     []state.Entry         `json:"no_longer_listed,omitempty"`
}

// Report is the aggregate outcome of one run across all covered sports.
type Report struct {
	RunID            string                        `json:"run_id"`
	GeneratedAt      time.Time                     `json:"generated_at"`
	Sports           map[domain.Sport]*SportReport `json:"sports"`
	Sources          []domain.SourceResult         `json:"sources"`
	ScheduleDegraded bool                          `json:"schedule_degraded,omitempty"`
}

// Input carries everything the builder folds into a report.
type Input struct {
	Sports           []domain.Sport
	Records          []domain.InjuryRecord
	Diff             diff.Result
	Slates           map[domain.Sport][]domain.Matchup
	Sources          []domain.SourceResult
	ScheduleDegraded bool
}

// Build assembles the report. Entries within each sport are ordered by
// severity, then recency, then name, so readers see the worst news
// first.
func Build(in Input, now time.Time) *Report {
	changed := make(map[string]domain.StatusChange, len(in.Diff.Changes))
	for _, c := range in.Diff.Changes {
		changed[c.Player.Key()] = c
	}
	fresh := make(map[string]bool, len(in.Diff.NewlyListed))
	for _, r := range in.Diff.NewlyListed {
		fresh[r.Player.Key()] = true
	}

	out := &Report{
		RunID:            uuid.NewString(),
		GeneratedAt:      now,
		Sports:           make(map[domain.Sport]*SportReport, len(in.Sports)),
		Sources:          in.Sources,
		ScheduleDegraded: in.ScheduleDegraded,
	}
	for _, sport := range in.Sports {
		out.Sports[sport] = &SportReport{
			Sport:      sport,
			Totals:     make(map[domain.Status]int),
			GamesToday: in.Slates[sport],
		}
	}

	for _, record := range in.Records {
		section, ok := out.Sports[record.Sport]
		if !ok {
			continue
		}

		entry := Entry{InjuryRecord: record, NewlyListed: fresh[record.Player.Key()]}
		if change, ok := changed[record.Player.Key()]; ok {
			entry.StatusChanged = true
			entry.PreviousStatus = change.From
		}
		section.Injuries = append(section.Injuries, entry)
		section.Totals[record.Status]++
	}

	for _, dropped := range in.Diff.Dropped {
		if section, ok := out.Sports[dropped.Sport]; ok {
			section.NoLongerListed = append(section.NoLongerListed, dropped)
		}
	}

	for _, section := range out.Sports {
		sortEntries(section.Injuries)
		section.AffectedGames = affectedGames(section.GamesToday, section.Injuries)
		section.TotalInjuries = len(section.Injuries)
		section.GamesTodayCount = len(section.GamesToday)
		section.AffectedGamesCount = len(section.AffectedGames)
		for _, entry := range section.Injuries {
			if entry.StatusChanged {
				section.StatusChanges++
			}
		}
	}
	return out
}

// sidelined reports whether a status is expected to keep the player off
// the floor: out, doubtful, and the IL tiers. Questionable and below do
// not mark a game.
func sidelined(status domain.Status) bool {
	return status.Severity() >= 4 || status == domain.StatusDoubtful
}

// affectedGames keeps games where either side carries at least one
// sidelined listing.
func affectedGames(slate []domain.Matchup, entries []Entry) []domain.Matchup {
	if len(slate) == 0 {
		return nil
	}

	hit := make(map[string]bool)
	for _, e := range entries {
		if e.Game != nil && sidelined(e.Status) {
			hit[e.Game.GameID] = true
		}
	}

	var affected []domain.Matchup
	for _, game := range slate {
		if hit[game.GameID] {
			affected = append(affected, game)
		}
	}
	return affected
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if sa, sb := a.Status.Severity(), b.Status.Severity(); sa != sb {
			return sa > sb
		}
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return strings.ToLower(a.Player.Name) < strings.ToLower(b.Player.Name)
	})
}
