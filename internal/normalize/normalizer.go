package normalize

import (
	"log/slog"
	"strings"
	"time"

	"injury-report-service/internal/domain"
	"injury-report-service/internal/logging"
	"injury-report-service/internal/timeutil"
)

// builtinAliases maps the status spellings seen across feeds to the
// canonical vocabulary. Lookup keys are lowercased and trimmed.
var builtinAliases = map[string]domain.Status{
	"out":                domain.StatusOut,
	"o":                  domain.StatusOut,
	"doubtful":           domain.StatusDoubtful,
	"d":                  domain.StatusDoubtful,
	"questionable":       domain.StatusQuestionable,
	"q":                  domain.StatusQuestionable,
	"gtd":                domain.StatusQuestionable,
	"game-time decision": domain.StatusQuestionable,
	"day-to-day":         domain.StatusDayToDay,
	"day to day":         domain.StatusDayToDay,
	"dtd":                domain.StatusDayToDay,
	"probable":           domain.StatusProbable,
	"p":                  domain.StatusProbable,
	"10-day il":          domain.StatusIL10,
	"10 day il":          domain.StatusIL10,
	"il-10":              domain.StatusIL10,
	"15-day il":          domain.StatusIL15,
	"15 day il":          domain.StatusIL15,
	"il-15":              domain.StatusIL15,
	"60-day il":          domain.StatusIL60,
	"60 day il":          domain.StatusIL60,
	"il-60":              domain.StatusIL60,
	"il":                 domain.StatusInjured,
	"injured list":       domain.StatusInjured,
	"injured":            domain.StatusInjured,
	"injury":             domain.StatusInjured,
	"suspended":          domain.StatusSuspended,
	"susp":               domain.StatusSuspended,
	"suspension":         domain.StatusSuspended,
}

// sportAliases overrides the builtin table where the same token means
// something narrower in one sport. MLB's bare "injured list" (the 7-day
// concussion list, mostly) lands on the shortest IL bucket.
var sportAliases = map[domain.Sport]map[string]domain.Status{
	domain.SportMLB: {
		"il":           domain.StatusIL10,
		"injured list": domain.StatusIL10,
		"injured":      domain.StatusIL10,
	},
}

// Normalizer converts raw observations into canonical injury records.
// Extra aliases from the sources config extend the builtin table per
// sport without replacing it.
type Normalizer struct {
	extras map[domain.Sport]map[string]domain.Status
	logger *slog.Logger
}

// NewNormalizer builds a normalizer. extras is keyed by sport name,
// then raw token, mapping to canonical status strings; unknown target
// statuses in the config are dropped with a warning.
func NewNormalizer(extras map[string]map[string]string, logger *slog.Logger) *Normalizer {
	resolved := make(map[domain.Sport]map[string]domain.Status, len(extras))
	for rawSport, table := range extras {
		sport, ok := domain.ParseSport(rawSport)
		if !ok {
			logging.Warn(logger, "ignoring alias table for unknown sport", logging.FieldSport, rawSport)
			continue
		}
		byToken := make(map[string]domain.Status, len(table))
		for token, target := range table {
			status := domain.Status(strings.ToLower(strings.TrimSpace(target)))
			if !knownStatus(status) {
				logging.Warn(logger, "ignoring alias with unknown target status",
					logging.FieldSport, rawSport, "token", token, "target", target)
				continue
			}
			byToken[normalizeToken(token)] = status
		}
		resolved[sport] = byToken
	}
	return &Normalizer{extras: resolved, logger: logger}
}

// Normalize maps raw observations for one origin into injury records.
// Observations missing a player or team are skipped and counted; an
// unrecognized status token is kept as Unmapped rather than dropped, so
// a new feed spelling degrades visibly instead of silently.
func (n *Normalizer) Normalize(observations []domain.RawObservation, sport domain.Sport, origin string, fetchedAt time.Time) ([]domain.InjuryRecord, int) {
	records := make([]domain.InjuryRecord, 0, len(observations))
	skipped := 0

	for _, obs := range observations {
		player := strings.TrimSpace(obs.Player)
		team := strings.TrimSpace(obs.Team)
		if player == "" || team == "" {
			skipped++
			logging.Warn(n.logger, "skipping observation without player identity",
				logging.FieldOrigin, origin,
				logging.FieldSport, string(sport),
				logging.FieldPlayer, player)
			continue
		}

		status := n.resolveStatus(obs.Status, sport)
		updatedAt := fetchedAt
		if parsed, ok := timeutil.ParseLoose(obs.Updated, fetchedAt); ok {
			updatedAt = parsed
		}

		records = append(records, domain.InjuryRecord{
			Player:      domain.PlayerKey{Name: player, Team: team},
			Sport:       sport,
			Status:      status,
			RawStatus:   strings.TrimSpace(obs.Status),
			Description: strings.TrimSpace(obs.Description),
			UpdatedAt:   updatedAt,
			FetchedAt:   fetchedAt,
			Source:      origin,
		})
	}
	return records, skipped
}

func (n *Normalizer) resolveStatus(raw string, sport domain.Sport) domain.Status {
	token := normalizeToken(raw)
	if token == "" {
		return domain.StatusUnmapped
	}

	status, ok := n.extras[sport][token]
	if !ok {
		status, ok = sportAliases[sport][token]
	}
	if !ok {
		status, ok = builtinAliases[token]
	}
	if !ok {
		return domain.StatusUnmapped
	}
	if !status.AppliesTo(sport) {
		return domain.StatusUnmapped
	}
	return status
}

func normalizeToken(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func knownStatus(s domain.Status) bool {
	switch s {
	case domain.StatusOut, domain.StatusDoubtful, domain.StatusQuestionable,
		domain.StatusDayToDay, domain.StatusProbable,
		domain.StatusIL10, domain.StatusIL15, domain.StatusIL60,
		domain.StatusInjured, domain.StatusSuspended, domain.StatusUnmapped:
		return true
	}
	return false
}
