package domain

import (
	"strings"
	"time"
)

// PlayerKey is the stable identity used to correlate a player's records
// across polls and across sources that report the same player differently.
type PlayerKey struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

// Key returns the lower-cased "name|team" identity string used as the map
// key in snapshots and dedupe.
func (p PlayerKey) Key() string {
	return strings.ToLower(strings.TrimSpace(p.Name)) + "|" + strings.ToLower(strings.TrimSpace(p.Team))
}

// GameContext describes today's matchup for a player's team.
type GameContext struct {
	GameID    string    `json:"game_id"`
	Opponent  string    `json:"opponent"`
	StartTime time.Time `json:"start_time"`
	Home      bool      `json:"home"`
}

// InjuryRecord is the canonical unit produced by normalization: one
// player's availability for one sport, after vocabulary translation and
// cross-source dedupe.
type InjuryRecord struct {
	Player      PlayerKey `json:"player"`
	Sport       Sport     `json:"sport"`
	Status      Status    `json:"status"`
	RawStatus   string    `json:"raw_status,omitempty"`
	Description string    `json:"injury,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
	FetchedAt   time.Time `json:"fetched_at"`
	Source      string    `json:"source"`
	// Superseded lists origins whose report for this player lost the
	// dedupe, kept for provenance only.
	Superseded []string `json:"superseded_sources,omitempty"`
	// Game is nil when the player's team does not play today.
	Game *GameContext `json:"game_today"`
}

// Matchup is one scheduled game as returned by the schedule provider.
type Matchup struct {
	Sport     Sport     `json:"sport"`
	GameID    string    `json:"game_id"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	StartTime time.Time `json:"start_time"`
}
