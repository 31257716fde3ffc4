package domain

import "time"

// StatusChange records a player whose canonical status differs from the
// previously persisted snapshot. It is derived during a run, never stored.
type StatusChange struct {
	Player      PlayerKey    `json:"player"`
	Sport       Sport        `json:"sport"`
	From        Status       `json:"previous_status"`
	To          Status       `json:"status"`
	Description string       `json:"injury,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at"`
	DetectedAt  time.Time    `json:"detected_at"`
	Game        *GameContext `json:"game_today"`
}
