package schedule

import "injury-report-service/internal/domain"

// Annotate attaches today's game context to each record whose team
// appears in the slate. Records for teams without a game today keep a
// nil context; that nil is load-bearing downstream, where it separates
// "playing tonight" urgency from routine listings.
func Annotate(records []domain.InjuryRecord, matchups []domain.Matchup) []domain.InjuryRecord {
	if len(matchups) == 0 {
		return records
	}

	out := make([]domain.InjuryRecord, len(records))
	copy(out, records)

	for i := range out {
		if game := findGame(out[i].Player.Team, matchups); game != nil {
			out[i].Game = game
		}
	}
	return out
}

func findGame(team string, matchups []domain.Matchup) *domain.GameContext {
	for _, m := range matchups {
		switch {
		case TeamsMatch(team, m.HomeTeam):
			return &domain.GameContext{
				GameID:    m.GameID,
				Opponent:  m.AwayTeam,
				StartTime: m.StartTime,
				Home:      true,
			}
		case TeamsMatch(team, m.AwayTeam):
			return &domain.GameContext{
				GameID:    m.GameID,
				Opponent:  m.HomeTeam,
				StartTime: m.StartTime,
				Home:      false,
			}
		}
	}
	return nil
}
