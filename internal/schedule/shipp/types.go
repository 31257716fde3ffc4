package shipp

import (
	"time"

	"injury-report-service/internal/domain"
)

type scheduleResponse struct {
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	ID        string    `json:"id"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	StartTime time.Time `json:"start_time"`
}

func mapGame(g gameResponse, sport domain.Sport) domain.Matchup {
	return domain.Matchup{
		Sport:     sport,
		GameID:    g.ID,
		HomeTeam:  g.HomeTeam,
		AwayTeam:  g.AwayTeam,
		StartTime: g.StartTime,
	}
}
