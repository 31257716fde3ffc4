package schedule

import (
	"testing"
	"time"

	"injury-report-service/internal/domain"
)

func TestTeamsMatchVariants(t *testing.T) {
	cases := []struct {
		name     string
		feed     string
		schedule string
		want     bool
	}{
		{"exact", "Memphis Grizzlies", "Memphis Grizzlies", true},
		{"case and spacing", "  memphis   grizzlies ", "Memphis Grizzlies", true},
		{"nickname only", "Grizzlies", "Memphis Grizzlies", true},
		{"city prefix abbreviation", "MEM", "Memphis Grizzlies", true},
		{"initials abbreviation", "LAL", "Los Angeles Lakers", true},
		{"different clubs", "Memphis Grizzlies", "Boston Celtics", false},
		{"shared city different nickname", "Los Angeles Lakers", "Los Angeles Clippers", false},
		{"empty feed team", "", "Memphis Grizzlies", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TeamsMatch(tc.feed, tc.schedule); got != tc.want {
				t.Fatalf("TeamsMatch(%q, %q) = %v, want %v", tc.feed, tc.schedule, got, tc.want)
			}
		})
	}
}

func slate() []domain.Matchup {
	tip := time.Date(2024, 6, 3, 23, 30, 0, 0, time.UTC)
	return []domain.Matchup{
		{
			Sport:     domain.SportNBA,
			GameID:    "nba-1",
			HomeTeam:  "Boston Celtics",
			AwayTeam:  "Dallas Mavericks",
			StartTime: tip,
		},
	}
}

func injured(team string) domain.InjuryRecord {
	return domain.InjuryRecord{
		Player: domain.PlayerKey{Name: "Test Player", Team: team},
		Sport:  domain.SportNBA,
		Status: domain.StatusQuestionable,
	}
}

func TestAnnotateAttachesGameContext(t *testing.T) {
	records := Annotate([]domain.InjuryRecord{
		injured("Boston Celtics"),
		injured("Mavericks"),
		injured("Memphis Grizzlies"),
	}, slate())

	home := records[0].Game
	if home == nil || !home.Home || home.Opponent != "Dallas Mavericks" {
		t.Fatalf("home side annotation wrong: %+v", home)
	}

	away := records[1].Game
	if away == nil || away.Home || away.Opponent != "Boston Celtics" {
		t.Fatalf("away side annotation wrong: %+v", away)
	}

	if records[2].Game != nil {
		t.Fatalf("team without a game today must keep nil context, got %+v", records[2].Game)
	}
}

func TestAnnotateWithEmptySlateLeavesRecordsUntouched(t *testing.T) {
	in := []domain.InjuryRecord{injured("Boston Celtics")}
	out := Annotate(in, nil)

	if len(out) != 1 || out[0].Game != nil {
		t.Fatalf("empty slate must not annotate: %+v", out)
	}
}

func TestAnnotateDoesNotMutateInput(t *testing.T) {
	in := []domain.InjuryRecord{injured("Boston Celtics")}
	Annotate(in, slate())

	if in[0].Game != nil {
		t.Fatal("annotate must not mutate its input slice")
	}
}
