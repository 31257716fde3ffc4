package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"injury-report-service/internal/domain"
	"injury-report-service/internal/schedule"
	"injury-report-service/internal/sources"
	"injury-report-service/internal/state"
	"injury-report-service/internal/teststubs"
)

func nbaSource(observations ...domain.RawObservation) *teststubs.StubSource {
	return &teststubs.StubSource{
		Name:         "espn",
		SportName:    domain.SportNBA,
		Observations: observations,
	}
}

func tatumOut() domain.RawObservation {
	return domain.RawObservation{
		Player:      "Jayson Tatum",
		Team:        "Boston Celtics",
		Status:      "out",
		Description: "ankle sprain",
	}
}

func newEngine(opts Options) *Engine {
	if opts.Sports == nil {
		opts.Sports = []domain.Sport{domain.SportNBA}
	}
	return New(opts)
}

func TestRunProducesReportAndPersistsState(t *testing.T) {
	store := state.NewMemoryStore()
	eng := newEngine(Options{
		Sources: []sources.Source{nbaSource(tatumOut())},
		Store:   store,
		Schedule: &schedule.StaticProvider{
			BySport: map[domain.Sport][]domain.Matchup{
				domain.SportNBA: {{
					Sport:    domain.SportNBA,
					GameID:   "nba-1",
					HomeTeam: "Boston Celtics",
					AwayTeam: "Dallas Mavericks",
				}},
			},
		},
	})

	rep, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	section := rep.ForSport(domain.SportNBA)
	if section == nil || len(section.Injuries) != 1 {
		t.Fatalf("expected 1 entry, got %+v", section)
	}
	entry := section.Injuries[0]
	if entry.Status != domain.StatusOut || !entry.NewlyListed {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Game == nil || entry.Game.GameID != "nba-1" {
		t.Fatalf("expected game annotation, got %+v", entry.Game)
	}

	snap, _ := store.Load(context.Background())
	if _, ok := snap.Lookup(domain.PlayerKey{Name: "Jayson Tatum", Team: "Boston Celtics"}); !ok {
		t.Fatal("run must persist the player to state")
	}
}

func TestRunSurvivesPartialSourceFailure(t *testing.T) {
	failing := &teststubs.StubSource{
		Name:      "cbs",
		SportName: domain.SportNBA,
		Err:       &sources.FetchError{Origin: "cbs", StatusCode: 500, Err: errors.New("boom")},
	}
	eng := newEngine(Options{
		Sources: []sources.Source{nbaSource(tatumOut()), failing},
	})

	rep, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("one failed source must not fail the run: %v", err)
	}

	failed := rep.FailedSources()
	if len(failed) != 1 || failed[0].Origin != "cbs" {
		t.Fatalf("expected cbs marked failed: %+v", failed)
	}
	if rep.TotalListed() != 1 {
		t.Fatalf("healthy source's records must survive, got %d", rep.TotalListed())
	}
}

func TestRunReturnsReportEvenWhenSaveFails(t *testing.T) {
	eng := newEngine(Options{
		Sources: []sources.Source{nbaSource(tatumOut())},
		Store:   &teststubs.FlakyStore{Inner: state.NewMemoryStore(), SaveErr: errors.New("disk full")},
	})

	rep, err := eng.Run(context.Background())
	if err == nil {
		t.Fatal("save failure must surface as a run error")
	}
	if rep == nil || rep.TotalListed() != 1 {
		t.Fatal("the report must still be produced on save failure")
	}
}

func TestRunSecondIdenticalRunIsQuiet(t *testing.T) {
	store := state.NewMemoryStore()
	eng := newEngine(Options{
		Sources: []sources.Source{nbaSource(tatumOut())},
		Store:   store,
	})

	if _, err := eng.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	rep, err := eng.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(rep.Changes()) != 0 {
		t.Fatalf("identical second run must report no changes: %+v", rep.Changes())
	}
	entry := rep.ForSport(domain.SportNBA).Injuries[0]
	if entry.NewlyListed {
		t.Fatal("a player seen last run is not newly listed")
	}
}

func TestRunKeepsUnseenPlayersInState(t *testing.T) {
	store := state.NewMemoryStore()
	morant := domain.PlayerKey{Name: "Ja Morant", Team: "Memphis Grizzlies"}
	seed := state.NewSnapshot()
	seed.Players[morant.Key()] = state.Entry{Player: morant, Sport: domain.SportNBA, Status: domain.StatusOut}
	if err := store.Save(context.Background(), seed); err != nil {
		t.Fatal(err)
	}

	eng := newEngine(Options{
		Sources: []sources.Source{nbaSource(tatumOut())},
		Store:   store,
	})
	if _, err := eng.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	snap, _ := store.Load(context.Background())
	if _, ok := snap.Lookup(morant); !ok {
		t.Fatal("players absent from this run must survive the merge")
	}
	if snap.Len() != 2 {
		t.Fatalf("expected merged snapshot of 2, got %d", snap.Len())
	}
}

func TestRunTimesOutSlowSources(t *testing.T) {
	slow := &blockingSource{}
	eng := newEngine(Options{
		Sources:      []sources.Source{slow},
		FetchTimeout: 20 * time.Millisecond,
	})

	rep, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("a timed-out source must not fail the run: %v", err)
	}

	failed := rep.FailedSources()
	if len(failed) != 1 || !strings.Contains(failed[0].Error, "timed out") {
		t.Fatalf("expected timeout failure, got %+v", failed)
	}
}

func TestRunDegradesWhenScheduleUnavailable(t *testing.T) {
	eng := newEngine(Options{
		Sources:  []sources.Source{nbaSource(tatumOut())},
		Schedule: &schedule.StaticProvider{Err: errors.New("schedule down")},
	})

	rep, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("schedule failure must not fail the run: %v", err)
	}
	if !rep.ScheduleDegraded {
		t.Fatal("expected degraded flag")
	}
	if rep.ForSport(domain.SportNBA).Injuries[0].Game != nil {
		t.Fatal("no annotation may be fabricated without a schedule")
	}
}

type blockingSource struct{}

func (s *blockingSource) Origin() string      { return "slow" }
func (s *blockingSource) Sport() domain.Sport { return domain.SportNBA }

func (s *blockingSource) Fetch(ctx context.Context) ([]domain.RawObservation, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
