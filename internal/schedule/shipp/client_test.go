package shipp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"injury-report-service/internal/domain"
)

func TestMatchupsFetchesAndMapsSlate(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"games": [
				{
					"id": "nba-20240603-bos-dal",
					"home_team": "Boston Celtics",
					"away_team": "Dallas Mavericks",
					"start_time": "2024-06-03T23:30:00Z"
				}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret", HTTPClient: srv.Client()})
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	matchups, err := client.Matchups(context.Background(), domain.SportNBA, date)
	if err != nil {
		t.Fatalf("matchups failed: %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if !strings.Contains(gotQuery, "sport=nba") || !strings.Contains(gotQuery, "date=2024-06-03") {
		t.Fatalf("unexpected query %q", gotQuery)
	}

	if len(matchups) != 1 {
		t.Fatalf("expected 1 matchup, got %d", len(matchups))
	}
	m := matchups[0]
	if m.GameID != "nba-20240603-bos-dal" || m.HomeTeam != "Boston Celtics" || m.Sport != domain.SportNBA {
		t.Fatalf("unexpected matchup: %+v", m)
	}
}

func TestMatchupsSurfacesRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	_, err := client.Matchups(context.Background(), domain.SportNBA, time.Now())
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected rate limit error, got %v", err)
	}
}

func TestMatchupsRejectsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if _, err := client.Matchups(context.Background(), domain.SportNBA, time.Now()); err == nil {
		t.Fatal("expected error")
	}
}
