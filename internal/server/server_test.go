package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"injury-report-service/internal/config"
	"injury-report-service/internal/state"
)

func testConfig() config.Config {
	return config.Config{
		Port:         "0",
		Sports:       []string{"nba"},
		PollInterval: time.Hour,
		RunTimeout:   time.Minute,
		FetchTimeout: 10 * time.Second,
		RetryDelay:   time.Millisecond,
		State:        config.StateConfig{Backend: "memory"},
	}
}

func TestNewServerServesHealth(t *testing.T) {
	srv, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("server construction failed: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}
}

func TestNewServerNotReadyBeforeFirstRun(t *testing.T) {
	srv, err := New(testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first run, got %d", rec.Code)
	}
}

func TestBuildEngineRunsOneShot(t *testing.T) {
	eng, err := BuildEngine(testConfig(), nil, nil)
	if err != nil {
		t.Fatalf("engine construction failed: %v", err)
	}

	rep, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if rep.ForSport("nba") == nil {
		t.Fatal("expected an nba section even with empty feeds")
	}
}

func TestBuildStoreSelectsBackend(t *testing.T) {
	if _, ok := buildStore(config.StateConfig{Backend: "memory"}, nil).(*state.MemoryStore); !ok {
		t.Fatal("memory backend must build a MemoryStore")
	}
	if _, ok := buildStore(config.StateConfig{Backend: "fs", Path: "x.json"}, nil).(*state.FSStore); !ok {
		t.Fatal("fs backend must build an FSStore")
	}
	if _, ok := buildStore(config.StateConfig{Backend: "bogus", Path: "x.json"}, nil).(*state.FSStore); !ok {
		t.Fatal("unknown backend must fall back to FSStore")
	}
}

func TestBuildSourcesSkipsOriginsWithoutAdapters(t *testing.T) {
	cfg := testConfig()
	cfg.Sports = []string{"nba", "mlb"}

	built := buildSources(cfg, config.SourcesFile{
		Sports: map[string][]string{
			"nba": {"espn", "fixture"},
			"mlb": {"mlb-transactions"},
		},
	}, nil)

	if len(built) != 2 {
		t.Fatalf("expected fixture and mlb-transactions adapters only, got %d", len(built))
	}
}

func TestBuildScheduleNilWithoutBaseURL(t *testing.T) {
	if buildSchedule(config.ScheduleConfig{}) != nil {
		t.Fatal("no base URL must mean no schedule provider")
	}
	if buildSchedule(config.ScheduleConfig{BaseURL: "https://example.com"}) == nil {
		t.Fatal("configured base URL must build a provider")
	}
}
