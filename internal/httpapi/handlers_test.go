package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"injury-report-service/internal/diff"
	"injury-report-service/internal/domain"
	"injury-report-service/internal/poller"
	"injury-report-service/internal/report"
)

type stubReports struct {
	report *report.Report
	status poller.Status
}

func (s *stubReports) Latest() *report.Report { return s.report }
func (s *stubReports) Status() poller.Status  { return s.status }

func readyStatus() poller.Status {
	return poller.Status{LastSuccess: time.Now()}
}

func sampleReport() *report.Report {
	now := time.Date(2024, 6, 3, 18, 0, 0, 0, time.UTC)
	tatum := domain.InjuryRecord{
		Player:    domain.PlayerKey{Name: "Jayson Tatum", Team: "Boston Celtics"},
		Sport:     domain.SportNBA,
		Status:    domain.StatusOut,
		UpdatedAt: now,
		Game:      &domain.GameContext{GameID: "nba-1", Opponent: "Dallas Mavericks"},
	}
	return report.Build(report.Input{
		Sports:  []domain.Sport{domain.SportNBA},
		Records: []domain.InjuryRecord{tatum},
		Diff: diff.Result{
			Changes: []domain.StatusChange{{
				Player: tatum.Player,
				Sport:  domain.SportNBA,
				From:   domain.StatusQuestionable,
				To:     domain.StatusOut,
			}},
		},
	}, now)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthAlwaysOK(t *testing.T) {
	h := NewHandler(&stubReports{}, nil)
	rec := get(t, h, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyFollowsPollerStatus(t *testing.T) {
	h := NewHandler(&stubReports{status: readyStatus()}, nil)
	if rec := get(t, h, "/ready"); rec.Code != http.StatusOK {
		t.Fatalf("expected ready, got %d", rec.Code)
	}

	h = NewHandler(&stubReports{status: poller.Status{LastError: "boom"}}, nil)
	rec := get(t, h, "/ready")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "boom" {
		t.Fatalf("expected last error surfaced, got %+v", body)
	}
}

func TestReportServedBeforeFirstRunIs503(t *testing.T) {
	h := NewHandler(&stubReports{}, nil)
	for _, path := range []string{"/report", "/report/nba", "/changes", "/impact"} {
		if rec := get(t, h, path); rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s: expected 503 before first run, got %d", path, rec.Code)
		}
	}
}

func TestReportReturnsLatestRun(t *testing.T) {
	h := NewHandler(&stubReports{report: sampleReport(), status: readyStatus()}, nil)

	rec := get(t, h, "/report")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body report.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Sports[domain.SportNBA] == nil || len(body.Sports[domain.SportNBA].Injuries) != 1 {
		t.Fatalf("unexpected report body: %+v", body)
	}
}

func TestSportReportValidatesSport(t *testing.T) {
	h := NewHandler(&stubReports{report: sampleReport(), status: readyStatus()}, nil)

	if rec := get(t, h, "/report/nba"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := get(t, h, "/report/curling"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown sport, got %d", rec.Code)
	}
	if rec := get(t, h, "/report/mlb"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for uncovered sport, got %d", rec.Code)
	}
}

func TestChangesEndpointProjectsChanges(t *testing.T) {
	h := NewHandler(&stubReports{report: sampleReport(), status: readyStatus()}, nil)

	rec := get(t, h, "/changes")
	var body struct {
		Count   int            `json:"count"`
		Changes []report.Entry `json:"changes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Count != 1 || body.Changes[0].Player.Name != "Jayson Tatum" {
		t.Fatalf("unexpected changes payload: %+v", body)
	}
}

func TestImpactEndpointProjectsUrgentEntries(t *testing.T) {
	h := NewHandler(&stubReports{report: sampleReport(), status: readyStatus()}, nil)

	rec := get(t, h, "/impact")
	var body struct {
		Count  int            `json:"count"`
		Impact []report.Entry `json:"impact"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Count != 1 {
		t.Fatalf("unexpected impact payload: %+v", body)
	}
}

func TestUnknownPathIs404(t *testing.T) {
	h := NewHandler(&stubReports{}, nil)
	if rec := get(t, h, "/nope"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := NewHandler(&stubReports{report: sampleReport(), status: readyStatus()}, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/report", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RequestIDFromContext(r.Context()) == "" {
			t.Error("request ID missing from context")
		}
		w.WriteHeader(http.StatusNoContent)
	})
	h := LoggingMiddleware(nil, nil, inner)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("response must carry a request ID")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status not propagated, got %d", rec.Code)
	}
}

func TestLoggingMiddlewareKeepsValidIncomingRequestID(t *testing.T) {
	h := LoggingMiddleware(nil, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("valid incoming ID must be kept, got %q", got)
	}
}

func TestNormalizePathBoundsCardinality(t *testing.T) {
	if got := normalizePath("/report/nba"); got != "/report/:sport" {
		t.Fatalf("unexpected normalized path %q", got)
	}
	if got := normalizePath("/report"); got != "/report" {
		t.Fatalf("unexpected normalized path %q", got)
	}
}
