package main

import (
	"testing"
	"time"

	"injury-report-service/internal/diff"
	"injury-report-service/internal/domain"
	"injury-report-service/internal/report"
)

func TestRunHonorsSkipEnv(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	if code := run(); code != 0 {
		t.Fatalf("expected clean exit, got %d", code)
	}
}

func TestPrintReportFormats(t *testing.T) {
	rep := report.Build(report.Input{
		Sports: []domain.Sport{domain.SportNBA},
		Records: []domain.InjuryRecord{{
			Player: domain.PlayerKey{Name: "Jayson Tatum", Team: "Boston Celtics"},
			Sport:  domain.SportNBA,
			Status: domain.StatusOut,
		}},
		Diff: diff.Result{},
	}, time.Now())

	for _, format := range []string{"text", "json"} {
		if err := printReport(rep, format, false, false); err != nil {
			t.Fatalf("format %s failed: %v", format, err)
		}
	}
	if err := printReport(rep, "text", true, false); err != nil {
		t.Fatalf("changes-only failed: %v", err)
	}
	if err := printReport(rep, "text", false, true); err != nil {
		t.Fatalf("today-only failed: %v", err)
	}
}
