package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"injury-report-service/internal/config"
	"injury-report-service/internal/domain"
	"injury-report-service/internal/logging"
	"injury-report-service/internal/report"
	"injury-report-service/internal/server"
)

const appVersion = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return 0
	}

	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	var (
		sportFlag   = flag.String("sport", "", "limit the run to one sport (nba, mlb, soccer)")
		changesOnly = flag.Bool("changes-only", false, "print only status changes")
		todayOnly   = flag.Bool("today-only", false, "print only players whose team plays today")
		format      = flag.String("format", "text", "output format: text or json")
		serve       = flag.Bool("serve", false, "run as a long-lived service with an HTTP API")
	)
	flag.Parse()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "injury-report-service",
		Version: appVersion,
	})

	if *sportFlag != "" {
		sport, ok := domain.ParseSport(*sportFlag)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown sport %q\n", *sportFlag)
			return 2
		}
		cfg.Sports = []string{string(sport)}
	}

	if *serve {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, err := server.New(cfg, logger)
		if err != nil {
			logging.Error(logger, "server construction failed", err)
			return 1
		}
		srv.Run(ctx, stop)
		return 0
	}

	return runOnce(cfg, logger, *format, *changesOnly, *todayOnly)
}

// runOnce executes a single aggregation pass and prints the report. A
// failed state save still prints the report but exits non-zero, so cron
// wrappers notice.
func runOnce(cfg config.Config, logger *slog.Logger, format string, changesOnly, todayOnly bool) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RunTimeout)
		defer cancel()
	}

	eng, err := server.BuildEngine(cfg, logger, nil)
	if err != nil {
		logging.Error(logger, "engine construction failed", err)
		return 1
	}

	rep, runErr := eng.Run(ctx)
	if rep == nil {
		logging.Error(logger, "run produced no report", runErr)
		return 1
	}

	if err := printReport(rep, format, changesOnly, todayOnly); err != nil {
		logging.Error(logger, "rendering report failed", err)
		return 1
	}

	if runErr != nil {
		logging.Error(logger, "run finished with error", runErr)
		return 1
	}
	return 0
}

func printReport(rep *report.Report, format string, changesOnly, todayOnly bool) error {
	switch {
	case changesOnly:
		return printJSONOrList(rep.Changes(), rep, format)
	case todayOnly:
		return printJSONOrList(rep.TodayImpact(), rep, format)
	case format == "json":
		return encodeJSON(rep)
	default:
		fmt.Print(rep.Summary())
		return nil
	}
}

func printJSONOrList(entries []report.Entry, rep *report.Report, format string) error {
	if format == "json" {
		return encodeJSON(entries)
	}
	for _, entry := range entries {
		line := fmt.Sprintf("[%s] %s (%s) - %s", entry.Sport, entry.Player.Name, entry.Player.Team, entry.Status)
		if entry.StatusChanged {
			line += fmt.Sprintf(" (was %s)", entry.PreviousStatus)
		}
		if entry.Description != "" {
			line += " - " + entry.Description
		}
		fmt.Println(line)
	}
	if len(entries) == 0 {
		fmt.Println("nothing to report")
	}
	return nil
}

func encodeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
