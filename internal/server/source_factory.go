package server

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cenkalti/backoff/v4"
	"github.com/jonboulle/clockwork"

	"injury-report-service/internal/config"
	"injury-report-service/internal/domain"
	"injury-report-service/internal/logging"
	"injury-report-service/internal/sources"
	"injury-report-service/internal/sources/mlbwire"
)

// fixtureDir is where per-sport fixture payloads live when the fixture
// origin is enabled.
const fixtureDir = "data/fixtures"

const mlbWireHost = "statsapi.mlb.com"

// buildSources instantiates an adapter per (sport, origin) pair from
// the sources config. Origins without a built-in adapter are skipped
// with a warning; their feeds are ingested out-of-process.
func buildSources(cfg config.Config, srcCfg config.SourcesFile, logger *slog.Logger) []sources.Source {
	throttle := sources.NewThrottle(cfg.ThrottleInterval, clockwork.NewRealClock())

	var built []sources.Source
	for _, rawSport := range cfg.Sports {
		sport, ok := domain.ParseSport(rawSport)
		if !ok {
			logging.Warn(logger, "ignoring unknown sport in config", logging.FieldSport, rawSport)
			continue
		}

		for _, origin := range srcCfg.Sports[string(sport)] {
			src := buildSource(origin, sport, throttle, logger)
			if src == nil {
				continue
			}
			built = append(built, sources.NewRetrySource(src, backoff.NewConstantBackOff(cfg.RetryDelay), logger))
		}
	}
	return built
}

func buildSource(origin string, sport domain.Sport, throttle *sources.Throttle, logger *slog.Logger) sources.Source {
	switch origin {
	case "fixture":
		return buildFixtureSource(sport, logger)
	case "mlb-transactions":
		if sport != domain.SportMLB {
			logging.Warn(logger, "mlb-transactions only serves mlb, skipping",
				logging.FieldOrigin, origin, logging.FieldSport, string(sport))
			return nil
		}
		client := mlbwire.NewClient(mlbwire.Config{})
		return sources.NewThrottledSource(client, throttle, mlbWireHost)
	default:
		logging.Warn(logger, "no built-in adapter for origin, skipping",
			logging.FieldOrigin, origin, logging.FieldSport, string(sport))
		return nil
	}
}

// buildFixtureSource loads data/fixtures/<sport>.json when present and
// degrades to an empty feed otherwise.
func buildFixtureSource(sport domain.Sport, logger *slog.Logger) sources.Source {
	path := filepath.Join(fixtureDir, string(sport)+".json")
	if _, err := os.Stat(path); err != nil {
		return sources.NewFixtureSource("fixture", sport, nil)
	}

	src, err := sources.NewFixtureSourceFromFile("fixture", sport, path)
	if err != nil {
		logging.Warn(logger, "fixture payload unreadable, serving empty feed",
			logging.FieldSport, string(sport), "error", err)
		return sources.NewFixtureSource("fixture", sport, nil)
	}
	return src
}
