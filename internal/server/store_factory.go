package server

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"injury-report-service/internal/config"
	"injury-report-service/internal/logging"
	"injury-report-service/internal/state"
)

// buildStore selects the snapshot store backend. An unknown backend
// name falls back to the filesystem store rather than failing boot.
func buildStore(cfg config.StateConfig, logger *slog.Logger) state.Store {
	switch cfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return state.NewRedisStore(client, cfg.RedisKey, logger)
	case "memory":
		return state.NewMemoryStore()
	case "fs":
		return state.NewFSStore(cfg.Path, logger)
	default:
		logging.Warn(logger, "unknown state backend, using fs",
			"backend", cfg.Backend, logging.FieldStatePath, cfg.Path)
		return state.NewFSStore(cfg.Path, logger)
	}
}
