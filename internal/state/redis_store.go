package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"injury-report-service/internal/logging"
)

// RedisStore keeps the snapshot under a single Redis key, for
// deployments where runs happen on hosts without durable disks.
type RedisStore struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// NewRedisStore constructs a Redis-backed store writing to key.
func NewRedisStore(client *redis.Client, key string, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, key: key, logger: logger}
}

// Load fetches the snapshot. A missing key is a normal first run; an
// unreadable payload is logged and degrades to an empty snapshot.
func (s *RedisStore) Load(ctx context.Context) (Snapshot, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logging.Warn(s.logger, "state load failed, starting empty", "key", s.key, "error", err)
		}
		return NewSnapshot(), nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logging.Warn(s.logger, "state payload corrupt, starting empty", "key", s.key, "error", err)
		return NewSnapshot(), nil
	}
	if snap.Players == nil {
		snap.Players = make(map[string]Entry)
	}
	return snap, nil
}

// Save overwrites the snapshot key. SET is atomic on the Redis side, so
// readers never observe a partial payload.
func (s *RedisStore) Save(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode state snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write state snapshot: %w", err)
	}
	return nil
}
