package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"riide-backend/internal/pkg/config"
)

func NewClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}

	return client, cleanup, nil
}

// GetJSON loads a cached value into dest. A miss returns false with no error;
// corrupt entries are treated as misses so a bad write can never wedge reads.
func GetJSON(ctx context.Context, client *redis.Client, key string, dest any) (bool, error) {
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		slog.Warn("dropping corrupt cache entry", "key", key, "error", err.Error())
		client.Del(ctx, key)
		return false, nil
	}

	return true, nil
}

// SetJSON stores a value with the given TTL. Failures are logged, not
// returned: the cache is an optimization and must never fail a read path.
func SetJSON(ctx context.Context, client *redis.Client, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("failed to marshal cache value", "key", key, "error", err.Error())
		return
	}

	if err := client.Set(ctx, key, raw, ttl).Err(); err != nil {
		slog.Warn("failed to write cache entry", "key", key, "error", err.Error())
	}
}
