package data

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"curiona-admin/internal/config"
)

//go:generate mockgen -source=cache_provider.go -destination=../mocks/cache.go -package=mocks

// CacheProvider stores fixed-window counters keyed by caller.
type CacheProvider interface {
	// Increment bumps key and returns the new count along with the time left in
	// the current window. The window starts with the first increment.
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	Get(ctx context.Context, key string) (int64, bool)
	Delete(ctx context.Context, key string)
	Close() error
}

// NewCacheProvider returns a new CacheProvider
func NewCacheProvider(cfg *config.Config, logger *slog.Logger) (CacheProvider, error) {
	switch cfg.Cache.Type {
	case "redis":
		if cfg.Redis == nil {
			return nil, fmt.Errorf("redis cache requires redis config")
		}
		client, err := NewRedisClient(context.Background(), cfg.Redis, cfg.Redis.CacheIndex, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect cache: %w", err)
		}
		return NewRedisCache(client, logger), nil
	case "memory", "":
		return NewMemCache(), nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Cache.Type)
	}
}
