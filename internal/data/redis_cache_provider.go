package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"curiona-admin/internal/metrics"

	"github.com/redis/go-redis/v9"
)

// RedisCacheClient is the subset of the go-redis client used by RedisCache.
type RedisCacheClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	PTTL(ctx context.Context, key string) *redis.DurationCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type RedisCache struct {
	client RedisCacheClient
	logger *slog.Logger
}

func NewRedisCache(client RedisCacheClient, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		logger: logger,
	}
}

// Client exposes the underlying client, e.g. for pool metrics.
func (r *RedisCache) Client() RedisCacheClient {
	return r.client
}

// key generates a namespaced Redis key
func (r *RedisCache) key(name string) string {
	return fmt.Sprintf("cache:counter:%s", name)
}

func (r *RedisCache) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeRedis, metrics.CacheOperationTypeIncrement).Observe(time.Since(start).Seconds())
	}()

	redisKey := r.key(key)

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		r.logger.Error("error executing redis INCR", "key", key, "error", err)
		return 0, 0, err
	}

	if err := r.client.ExpireNX(ctx, redisKey, window).Err(); err != nil {
		r.logger.Error("error executing redis EXPIRE", "key", key, "error", err)
		return count, window, err
	}

	ttl, err := r.client.PTTL(ctx, redisKey).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}

	return count, ttl, nil
}

func (r *RedisCache) Get(ctx context.Context, key string) (int64, bool) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeRedis, metrics.CacheOperationTypeGet).Observe(time.Since(start).Seconds())
	}()

	count, err := r.client.Get(ctx, r.key(key)).Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Error("error executing redis GET", "key", key, "error", err)
		}
		return 0, false
	}

	return count, true
}

func (r *RedisCache) Delete(ctx context.Context, key string) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeRedis, metrics.CacheOperationTypeDelete).Observe(time.Since(start).Seconds())
	}()

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("error executing redis DEL", "key", key, "error", err)
	}
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
