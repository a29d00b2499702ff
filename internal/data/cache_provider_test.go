package data

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"curiona-admin/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemCache_Increment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	cache := NewMemCache()
	cache.now = func() time.Time { return now }

	count, ttl, err := cache.Increment(ctx, "login:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, ttl)

	now = now.Add(15 * time.Second)
	count, ttl, err = cache.Increment(ctx, "login:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, 45*time.Second, ttl)

	got, found := cache.Get(ctx, "login:1.2.3.4")
	assert.True(t, found)
	assert.Equal(t, int64(2), got)

	now = now.Add(time.Minute)
	count, ttl, err = cache.Increment(ctx, "login:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "expired window should restart")
	assert.Equal(t, time.Minute, ttl)
}

func TestMemCache_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	cache := NewMemCache()

	for i := 0; i < 3; i++ {
		_, _, err := cache.Increment(ctx, "a", time.Minute)
		require.NoError(t, err)
	}
	_, _, err := cache.Increment(ctx, "b", time.Minute)
	require.NoError(t, err)

	a, _ := cache.Get(ctx, "a")
	b, _ := cache.Get(ctx, "b")
	assert.Equal(t, int64(3), a)
	assert.Equal(t, int64(1), b)

	cache.Delete(ctx, "a")
	_, found := cache.Get(ctx, "a")
	assert.False(t, found)
	assert.Equal(t, 1, cache.Size())
}

func TestMemCache_SweepsExpiredCounters(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	cache := NewMemCache()
	cache.now = func() time.Time { return now }

	_, _, _ = cache.Increment(ctx, "old", time.Second)
	now = now.Add(2 * time.Second)
	_, _, _ = cache.Increment(ctx, "new", time.Second)

	assert.Equal(t, 2, cache.Size())
	assert.Equal(t, 1, cache.Sweep())
	assert.Equal(t, 1, cache.Size())
	assert.Equal(t, 0, cache.Sweep())
}

func TestRedisCache_Miniredis(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)

	cfg := &config.Config{
		Cache: config.CacheConfig{Type: "redis"},
		Redis: &config.RedisConfig{Address: server.Addr(), CacheIndex: 1},
	}

	provider, err := NewCacheProvider(cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Close() })

	for i := 1; i <= 3; i++ {
		count, ttl, err := provider.Increment(ctx, "login:10.0.0.1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(i), count)
		assert.Equal(t, time.Minute, ttl)
	}

	stored, err := server.DB(1).Get("cache:counter:login:10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(3), stored)
	assert.Equal(t, time.Minute, server.DB(1).TTL("cache:counter:login:10.0.0.1"))

	server.FastForward(time.Minute + time.Second)
	_, found := provider.Get(ctx, "login:10.0.0.1")
	assert.False(t, found)

	count, _, err := provider.Increment(ctx, "login:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	provider.Delete(ctx, "login:10.0.0.1")
	_, found = provider.Get(ctx, "login:10.0.0.1")
	assert.False(t, found)
}

func TestNewCacheProvider(t *testing.T) {
	t.Run("memory by default", func(t *testing.T) {
		provider, err := NewCacheProvider(&config.Config{}, discardLogger())
		require.NoError(t, err)
		assert.IsType(t, &MemCache{}, provider)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := NewCacheProvider(&config.Config{Cache: config.CacheConfig{Type: "memcached"}}, discardLogger())
		assert.Error(t, err)
	})

	t.Run("redis unreachable", func(t *testing.T) {
		cfg := &config.Config{
			Cache: config.CacheConfig{Type: "redis"},
			Redis: &config.RedisConfig{Address: "127.0.0.1:1"},
		}
		_, err := NewCacheProvider(cfg, discardLogger())
		assert.Error(t, err)
	})
}
