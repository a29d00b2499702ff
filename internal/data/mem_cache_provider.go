package data

import (
	"context"
	"sync"
	"time"

	"curiona-admin/internal/metrics"
)

type counter struct {
	count     int64
	expiresAt time.Time
}

type MemCache struct {
	counters map[string]counter
	mutex    sync.Mutex
	now      func() time.Time
}

func NewMemCache() *MemCache {
	return &MemCache{
		counters: make(map[string]counter),
		now:      time.Now,
	}
}

func (m *MemCache) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeMemory, metrics.CacheOperationTypeIncrement).Observe(time.Since(start).Seconds())
	}()

	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := m.now()
	entry, exists := m.counters[key]
	if !exists || !now.Before(entry.expiresAt) {
		entry = counter{expiresAt: now.Add(window)}
	}

	entry.count++
	m.counters[key] = entry

	return entry.count, entry.expiresAt.Sub(now), nil
}

func (m *MemCache) Get(ctx context.Context, key string) (int64, bool) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeMemory, metrics.CacheOperationTypeGet).Observe(time.Since(start).Seconds())
	}()

	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.counters[key]
	if !exists || !m.now().Before(entry.expiresAt) {
		return 0, false
	}

	return entry.count, true
}

func (m *MemCache) Delete(ctx context.Context, key string) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeMemory, metrics.CacheOperationTypeDelete).Observe(time.Since(start).Seconds())
	}()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.counters, key)
}

// Size returns the number of live and not yet swept counters.
func (m *MemCache) Size() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.counters)
}

func (m *MemCache) Close() error {
	return nil
}

// Sweep drops expired counters and returns how many were removed.
func (m *MemCache) Sweep() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := m.now()
	removed := 0
	for key, entry := range m.counters {
		if !now.Before(entry.expiresAt) {
			delete(m.counters, key)
			removed++
		}
	}

	return removed
}
