package jobs

import (
	"context"
	"log/slog"
	"time"

	"curiona-admin/internal/metrics"
)

// Sweeper drops expired entries, e.g. *data.MemCache.
type Sweeper interface {
	Sweep() int
}

// CacheSweepJob keeps the in-memory rate limit counters from growing with
// every client address ever seen.
type CacheSweepJob struct {
	cache    Sweeper
	interval time.Duration
	logger   *slog.Logger
}

func NewCacheSweepJob(cache Sweeper, interval time.Duration, logger *slog.Logger) *CacheSweepJob {
	return &CacheSweepJob{
		cache:    cache,
		interval: interval,
		logger:   logger,
	}
}

func (j *CacheSweepJob) Name() string {
	return "cache_sweep"
}

func (j *CacheSweepJob) Interval() time.Duration {
	return j.interval
}

func (j *CacheSweepJob) Run(ctx context.Context) error {
	return every(ctx, j.interval, func(context.Context) {
		if removed := j.cache.Sweep(); removed > 0 {
			metrics.CacheEntriesSwept.Add(float64(removed))
			j.logger.Debug("swept expired rate limit counters", "removed", removed)
		}
	})
}
