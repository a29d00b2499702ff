package jobs

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"curiona-admin/internal/metrics"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// UpstreamProbeJob periodically checks that the Curiona API is reachable and
// exports the result as a gauge. Only transitions are logged.
type UpstreamProbeJob struct {
	api      Pinger
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	up atomic.Bool
}

func NewUpstreamProbeJob(api Pinger, interval, timeout time.Duration, logger *slog.Logger) *UpstreamProbeJob {
	j := &UpstreamProbeJob{
		api:      api,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
	j.up.Store(true)
	return j
}

func (j *UpstreamProbeJob) Name() string {
	return "upstream_probe"
}

func (j *UpstreamProbeJob) Interval() time.Duration {
	return j.interval
}

// Up reports the result of the most recent probe.
func (j *UpstreamProbeJob) Up() bool {
	return j.up.Load()
}

func (j *UpstreamProbeJob) Run(ctx context.Context) error {
	return every(ctx, j.interval, j.probe)
}

func (j *UpstreamProbeJob) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	err := j.api.Ping(probeCtx)
	if ctx.Err() != nil {
		return
	}

	up := err == nil
	if up {
		metrics.UpstreamUp.Set(1)
	} else {
		metrics.UpstreamUp.Set(0)
	}

	if was := j.up.Swap(up); was != up {
		if up {
			j.logger.Info("Curiona API reachable again")
		} else {
			j.logger.Warn("Curiona API unreachable", "error", err)
		}
	}
}
