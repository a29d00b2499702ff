package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"curiona-admin/internal/data"
	"curiona-admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	name  string
	runs  atomic.Int32
	start chan struct{}
	once  sync.Once
}

func (j *countingJob) Name() string            { return j.name }
func (j *countingJob) Interval() time.Duration { return 10 * time.Millisecond }
func (j *countingJob) Run(ctx context.Context) error {
	return every(ctx, j.Interval(), func(context.Context) {
		j.runs.Add(1)
		j.once.Do(func() { close(j.start) })
	})
}

func TestJobManager_StartsAndStopsJobs(t *testing.T) {
	jm := NewJobManager(testutil.NewTestLogger())
	job := &countingJob{name: "counting", start: make(chan struct{})}
	jm.Register(job)

	jm.Start(context.Background())
	jm.Start(context.Background())

	select {
	case <-job.start:
	case <-time.After(time.Second):
		t.Fatal("job did not start")
	}
	assert.Equal(t, 1, jm.Running())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	jm.Shutdown(shutdownCtx)

	assert.Equal(t, 0, jm.Running())
	runs := job.runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, runs, job.runs.Load())
}

func TestEvery_RejectsNonPositiveInterval(t *testing.T) {
	err := every(context.Background(), 0, func(context.Context) {})
	assert.Error(t, err)
}

func TestCacheSweepJob_RemovesExpiredCounters(t *testing.T) {
	cache := data.NewMemCache()
	_, _, err := cache.Increment(context.Background(), "ratelimit:login:192.0.2.1", time.Millisecond)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	job := NewCacheSweepJob(cache, time.Hour, testutil.NewTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The first sweep runs before the cancelled context is observed.
	err = job.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, cache.Size())
}

type fakePinger struct {
	mu  sync.Mutex
	err error
}

func (p *fakePinger) Ping(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func TestUpstreamProbeJob_LogsTransitions(t *testing.T) {
	handler := testutil.NewTestLogHandler()
	pinger := &fakePinger{err: errors.New("dial tcp: connection refused")}
	job := NewUpstreamProbeJob(pinger, time.Hour, time.Second, slog.New(handler))

	job.probe(context.Background())
	assert.False(t, job.Up())

	job.probe(context.Background())
	assert.Len(t, handler.GetRecordsByLevel(slog.LevelWarn), 1)

	pinger.err = nil
	job.probe(context.Background())
	assert.True(t, job.Up())
	assert.True(t, handler.ContainsMessage(slog.LevelInfo, "Curiona API reachable again"))
}
