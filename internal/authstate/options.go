package authstate

import (
	"io"
	"log/slog"
	"time"
)

const (
	DefaultCheckInterval    = time.Minute
	DefaultRefreshThreshold = 5 * time.Minute
)

// Ticker is the subset of *time.Ticker the refresh loop needs.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type realTicker struct {
	*time.Ticker
}

func (t realTicker) Chan() <-chan time.Time {
	return t.C
}

func newRealTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type Option func(*Provider)

// WithTicker replaces the ticker factory used by the refresh loop.
func WithTicker(newTicker func(time.Duration) Ticker) Option {
	return func(p *Provider) {
		p.newTicker = newTicker
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

func WithCheckInterval(interval time.Duration) Option {
	return func(p *Provider) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

func WithRefreshThreshold(threshold time.Duration) Option {
	return func(p *Provider) {
		if threshold > 0 {
			p.threshold = threshold
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
