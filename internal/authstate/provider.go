// Package authstate holds the process-wide authentication state of a console
// client and keeps its access token fresh while signed in.
package authstate

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"curiona-admin/internal/apierror"
	"curiona-admin/internal/models"
	"curiona-admin/internal/session"

	"golang.org/x/sync/singleflight"
)

var (
	ErrClosed           = errors.New("auth provider is closed")
	ErrNotAuthenticated = errors.New("not signed in")
)

// State is a point-in-time copy of the provider state.
type State struct {
	Session   *models.Session
	IsLoading bool
	AuthError string
}

func (s State) Authenticated() bool {
	return s.Session != nil
}

// Provider is a two-state machine (anonymous, authenticated) over the current
// session. While authenticated a loop checks the token every interval and
// refreshes it when session.ShouldRefreshToken says so.
type Provider struct {
	auth      Authenticator
	logger    *slog.Logger
	interval  time.Duration
	threshold time.Duration
	newTicker func(time.Duration) Ticker

	refreshes singleflight.Group

	mu        sync.Mutex
	state     State
	epoch     uint64
	observers []func(State)
	closed    bool

	seq      uint64
	notifyMu sync.Mutex
	notified uint64

	loopCancel context.CancelFunc
	loopDone   chan struct{}
}

func NewProvider(auth Authenticator, opts ...Option) *Provider {
	p := &Provider{
		auth:      auth,
		logger:    discardLogger(),
		interval:  DefaultCheckInterval,
		threshold: DefaultRefreshThreshold,
		newTicker: newRealTicker,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Start hydrates the provider with a session obtained elsewhere, e.g. from the
// console status endpoint. A nil or incomplete session leaves it anonymous.
func (p *Provider) Start(initial *models.Session) {
	if !initial.Valid() {
		return
	}

	p.update(func(s *State) {
		s.Session = initial.Clone()
	}, true)
}

// OnChange registers fn to be called with a snapshot after every state change.
// Observers run on the goroutine that caused the change, one at a time. A
// snapshot older than one already delivered is skipped. Observers must not
// change the provider's state.
func (p *Provider) OnChange(fn func(State)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, fn)
}

func (p *Provider) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Provider) snapshotLocked() State {
	snapshot := p.state
	snapshot.Session = p.state.Session.Clone()
	return snapshot
}

func (p *Provider) SignIn(ctx context.Context, credentials models.Credentials) error {
	if err := credentials.Validate(); err != nil {
		p.update(func(s *State) { s.AuthError = err.Error() }, false)
		return err
	}

	return p.signIn(ctx, func(ctx context.Context) (*models.Session, error) {
		return p.auth.SignIn(ctx, credentials)
	})
}

// SignInGoogle completes a sign-in with a token obtained from Google.
func (p *Provider) SignInGoogle(ctx context.Context, oauthToken string) error {
	return p.signIn(ctx, func(ctx context.Context) (*models.Session, error) {
		return p.auth.SignInOAuth(ctx, oauthToken)
	})
}

func (p *Provider) signIn(ctx context.Context, login func(context.Context) (*models.Session, error)) error {
	if p.isClosed() {
		return ErrClosed
	}

	p.update(func(s *State) {
		s.IsLoading = true
		s.AuthError = ""
	}, false)

	s, err := login(ctx)
	if err == nil && !s.Valid() {
		err = apierror.ErrInvalidResponse
	}

	if err != nil {
		p.logger.Warn("sign in failed", "error", err)
		p.update(func(st *State) {
			st.IsLoading = false
			st.AuthError = apierror.Message(err)
		}, false)
		return err
	}

	p.update(func(st *State) {
		st.Session = s.Clone()
		st.IsLoading = false
		st.AuthError = ""
	}, true)

	p.logger.Debug("signed in", "user_id", s.User.ID)
	return nil
}

// SignOut always leaves the provider anonymous. The returned error only
// reports whether the server-side sign out succeeded.
func (p *Provider) SignOut(ctx context.Context) error {
	err := p.auth.SignOut(ctx)
	if err != nil {
		p.logger.Warn("server sign out failed", "error", err)
	}

	p.update(func(s *State) {
		s.Session = nil
		s.IsLoading = false
	}, true)

	return err
}

// RefreshSession exchanges the refresh token for a new access token. At most
// one refresh is in flight; concurrent callers share its result. A failure
// sets AuthError and keeps the current session.
func (p *Provider) RefreshSession(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.state.Session == nil {
		p.mu.Unlock()
		return ErrNotAuthenticated
	}
	epoch := p.epoch
	p.mu.Unlock()

	result, err, _ := p.refreshes.Do("refresh", func() (interface{}, error) {
		return p.auth.Refresh(ctx)
	})

	var refreshed *models.Session
	if err == nil {
		refreshed, _ = result.(*models.Session)
		if !refreshed.Valid() {
			err = apierror.ErrInvalidResponse
		}
	}

	if err != nil {
		if p.updateAt(epoch, func(s *State) { s.AuthError = apierror.Message(err) }) {
			p.logger.Warn("token refresh failed", "error", err)
		}
		return err
	}

	if !p.updateAt(epoch, func(s *State) {
		s.Session = refreshed.Clone()
		s.AuthError = ""
	}) {
		// Signed out or signed in again while the refresh was in flight.
		return nil
	}

	p.logger.Debug("token refreshed", "expires_at", refreshed.Tokens.AccessTokenExpiresAt)
	return nil
}

// SetName overrides the cached display name without any network call.
func (p *Provider) SetName(name string) {
	p.update(func(s *State) {
		if s.Session != nil {
			s.Session.User.Name = name
		}
	}, false)
}

func (p *Provider) ClearError() {
	p.update(func(s *State) { s.AuthError = "" }, false)
}

// Close stops the refresh loop and waits for it to exit. The provider keeps
// its last state but rejects further sign ins and refreshes.
func (p *Provider) Close() {
	p.mu.Lock()
	p.closed = true
	cancel, done := p.loopCancel, p.loopDone
	p.loopCancel, p.loopDone = nil, nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (p *Provider) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// update applies fn under the lock, starts or stops the refresh loop to match
// the new state and notifies observers. transition marks a sign in or sign out
// and invalidates in-flight refreshes.
func (p *Provider) update(fn func(*State), transition bool) {
	p.mu.Lock()
	p.applyLocked(fn, transition)
}

// updateAt applies fn like update, but only if no sign in or sign out
// happened since epoch was read. The check and the write share one critical
// section.
func (p *Provider) updateAt(epoch uint64, fn func(*State)) bool {
	p.mu.Lock()
	if p.epoch != epoch {
		p.mu.Unlock()
		return false
	}
	p.applyLocked(fn, false)
	return true
}

// applyLocked must be called with p.mu held and releases it before notifying
// observers.
func (p *Provider) applyLocked(fn func(*State), transition bool) {
	fn(&p.state)
	if transition {
		p.epoch++
	}

	var stop context.CancelFunc
	if p.state.Session != nil {
		if p.loopCancel == nil && !p.closed {
			p.startLoopLocked()
		}
	} else if p.loopCancel != nil {
		stop = p.loopCancel
		p.loopCancel, p.loopDone = nil, nil
	}

	p.seq++
	seq := p.seq
	snapshot := p.snapshotLocked()
	observers := slices.Clone(p.observers)
	p.mu.Unlock()

	if stop != nil {
		stop()
	}

	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()
	if seq < p.notified {
		return
	}
	p.notified = seq

	for _, observer := range observers {
		observer(snapshot)
	}
}

func (p *Provider) startLoopLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	ticker := p.newTicker(p.interval)

	p.loopCancel = cancel
	p.loopDone = done

	go p.run(ctx, ticker, done)
}

func (p *Provider) run(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			p.tick(ctx)
		}
	}
}

func (p *Provider) tick(ctx context.Context) {
	s := p.Snapshot().Session
	if !session.ShouldRefreshToken(s, p.threshold) {
		return
	}

	if err := p.RefreshSession(ctx); err != nil && !errors.Is(err, context.Canceled) {
		p.logger.Debug("scheduled refresh did not succeed", "error", err)
	}
}
