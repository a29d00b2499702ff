package middlewares_test

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"curiona-admin/internal/config"
	"curiona-admin/internal/middlewares"
	"curiona-admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedContext(t *testing.T) *testutil.TestContext {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/login")
	tc.WithConfig(&config.Config{
		Sessions:  config.DefaultSessionConfig,
		RateLimit: config.RateLimitConfig{Enabled: true, Requests: 3, Window: time.Minute},
	})
	return tc
}

func serveRateLimited(tc *testutil.TestContext) (*httptest.ResponseRecorder, bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	handler := middlewares.AppContextMiddleware(tc.AppContext)(middlewares.RateLimit("login")(next))
	handler.ServeHTTP(rr, tc.Request)
	return rr, reached
}

func TestRateLimit_ShouldAllowWithinLimit(t *testing.T) {
	tc := rateLimitedContext(t)
	defer tc.Finish()

	tc.ExpectCacheIncrement("ratelimit:login:192.0.2.1", time.Minute, 2, 40*time.Second, nil)

	rr, reached := serveRateLimited(tc)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "3", rr.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rr.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Reset"))
	assert.Empty(t, rr.Header().Get("Retry-After"))
}

func TestRateLimit_ShouldRejectOverLimit(t *testing.T) {
	tc := rateLimitedContext(t)
	defer tc.Finish()

	tc.ExpectCacheIncrement("ratelimit:login:192.0.2.1", time.Minute, 4, 30*time.Second, nil)

	rr, reached := serveRateLimited(tc)

	assert.False(t, reached)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "30", rr.Header().Get("Retry-After"))
	assert.Contains(t, rr.Body.String(), `"code":"rate_limited"`)
}

func TestRateLimit_ShouldFailOpenWhenCacheErrors(t *testing.T) {
	tc := rateLimitedContext(t)
	defer tc.Finish()

	tc.ExpectCacheIncrement("ratelimit:login:192.0.2.1", time.Minute, 0, 0, errors.New("redis: connection refused"))

	rr, reached := serveRateLimited(tc)

	require.True(t, reached)
	assert.Equal(t, http.StatusOK, rr.Code)
	tc.AssertLogContains(t, slog.LevelWarn, "rate limiter unavailable, allowing request")
}

func TestRateLimit_ShouldSkipWhenDisabled(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/login")
	defer tc.Finish()

	rr, reached := serveRateLimited(tc)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("X-RateLimit-Limit"))
}
