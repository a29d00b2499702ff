package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"curiona-admin/internal/apierror"
	"curiona-admin/internal/models"
	"curiona-admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(token string) *models.Session {
	return &models.Session{
		User:   models.User{ID: 1, Email: "ana@curiona.test", Name: "Ana"},
		Tokens: models.Tokens{AccessToken: token, AccessTokenExpiresAt: time.Now().Add(time.Hour)},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fakeConsole mimics the console's cookie behaviour: login sets a cookie and
// every other route requires it.
func fakeConsole(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var refreshes atomic.Int32

	requireCookie := func(w http.ResponseWriter, r *http.Request) bool {
		if _, err := r.Cookie("curiona_admin_session"); err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authentication required", "code": "unauthorized"})
			return false
		}
		return true
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials", "code": "unauthorized"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "curiona_admin_session", Value: "opaque", Path: "/"})
		writeJSON(w, http.StatusOK, map[string]any{"session": testSession("t1")})
	})
	mux.HandleFunc("POST /api/auth/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		var body models.OAuthLoginRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "google-token", body.OAuthToken)
		http.SetCookie(w, &http.Cookie{Name: "curiona_admin_session", Value: "opaque", Path: "/"})
		writeJSON(w, http.StatusOK, map[string]any{"session": testSession("g1")})
	})
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		if !requireCookie(w, r) {
			return
		}
		refreshes.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{"session": testSession("t2")})
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "curiona_admin_session", Value: "", Path: "/", MaxAge: -1})
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /api/auth/status", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("curiona_admin_session"); err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]bool{"authenticated": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": true, "session": testSession("t1")})
	})
	mux.HandleFunc("GET /api/admin/statistics", func(w http.ResponseWriter, r *http.Request) {
		if !requireCookie(w, r) {
			return
		}
		assert.Empty(t, r.Header.Get("Authorization"))
		var stats models.Statistics
		stats.User.UsersRegisteredCount = 42
		writeJSON(w, http.StatusOK, map[string]any{"data": stats})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &refreshes
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := New(url, 5*time.Second, testutil.NewTestLogger())
	require.NoError(t, err)
	return c
}

func TestClient_SignInCarriesCookie(t *testing.T) {
	srv, refreshes := fakeConsole(t)
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	s, err := c.SignIn(ctx, models.Credentials{Email: "ana@curiona.test", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "t1", s.Tokens.AccessToken)

	stats, err := c.Admin.GetStatistics(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 42, stats.User.UsersRegisteredCount)

	refreshed, err := c.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t2", refreshed.Tokens.AccessToken)
	assert.Equal(t, int32(1), refreshes.Load())
}

func TestClient_SignInRejected(t *testing.T) {
	srv, _ := fakeConsole(t)
	c := newTestClient(t, srv.URL)

	s, err := c.SignIn(context.Background(), models.Credentials{Email: "ana@curiona.test", Password: "wrong"})

	assert.Nil(t, s)
	require.Error(t, err)
	assert.True(t, apierror.IsAuth(err))
	assert.Equal(t, "Invalid credentials", apierror.Message(err))
}

func TestClient_SignInOAuth(t *testing.T) {
	srv, _ := fakeConsole(t)
	c := newTestClient(t, srv.URL)

	s, err := c.SignInOAuth(context.Background(), "google-token")

	require.NoError(t, err)
	assert.Equal(t, "g1", s.Tokens.AccessToken)
}

func TestClient_RefreshWithoutSession(t *testing.T) {
	srv, _ := fakeConsole(t)
	c := newTestClient(t, srv.URL)

	_, err := c.Refresh(context.Background())

	assert.True(t, apierror.IsAuth(err))
}

func TestClient_StatusFollowsCookie(t *testing.T) {
	srv, _ := fakeConsole(t)
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	s, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = c.SignIn(ctx, models.Credentials{Email: "ana@curiona.test", Password: "secret"})
	require.NoError(t, err)

	s, err = c.Status(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, int64(1), s.User.ID)

	require.NoError(t, c.SignOut(ctx))

	s, err = c.Status(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestClient_NetworkFailure(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1")

	_, err := c.SignIn(context.Background(), models.Credentials{Email: "ana@curiona.test", Password: "secret"})

	assert.True(t, apierror.IsNetwork(err))
}
