package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"curiona-admin/internal/apierror"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(url string) *Client {
	return New(url, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_DoDecodesEnvelope(t *testing.T) {
	var gotReq *http.Request
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"name":"Ada"},"message":"ok"}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}

	query := url.Values{}
	query.Set("page", "1")

	_, err := newClient(srv.URL+"/").Do(context.Background(), Request{
		Op:     "test",
		Method: http.MethodPost,
		Path:   "/things",
		Query:  query,
		Body:   map[string]string{"hello": "world"},
		Token:  "t1",
		Header: http.Header{"X-Admin": []string{"true"}},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Ada", out.Name)
	assert.Equal(t, "/things", gotReq.URL.Path)
	assert.Equal(t, "1", gotReq.URL.Query().Get("page"))
	assert.Equal(t, "Bearer t1", gotReq.Header.Get("Authorization"))
	assert.Equal(t, "true", gotReq.Header.Get("X-Admin"))
	assert.Equal(t, "application/json", gotReq.Header.Get("Content-Type"))
	assert.Equal(t, "world", gotBody["hello"])

	_, err = uuid.Parse(gotReq.Header.Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestClient_DoWithoutTokenSendsNoAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Do(context.Background(), Request{Op: "test", Method: http.MethodDelete, Path: "/x"}, nil)
	assert.NoError(t, err)
}

func TestClient_DoPropagatesRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-123", r.Header.Get(RequestIDHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-123")
	_, err := newClient(srv.URL).Do(ctx, Request{Op: "test", Method: http.MethodGet, Path: "/"}, nil)
	assert.NoError(t, err)
}

func TestClient_DoMapsErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"message":"token expired"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, apierror.IsAuth(err))
			},
		},
		{
			name:   "validation",
			status: http.StatusUnprocessableEntity,
			body:   `{"error":{"code":"validation","message":"bad"}}`,
			check: func(t *testing.T, err error) {
				var apiErr *apierror.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, "validation", apiErr.Code)
			},
		},
		{
			name:   "missing data",
			status: http.StatusOK,
			body:   `{"message":"ok"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, apierror.ErrInvalidResponse)
			},
		},
		{
			name:   "malformed json",
			status: http.StatusOK,
			body:   `{"data":`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, apierror.ErrInvalidResponse)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			var out map[string]any
			_, err := newClient(srv.URL).Do(context.Background(), Request{Op: "test", Method: http.MethodGet, Path: "/"}, &out)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_DoTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := New(srv.URL, 50*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.Do(context.Background(), Request{Op: "slow", Method: http.MethodGet, Path: "/"}, nil)

	var netErr *apierror.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.True(t, netErr.Timeout)
}

func TestClient_DoCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient(srv.URL).Do(ctx, Request{Op: "cancelled", Method: http.MethodGet, Path: "/"}, nil)
	assert.True(t, apierror.IsNetwork(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	client := newClient(srv.URL)
	assert.NoError(t, client.Ping(context.Background()), "any HTTP answer counts as reachable")

	srv.Close()
	err := client.Ping(context.Background())
	assert.True(t, apierror.IsNetwork(err))
}

func TestClient_DoUnwrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"authenticated":true}`))
	}))
	defer srv.Close()

	var out struct {
		Authenticated bool `json:"authenticated"`
	}
	_, err := newClient(srv.URL).Do(context.Background(), Request{Op: "status", Method: http.MethodGet, Path: "/", Unwrapped: true}, &out)

	require.NoError(t, err)
	assert.True(t, out.Authenticated)
}
