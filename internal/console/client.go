// Package console is a client for the admin console's own HTTP API. It keeps
// the session and refresh cookies in a jar, so the refresh token never leaves
// the transport.
package console

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"curiona-admin/internal/admin"
	"curiona-admin/internal/apierror"
	"curiona-admin/internal/models"
	"curiona-admin/internal/upstream"
)

type sessionResponse struct {
	Session *models.Session `json:"session"`
}

type statusResponse struct {
	Authenticated bool            `json:"authenticated"`
	Expired       bool            `json:"expired"`
	Session       *models.Session `json:"session"`
}

// Client signs in against a running console and reaches its admin routes with
// the resulting cookie. It satisfies authstate.Authenticator.
type Client struct {
	api   *upstream.Client
	Admin *admin.Client
}

func New(consoleURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	base := strings.TrimRight(consoleURL, "/") + "/api"
	httpClient := &http.Client{Timeout: timeout, Jar: jar}

	api := upstream.New(base, timeout, logger)
	api.SetHTTPClient(httpClient)

	return &Client{
		api:   api,
		Admin: admin.NewWithHTTPClient(base, httpClient, logger),
	}, nil
}

func (c *Client) SignIn(ctx context.Context, credentials models.Credentials) (*models.Session, error) {
	return c.session(ctx, "console_login", "/auth/login", credentials)
}

func (c *Client) SignInOAuth(ctx context.Context, oauthToken string) (*models.Session, error) {
	return c.session(ctx, "console_login_oauth", "/auth/oauth/token", models.OAuthLoginRequest{OAuthToken: oauthToken})
}

func (c *Client) Refresh(ctx context.Context) (*models.Session, error) {
	return c.session(ctx, "console_refresh", "/auth/refresh", nil)
}

func (c *Client) SignOut(ctx context.Context) error {
	_, err := c.api.Do(ctx, upstream.Request{
		Op:     "console_logout",
		Method: http.MethodPost,
		Path:   "/auth/logout",
	}, nil)
	return err
}

// Status returns the session the console currently holds for this client, or
// nil when there is none. An expired session is still returned.
func (c *Client) Status(ctx context.Context) (*models.Session, error) {
	var out statusResponse
	_, err := c.api.Do(ctx, upstream.Request{
		Op:        "console_status",
		Method:    http.MethodGet,
		Path:      "/auth/status",
		Unwrapped: true,
	}, &out)
	if apierror.IsAuth(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !out.Authenticated {
		return nil, nil
	}

	return out.Session, nil
}

func (c *Client) session(ctx context.Context, op, path string, body any) (*models.Session, error) {
	var out sessionResponse
	_, err := c.api.Do(ctx, upstream.Request{
		Op:        op,
		Method:    http.MethodPost,
		Path:      path,
		Body:      body,
		Unwrapped: true,
	}, &out)
	if err != nil {
		return nil, err
	}

	return out.Session, nil
}
