package authclient

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"curiona-admin/internal/apierror"
	"curiona-admin/internal/models"
	"curiona-admin/internal/upstream"
)

const (
	RefreshTokenCookie = "refresh_token"
	AdminHeader        = "X-Admin"
)

// Client performs the authentication calls against the remote Curiona API.
type Client struct {
	api    *upstream.Client
	logger *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		api:    upstream.New(baseURL, timeout, logger),
		logger: logger,
	}
}

// LoginEmailPassword signs an administrator in. The X-Admin header restricts
// the login to admin accounts.
func (c *Client) LoginEmailPassword(ctx context.Context, credentials models.Credentials) (*models.AuthOutput, error) {
	return c.login(ctx, "login_password", credentials, http.Header{AdminHeader: []string{"true"}})
}

// LoginOAuth exchanges a token from the OAuth provider for Curiona tokens.
func (c *Client) LoginOAuth(ctx context.Context, oauthToken string) (*models.AuthOutput, error) {
	if oauthToken == "" {
		return nil, &apierror.AuthError{Status: http.StatusBadRequest, Code: "missing_oauth_token", Message: "OAuth token is required"}
	}

	return c.login(ctx, "login_oauth", models.OAuthLoginRequest{OAuthToken: oauthToken}, nil)
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*models.AuthRefreshOutput, error) {
	if refreshToken == "" {
		return nil, apierror.ErrSessionExpired
	}

	header := http.Header{}
	header.Set("Cookie", (&http.Cookie{Name: RefreshTokenCookie, Value: refreshToken}).String())

	var output models.AuthRefreshOutput
	resp, err := c.api.Do(ctx, upstream.Request{
		Op:     "refresh",
		Method: http.MethodPost,
		Path:   "/auth/refresh",
		Body:   struct{}{},
		Header: header,
	}, &output)
	if err != nil {
		return nil, asAuthError(err)
	}

	output.RefreshToken = refreshTokenFrom(resp, refreshToken)

	return &output, nil
}

// Logout revokes the refresh token remotely.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	header := http.Header{}
	if refreshToken != "" {
		header.Set("Cookie", (&http.Cookie{Name: RefreshTokenCookie, Value: refreshToken}).String())
	}

	_, err := c.api.Do(ctx, upstream.Request{
		Op:     "logout",
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Body:   struct{}{},
		Header: header,
	}, nil)

	return err
}

func (c *Client) login(ctx context.Context, op string, body any, header http.Header) (*models.AuthOutput, error) {
	var output models.AuthOutput
	resp, err := c.api.Do(ctx, upstream.Request{
		Op:     op,
		Method: http.MethodPost,
		Path:   "/auth",
		Body:   body,
		Header: header,
	}, &output)
	if err != nil {
		return nil, asAuthError(err)
	}

	if output.AccessToken == "" || output.Account.ID == 0 {
		return nil, &apierror.AuthError{Status: http.StatusBadGateway, Code: "invalid_auth_response", Message: "Authentication response is missing the account or access token"}
	}

	output.RefreshToken = refreshTokenFrom(resp, "")

	return &output, nil
}

// asAuthError turns any rejection by the auth endpoints into an AuthError.
// Transport failures stay NetworkErrors.
func asAuthError(err error) error {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) && !errors.Is(err, apierror.ErrInvalidResponse) {
		return &apierror.AuthError{Status: apiErr.Status, Code: apiErr.Code, Message: apiErr.Message}
	}

	return err
}

func refreshTokenFrom(resp *http.Response, fallback string) string {
	if resp == nil {
		return fallback
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == RefreshTokenCookie && cookie.Value != "" {
			return cookie.Value
		}
	}

	return fallback
}
