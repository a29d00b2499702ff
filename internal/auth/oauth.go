package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"

	"curiona-admin/internal/config"
	"curiona-admin/internal/middlewares"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OAuthError is a failed provider callback. RedirectURL points the browser at
// the console error page.
type OAuthError struct {
	RedirectURL string
	Message     string
}

func (e *OAuthError) Error() string {
	return e.Message
}

func newOAuthError(code, description, message string) *OAuthError {
	return &OAuthError{
		RedirectURL: "/error?error=" + url.QueryEscape(code) + "&error_description=" + url.QueryEscape(description),
		Message:     message,
	}
}

// GoogleProvider runs the authorization code flow (with PKCE) against an OIDC
// issuer, Google by default. The resulting access token is what the Curiona
// API accepts as oauth_token.
type GoogleProvider struct {
	provider     *oidc.Provider
	oauth2Config *oauth2.Config
	verifier     *oidc.IDTokenVerifier
}

func NewGoogleProvider(ctx context.Context, cfg config.OAuthConfig) (*GoogleProvider, error) {
	return newGoogleProvider(ctx, cfg, &oidc.Config{ClientID: cfg.ClientID})
}

func newGoogleProvider(ctx context.Context, cfg config.OAuthConfig, verifierConfig *oidc.Config) (*GoogleProvider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		Scopes:       cfg.Scopes,
		RedirectURL:  cfg.RedirectURI,
	}

	return &GoogleProvider{
		provider:     provider,
		oauth2Config: oauth2Config,
		verifier:     provider.Verifier(verifierConfig),
	}, nil
}

func generateRandString(bytes int) string {
	if bytes <= 0 {
		bytes = 32
	}

	b := make([]byte, bytes)
	_, _ = rand.Read(b)

	return base64.RawURLEncoding.EncodeToString(b)
}

func generateCodeVerifier() (string, string) {
	codeVerifier := oauth2.GenerateVerifier()
	hash := sha256.Sum256([]byte(codeVerifier))
	codeChallenge := base64.RawURLEncoding.EncodeToString(hash[:])
	return codeVerifier, codeChallenge
}

func (g *GoogleProvider) StartLogin(ctx *middlewares.AppContext) (string, error) {
	state := generateRandString(32)
	nonce := generateRandString(32)
	codeVerifier, codeChallenge := generateCodeVerifier()

	ctx.Handshake.SetOauthNonce(ctx, nonce)
	ctx.Handshake.SetOauthState(ctx, state)
	ctx.Handshake.SetOauthCodeVerifier(ctx, codeVerifier)

	authURL := g.oauth2Config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("prompt", "select_account"),
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	return authURL, nil
}

func (g *GoogleProvider) HandleCallback(ctx *middlewares.AppContext) (string, error) {
	query := ctx.Request.URL.Query()

	if errorParam := query.Get("error"); errorParam != "" {
		errorURL := "/error?error=" + url.QueryEscape(errorParam)
		if description := query.Get("error_description"); description != "" {
			errorURL += "&error_description=" + url.QueryEscape(description)
		}
		return "", &OAuthError{RedirectURL: errorURL, Message: errorParam}
	}

	storedState := ctx.Handshake.GetOauthState(ctx)
	if storedState == "" {
		return "", newOAuthError("invalid_request", "No oauth state found in session", "no oauth state found in session")
	}

	if query.Get("state") != storedState {
		return "", newOAuthError("invalid_request", "Invalid state parameter", "invalid state parameter")
	}

	ctx.Handshake.ClearOauthState(ctx)

	code := query.Get("code")
	if code == "" {
		return "", newOAuthError("invalid_request", "No authorization code received", "no authorization code received")
	}

	codeVerifier := ctx.Handshake.GetOauthCodeVerifier(ctx)
	ctx.Handshake.ClearOauthCodeVerifier(ctx)

	token, err := g.oauth2Config.Exchange(ctx, code, oauth2.VerifierOption(codeVerifier))
	if err != nil {
		return "", newOAuthError("invalid_grant", "Failed to exchange code for token", fmt.Sprintf("failed to exchange code for token: %v", err))
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return "", newOAuthError("invalid_token", "No id_token found in oauth2 token", "no id_token found in oauth2 token")
	}

	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return "", newOAuthError("invalid_token", "Failed to verify ID Token", fmt.Sprintf("failed to verify ID Token: %v", err))
	}

	expectedNonce := ctx.Handshake.GetOauthNonce(ctx)
	ctx.Handshake.ClearOauthNonce(ctx)
	if expectedNonce == "" || idToken.Nonce != expectedNonce {
		return "", newOAuthError("server_error", "Invalid Nonce", "nonce in ID Token is invalid")
	}

	if token.AccessToken == "" {
		return "", newOAuthError("invalid_token", "No access token received", "no access token in oauth2 token")
	}

	return token.AccessToken, nil
}
