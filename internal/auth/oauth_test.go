package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"curiona-admin/internal/config"
	"curiona-admin/internal/testutil"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testClientID = "curiona-admin-client"

type fakeIssuer struct {
	server      *httptest.Server
	nonce       string
	accessToken string
	lastForm    url.Values
}

func newFakeIssuer(t *testing.T) *fakeIssuer {
	t.Helper()
	issuer := &fakeIssuer{accessToken: "google-access-token"}

	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issuer":                 issuer.server.URL,
			"authorization_endpoint": issuer.server.URL + "/authorize",
			"token_endpoint":         issuer.server.URL + "/token",
			"jwks_uri":               issuer.server.URL + "/keys",
			"userinfo_endpoint":      issuer.server.URL + "/userinfo",
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		issuer.lastForm = r.PostForm

		claims, _ := json.Marshal(map[string]any{
			"iss":   issuer.server.URL,
			"aud":   testClientID,
			"sub":   "google-user-1",
			"email": "admin@curiona.test",
			"nonce": issuer.nonce,
			"iat":   time.Now().Unix(),
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
		idToken := header + "." + base64.RawURLEncoding.EncodeToString(claims) + ".c2ln"

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": issuer.accessToken,
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idToken,
		})
	})

	issuer.server = httptest.NewServer(mux)
	t.Cleanup(issuer.server.Close)
	return issuer
}

func newTestProvider(t *testing.T, issuer *fakeIssuer) *GoogleProvider {
	t.Helper()
	cfg := config.OAuthConfig{
		Enabled:      true,
		ClientID:     testClientID,
		ClientSecret: "secret",
		IssuerURL:    issuer.server.URL,
		RedirectURI:  "https://admin.curiona.test/api/auth/oauth/callback",
		Scopes:       []string{"openid", "email", "profile"},
	}

	provider, err := newGoogleProvider(context.Background(), cfg, &oidc.Config{
		ClientID:                   testClientID,
		InsecureSkipSignatureCheck: true,
	})
	require.NoError(t, err)
	return provider
}

func TestGoogleProvider_StartLogin(t *testing.T) {
	issuer := newFakeIssuer(t)
	provider := newTestProvider(t, issuer)

	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/oauth/login")
	defer tc.Finish()

	var state, nonce, verifier string
	tc.MockHandshake.EXPECT().SetOauthNonce(tc.AppContext, gomock.Any()).Do(func(_ any, v string) { nonce = v })
	tc.MockHandshake.EXPECT().SetOauthState(tc.AppContext, gomock.Any()).Do(func(_ any, v string) { state = v })
	tc.MockHandshake.EXPECT().SetOauthCodeVerifier(tc.AppContext, gomock.Any()).Do(func(_ any, v string) { verifier = v })

	authURL, err := provider.StartLogin(tc.AppContext)
	require.NoError(t, err)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	query := parsed.Query()

	assert.Equal(t, issuer.server.URL+"/authorize", parsed.Scheme+"://"+parsed.Host+parsed.Path)
	assert.Equal(t, testClientID, query.Get("client_id"))
	assert.Equal(t, state, query.Get("state"))
	assert.Equal(t, nonce, query.Get("nonce"))
	assert.Equal(t, "S256", query.Get("code_challenge_method"))
	assert.NotEmpty(t, query.Get("code_challenge"))
	assert.NotEqual(t, verifier, query.Get("code_challenge"))
	assert.NotEmpty(t, verifier)
}

func TestGoogleProvider_HandleCallback(t *testing.T) {
	issuer := newFakeIssuer(t)
	issuer.nonce = "nonce-123"
	provider := newTestProvider(t, issuer)

	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/oauth/callback?state=state-abc&code=auth-code")
	defer tc.Finish()

	gomock.InOrder(
		tc.MockHandshake.EXPECT().GetOauthState(tc.AppContext).Return("state-abc"),
		tc.MockHandshake.EXPECT().ClearOauthState(tc.AppContext),
		tc.MockHandshake.EXPECT().GetOauthCodeVerifier(tc.AppContext).Return("verifier-xyz"),
		tc.MockHandshake.EXPECT().ClearOauthCodeVerifier(tc.AppContext),
		tc.MockHandshake.EXPECT().GetOauthNonce(tc.AppContext).Return("nonce-123"),
		tc.MockHandshake.EXPECT().ClearOauthNonce(tc.AppContext),
	)

	accessToken, err := provider.HandleCallback(tc.AppContext)

	require.NoError(t, err)
	assert.Equal(t, "google-access-token", accessToken)
	assert.Equal(t, "auth-code", issuer.lastForm.Get("code"))
	assert.Equal(t, "verifier-xyz", issuer.lastForm.Get("code_verifier"))
}

func TestGoogleProvider_HandleCallbackErrors(t *testing.T) {
	issuer := newFakeIssuer(t)
	issuer.nonce = "nonce-from-provider"
	provider := newTestProvider(t, issuer)

	t.Run("provider error", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/oauth/callback?error=access_denied&error_description=User+cancelled")
		defer tc.Finish()

		_, err := provider.HandleCallback(tc.AppContext)

		var oauthErr *OAuthError
		require.ErrorAs(t, err, &oauthErr)
		assert.Equal(t, "access_denied", oauthErr.Message)
		assert.Contains(t, oauthErr.RedirectURL, "error=access_denied")
		assert.Contains(t, oauthErr.RedirectURL, "error_description=User+cancelled")
	})

	t.Run("missing state", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/oauth/callback?state=abc&code=c")
		defer tc.Finish()
		tc.MockHandshake.EXPECT().GetOauthState(tc.AppContext).Return("")

		_, err := provider.HandleCallback(tc.AppContext)

		var oauthErr *OAuthError
		require.ErrorAs(t, err, &oauthErr)
		assert.Equal(t, "no oauth state found in session", oauthErr.Message)
	})

	t.Run("state mismatch", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/oauth/callback?state=forged&code=c")
		defer tc.Finish()
		tc.MockHandshake.EXPECT().GetOauthState(tc.AppContext).Return("expected")

		_, err := provider.HandleCallback(tc.AppContext)

		var oauthErr *OAuthError
		require.ErrorAs(t, err, &oauthErr)
		assert.Equal(t, "invalid state parameter", oauthErr.Message)
	})

	t.Run("missing code", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/oauth/callback?state=s")
		defer tc.Finish()
		tc.MockHandshake.EXPECT().GetOauthState(tc.AppContext).Return("s")
		tc.MockHandshake.EXPECT().ClearOauthState(tc.AppContext)

		_, err := provider.HandleCallback(tc.AppContext)

		var oauthErr *OAuthError
		require.ErrorAs(t, err, &oauthErr)
		assert.Equal(t, "no authorization code received", oauthErr.Message)
	})

	t.Run("nonce mismatch", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/oauth/callback?state=s&code=c")
		defer tc.Finish()
		tc.MockHandshake.EXPECT().GetOauthState(tc.AppContext).Return("s")
		tc.MockHandshake.EXPECT().ClearOauthState(tc.AppContext)
		tc.MockHandshake.EXPECT().GetOauthCodeVerifier(tc.AppContext).Return("v")
		tc.MockHandshake.EXPECT().ClearOauthCodeVerifier(tc.AppContext)
		tc.MockHandshake.EXPECT().GetOauthNonce(tc.AppContext).Return("a-different-nonce")
		tc.MockHandshake.EXPECT().ClearOauthNonce(tc.AppContext)

		_, err := provider.HandleCallback(tc.AppContext)

		var oauthErr *OAuthError
		require.ErrorAs(t, err, &oauthErr)
		assert.Equal(t, "nonce in ID Token is invalid", oauthErr.Message)
	})
}
