package middlewares

import (
	"net/http"

	"curiona-admin/internal/models"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

// SessionProvider persists the admin session in an encrypted cookie and keeps
// the refresh token in its own HttpOnly cookie.
type SessionProvider interface {
	CreateSession(w http.ResponseWriter, s *models.Session) (string, error)
	GetSession(r *http.Request) *models.Session
	DestroySession(w http.ResponseWriter)
	SetRefreshToken(w http.ResponseWriter, token string)
	RefreshToken(r *http.Request) string
	ClearRefreshToken(w http.ResponseWriter)
}

// HandshakeProvider holds the short-lived OAuth redirect state between the
// login redirect and the provider callback.
type HandshakeProvider interface {
	SetOauthState(ctx *AppContext, state string)
	GetOauthState(ctx *AppContext) string
	ClearOauthState(ctx *AppContext)
	SetOauthNonce(ctx *AppContext, nonce string)
	GetOauthNonce(ctx *AppContext) string
	ClearOauthNonce(ctx *AppContext)
	SetOauthCodeVerifier(ctx *AppContext, verifier string)
	GetOauthCodeVerifier(ctx *AppContext) string
	ClearOauthCodeVerifier(ctx *AppContext)
	SetRedirectAfterLogin(ctx *AppContext, redirectAfterLogin string)
	GetRedirectAfterLogin(ctx *AppContext) string
	Destroy(ctx *AppContext) error

	LoadAndSave(next http.Handler) http.Handler
}
