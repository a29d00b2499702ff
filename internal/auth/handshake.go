package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"curiona-admin/internal/config"
	"curiona-admin/internal/data"
	"curiona-admin/internal/middlewares"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/redis/go-redis/v9"
)

// HandshakeManager keeps OAuth redirect state server side for the few minutes
// between the login redirect and the provider callback. It never holds the
// admin session itself.
type HandshakeManager struct {
	*scs.SessionManager
	redis *redis.Client
}

func NewHandshakeManager(logger *slog.Logger, cfg *config.Config) (*HandshakeManager, error) {
	sessionManager := scs.New()
	handshake := cfg.Sessions.Handshake

	var client *redis.Client
	switch handshake.Store {
	case "memory", "":
		sessionManager.Store = memstore.New()
	case "redis":
		var err error
		client, err = data.NewRedisClient(context.Background(), cfg.Redis, cfg.Redis.HandshakeIndex, logger)
		if err != nil {
			return nil, err
		}

		sessionManager.Store = goredisstore.New(client)
	default:
		return nil, fmt.Errorf("unsupported handshake store: %s", handshake.Store)
	}

	sessionManager.Lifetime = handshake.Lifetime

	sessionManager.Cookie.Name = handshake.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Server.IsProduction()
	sessionManager.Cookie.Path = "/api/auth/oauth"
	sessionManager.Cookie.Persist = false

	return &HandshakeManager{SessionManager: sessionManager, redis: client}, nil
}

// RedisClient returns the backing client when the handshake lives in redis.
func (h *HandshakeManager) RedisClient() *redis.Client {
	return h.redis
}

func (h *HandshakeManager) LoadAndSave(next http.Handler) http.Handler {
	return h.SessionManager.LoadAndSave(next)
}

func (h *HandshakeManager) SetRedirectAfterLogin(ctx *middlewares.AppContext, redirectAfterLogin string) {
	h.Put(ctx, string(SessionKeyRedirectAfterLogin), redirectAfterLogin)
}

func (h *HandshakeManager) GetRedirectAfterLogin(ctx *middlewares.AppContext) string {
	return h.GetString(ctx, string(SessionKeyRedirectAfterLogin))
}

func (h *HandshakeManager) SetOauthState(ctx *middlewares.AppContext, state string) {
	h.Put(ctx, string(SessionKeyOauthState), state)
}

func (h *HandshakeManager) GetOauthState(ctx *middlewares.AppContext) string {
	return h.GetString(ctx, string(SessionKeyOauthState))
}

func (h *HandshakeManager) ClearOauthState(ctx *middlewares.AppContext) {
	h.Remove(ctx, string(SessionKeyOauthState))
}

func (h *HandshakeManager) SetOauthNonce(ctx *middlewares.AppContext, nonce string) {
	h.Put(ctx, string(SessionKeyOauthNonce), nonce)
}

func (h *HandshakeManager) GetOauthNonce(ctx *middlewares.AppContext) string {
	return h.GetString(ctx, string(SessionKeyOauthNonce))
}

func (h *HandshakeManager) ClearOauthNonce(ctx *middlewares.AppContext) {
	h.Remove(ctx, string(SessionKeyOauthNonce))
}

func (h *HandshakeManager) SetOauthCodeVerifier(ctx *middlewares.AppContext, verifier string) {
	h.Put(ctx, string(SessionKeyOauthCodeVerifier), verifier)
}

func (h *HandshakeManager) GetOauthCodeVerifier(ctx *middlewares.AppContext) string {
	return h.GetString(ctx, string(SessionKeyOauthCodeVerifier))
}

func (h *HandshakeManager) ClearOauthCodeVerifier(ctx *middlewares.AppContext) {
	h.Remove(ctx, string(SessionKeyOauthCodeVerifier))
}

// Destroy drops the handshake once the callback has been handled.
func (h *HandshakeManager) Destroy(ctx *middlewares.AppContext) error {
	return h.SessionManager.Destroy(ctx)
}
