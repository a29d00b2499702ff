package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"curiona-admin/internal/apierror"
	"curiona-admin/internal/config"
	"curiona-admin/internal/data"
	"curiona-admin/internal/models"
)

const maxJSONBodyBytes = 1 << 20

type UpstreamStatus interface {
	Up() bool
}

type AppContext struct {
	context.Context
	Config        *config.Config
	Logger        *slog.Logger
	Sessions      SessionProvider
	Handshake     HandshakeProvider
	OAuthProvider OAuthProvider
	AuthClient    AuthClient
	Admin         AdminGateway
	Cache         data.CacheProvider

	// Upstream is the last result of the API reachability probe. Nil when no probe runs.
	Upstream UpstreamStatus

	// Session is the decrypted session cookie of the current request, if any.
	Session *models.Session

	Request  *http.Request
	Response http.ResponseWriter
}

type contextKey string

const appContextKey contextKey = "appContext"

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCtx := &AppContext{
				Context:       r.Context(),
				Config:        baseCtx.Config,
				Logger:        baseCtx.Logger,
				Sessions:      baseCtx.Sessions,
				Handshake:     baseCtx.Handshake,
				OAuthProvider: baseCtx.OAuthProvider,
				AuthClient:    baseCtx.AuthClient,
				Admin:         baseCtx.Admin,
				Cache:         baseCtx.Cache,
				Upstream:      baseCtx.Upstream,
				Request:       r,
				Response:      w,
			}

			ctx := context.WithValue(r.Context(), appContextKey, requestCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type AppHandler func(*AppContext)

// Handler converts an AppHandler to an http.Handler
func (ctx *AppContext) Handler(h AppHandler) http.Handler {
	return ctx.HandlerFunc(h)
}

// HandlerFunc converts AppHandler to a http.HandlerFunc
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		// Middleware mounted after AppContextMiddleware may wrap the writer
		// (scs adds its cookie there) and chi adds route params.
		appCtx.Request = r
		appCtx.Response = w
		appCtx.Context = r.Context()

		h(appCtx)
	}
}

func (ctx *AppContext) Redirect(url string, status int) {
	http.Redirect(ctx.Response, ctx.Request, url, status)
}

func NewAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, cache data.CacheProvider, sessions SessionProvider, handshake HandshakeProvider, oauthProvider OAuthProvider, authClient AuthClient, admin AdminGateway) *AppContext {
	return &AppContext{
		Context:       ctx,
		Config:        cfg,
		Logger:        logger,
		Sessions:      sessions,
		Handshake:     handshake,
		OAuthProvider: oauthProvider,
		AuthClient:    authClient,
		Admin:         admin,
		Cache:         cache,
	}
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

func GetLogger(r *http.Request) *slog.Logger {
	if appCtx := GetAppContext(r); appCtx != nil {
		return appCtx.Logger
	}

	return nil
}

func GetConfig(r *http.Request) *config.Config {
	if appCtx := GetAppContext(r); appCtx != nil {
		return appCtx.Config
	}

	return nil
}

// AccessToken returns the bearer token of the current session, or "".
func (ctx *AppContext) AccessToken() string {
	if ctx.Session == nil {
		return ""
	}
	return ctx.Session.Tokens.AccessToken
}

// ReadJSON decodes a bounded request body into v.
func (ctx *AppContext) ReadJSON(v any) error {
	if ctx.Request.Body == nil {
		return errors.New("request body is empty")
	}

	decoder := json.NewDecoder(io.LimitReader(ctx.Request.Body, maxJSONBodyBytes))
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

func (ctx *AppContext) WriteText(status int, text string) {
	ctx.Response.WriteHeader(status)
	if _, err := ctx.Response.Write([]byte(text)); err != nil {
		ctx.Logger.Error("failed to write response", "error", err)
	}
}

func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"error": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"status": message,
	})
}

// SetAPIError writes err using the status, code and message of its apierror kind.
func (ctx *AppContext) SetAPIError(err error) {
	status := apierror.Status(err)
	if status >= http.StatusInternalServerError {
		ctx.Logger.Error("request failed", "error", err, "status", status)
	}

	ctx.WriteJSON(status, map[string]string{
		"error": apierror.Message(err),
		"code":  apierror.Code(err),
	})
}
