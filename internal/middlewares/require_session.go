package middlewares

import (
	"net/http"

	"curiona-admin/internal/apierror"
	"curiona-admin/internal/session"
)

// LoadSession decrypts the session cookie, if present, onto the AppContext and
// the request context. Undecryptable cookies are treated as absent.
func LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		s := appCtx.Sessions.GetSession(r)
		if s == nil {
			next.ServeHTTP(w, r)
			return
		}

		appCtx.Session = s
		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
	})
}

// RequireSession rejects requests without a usable access token so the caller
// can refresh or sign in again.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !appCtx.Session.Valid() {
			appCtx.Response = w
			appCtx.SetAPIError(apierror.ErrSessionExpired)
			return
		}

		if session.IsSessionExpired(appCtx.Session) {
			appCtx.Logger.Debug("rejecting request with expired access token",
				"user_id", appCtx.Session.User.ID,
				"expired_at", appCtx.Session.Tokens.AccessTokenExpiresAt)
			appCtx.Response = w
			appCtx.SetAPIError(apierror.ErrSessionExpired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
