package middlewares

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"curiona-admin/internal/metrics"

	"github.com/go-chi/chi/v5"
)

// RateLimit caps requests per client IP within a fixed window. Cache failures
// let the request through.
func RateLimit(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			appCtx := GetAppContext(r)
			if appCtx == nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			cfg := appCtx.Config.RateLimit
			if !cfg.Enabled || appCtx.Cache == nil {
				next.ServeHTTP(w, r)
				return
			}

			key := fmt.Sprintf("ratelimit:%s:%s", name, ClientAddr(r))
			count, ttl, err := appCtx.Cache.Increment(r.Context(), key, cfg.Window)
			if err != nil {
				appCtx.Logger.Warn("rate limiter unavailable, allowing request", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := cfg.Requests - int(count)
			if remaining < 0 {
				remaining = 0
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

			if int(count) > cfg.Requests {
				endpoint := r.URL.Path
				if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
					endpoint = rctx.RoutePattern()
				}
				metrics.RateLimitedRequests.WithLabelValues(endpoint).Inc()

				retryAfter := int(ttl.Round(time.Second).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

				appCtx.Response = w
				appCtx.WriteJSON(http.StatusTooManyRequests, map[string]string{
					"error": "Too many attempts. Please try again later.",
					"code":  "rate_limited",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
