package server

import (
	"net/http"
	"strings"
	"time"

	"curiona-admin/internal/handlers"
	"curiona-admin/internal/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	// Validated when the config was loaded.
	trustedProxies, _ := ctx.Config.Server.TrustedProxyPrefixes()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware(trustedProxies))
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middlewares.Logging(ctx.Logger))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	r.Use(middlewares.AppContextMiddleware(ctx))
	r.Use(middlewares.LoadSession)

	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir("web/dist/assets"))))
	r.Handle("/favicon.ico", http.FileServer(http.Dir("web/dist")))

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, "web/dist/index.html")
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", ctx.HandlerFunc(handlers.GETAuthStatusHandler))
			r.With(middlewares.RateLimit("login")).Post("/login", ctx.HandlerFunc(handlers.POSTLoginHandler))
			r.With(middlewares.RateLimit("refresh")).Post("/refresh", ctx.HandlerFunc(handlers.POSTRefreshHandler))
			r.Post("/logout", ctx.HandlerFunc(handlers.POSTLogoutHandler))
			r.With(middlewares.RateLimit("login")).Post("/oauth/token", ctx.HandlerFunc(handlers.POSTOAuthTokenHandler))

			r.Route("/oauth", func(r chi.Router) {
				r.Use(ctx.Handshake.LoadAndSave)
				r.Get("/login", ctx.HandlerFunc(handlers.GETOAuthLoginHandler))
				r.Get("/callback", ctx.HandlerFunc(handlers.GETOAuthCallbackHandler))
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middlewares.RequireSession)

			r.Get("/statistics", ctx.HandlerFunc(handlers.GETStatisticsHandler))

			r.Route("/users", func(r chi.Router) {
				r.Get("/", ctx.HandlerFunc(handlers.GETUsersHandler))
				r.Get("/{id}", ctx.HandlerFunc(handlers.GETUserHandler))
				r.Patch("/{id}/suspend", ctx.HandlerFunc(handlers.PATCHSuspendUserHandler))
				r.Patch("/{id}/unsuspend", ctx.HandlerFunc(handlers.PATCHUnsuspendUserHandler))
				r.Delete("/{id}", ctx.HandlerFunc(handlers.DELETEUserHandler))
			})

			r.Route("/roadmaps", func(r chi.Router) {
				r.Get("/", ctx.HandlerFunc(handlers.GETRoadmapsHandler))
				r.Get("/{id}", ctx.HandlerFunc(handlers.GETRoadmapHandler))
				r.Delete("/{id}", ctx.HandlerFunc(handlers.DELETERoadmapHandler))
				r.Get("/{id}/ratings", ctx.HandlerFunc(handlers.GETRoadmapRatingsHandler))
			})
		})
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
