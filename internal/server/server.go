package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"curiona-admin/internal/admin"
	"curiona-admin/internal/auth"
	"curiona-admin/internal/authclient"
	"curiona-admin/internal/config"
	"curiona-admin/internal/data"
	"curiona-admin/internal/jobs"
	"curiona-admin/internal/metrics"
	"curiona-admin/internal/middlewares"
	"curiona-admin/internal/session"
	"curiona-admin/internal/upstream"
	"curiona-admin/internal/version"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

const cacheSweepInterval = time.Minute

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	router      *chi.Mux
	httpServer  *http.Server
	debugServer *http.Server
	cache       data.CacheProvider
	handshake   *auth.HandshakeManager
	jobManager  *jobs.JobManager
	ctx         context.Context
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	return newServer(cfg, setupLogger(cfg))
}

func newServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	ctx, cancel := context.WithCancel(context.Background())

	sessions, err := session.NewStore(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	handshake, err := auth.NewHandshakeManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create handshake session manager: %w", err)
	}

	// A nil *GoogleProvider must not end up inside the interface.
	var oauthProvider middlewares.OAuthProvider
	if cfg.OAuth.Enabled {
		google, err := auth.NewGoogleProvider(ctx, cfg.OAuth)
		if err != nil {
			cancel()
			return nil, err
		}
		oauthProvider = google
	}

	cache, err := data.NewCacheProvider(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to set up cache provider: %w", err)
	}

	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		registerRedisCollector(logger, "handshake", handshake.RedisClient())
		if redisCache, ok := cache.(*data.RedisCache); ok {
			if client, ok := redisCache.Client().(*redis.Client); ok {
				registerRedisCollector(logger, "cache", client)
			}
		}
	}

	authClient := authclient.New(cfg.API.BaseURL, cfg.API.Timeout, logger)
	adminClient := admin.New(cfg.API.BaseURL, cfg.API.Timeout, logger)

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, cache, sessions, handshake, oauthProvider, authClient, adminClient)

	jobManager := jobs.NewJobManager(logger)
	if memCache, ok := cache.(*data.MemCache); ok {
		jobManager.Register(jobs.NewCacheSweepJob(memCache, cacheSweepInterval, logger))
	}
	probe := jobs.NewUpstreamProbeJob(upstream.New(cfg.API.BaseURL, cfg.API.Timeout, logger), cfg.API.HealthCheckInterval, cfg.API.Timeout, logger)
	jobManager.Register(probe)
	appCtx.Upstream = probe

	router := setupRouter(appCtx)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler:           setupDebugRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		router:      router,
		httpServer:  httpServer,
		debugServer: debugServer,
		cache:       cache,
		handshake:   handshake,
		jobManager:  jobManager,
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

func registerRedisCollector(logger *slog.Logger, subsystem string, client *redis.Client) {
	if client == nil {
		return
	}

	collector := redisprometheus.NewCollector(metrics.Namespace, subsystem, client)
	if err := prometheus.Register(collector); err != nil {
		logger.Debug("failed to register redis collector: already registered", "subsystem", subsystem, "error", err)
	}
}

// Handler returns the console router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.jobManager.Start(s.ctx)

	go func() {
		s.logger.Info("Server Started", "port", s.cfg.Server.Port, "version", version.GetFullVersion())
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.ctx.Done():
		s.logger.Info("Context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	return s.Shutdown(shutdownCtx)
}

// Shutdown stops the listeners and background jobs and closes backing stores.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting Down Server")
	s.cancel()

	s.jobManager.Shutdown(ctx)

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(ctx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	if err := s.cache.Close(); err != nil {
		s.logger.Warn("failed to close cache", "error", err)
	}

	if client := s.handshake.RedisClient(); client != nil {
		if err := client.Close(); err != nil {
			s.logger.Warn("failed to close handshake store", "error", err)
		}
	}

	s.logger.Info("Server Exited")
	return nil
}
