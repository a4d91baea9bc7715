package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"ign-lookup-service/internal/auth"
	"ign-lookup-service/internal/cache"
	"ign-lookup-service/internal/config"
	httpapi "ign-lookup-service/internal/http"
	"ign-lookup-service/internal/logging"
	"ign-lookup-service/internal/lookup"
	"ign-lookup-service/internal/metrics"
	"ign-lookup-service/internal/providers"
	"ign-lookup-service/internal/providers/codashop"
	"ign-lookup-service/internal/store"
)

var metricsSetup = metrics.Setup

// Version is stamped at build time via -ldflags.
var Version = "dev"

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.Store
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithClient(cfg, logger, nil)
}

func newServerWithClient(cfg config.Config, logger *slog.Logger, client providers.LookupClient) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if client == nil {
		client = codashop.NewClient(codashop.Config{
			BaseURL:    cfg.Codashop.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.Codashop.Timeout},
		})
	}
	client = providers.NewRetryingClient(client, logger, recorder, cfg.Codashop.Retries, cfg.Codashop.RetryBackoff)

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	checker := buildChecker(cfg, client, logger, recorder)
	httpSrv := buildHTTPServer(cfg, checker, st, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         st,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

func buildChecker(cfg config.Config, client providers.LookupClient, logger *slog.Logger, recorder *metrics.Recorder) httpapi.Checker {
	dispatcher := lookup.NewDispatcher(client, logger, recorder)
	if cfg.CacheTTL <= 0 || cfg.CacheSize <= 0 {
		return dispatcher
	}
	return cache.New(dispatcher, cfg.CacheTTL, cfg.CacheSize)
}

func buildHTTPServer(cfg config.Config, checker httpapi.Checker, st *store.Store, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	handler := httpapi.NewHandler(checker, st, tokens, logger, Version)

	var limiter *httpapi.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = httpapi.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		Logger:         logger,
		Recorder:       recorder,
		Store:          st,
		AllowedOrigins: cfg.CORSOrigins,
		RateLimiter:    limiter,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:        ":" + recCfg.Port,
				Handler:     handler,
				ReadTimeout: 5 * time.Second,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
