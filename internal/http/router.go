package http

import (
	"log/slog"
	nethttp "net/http"

	"ign-lookup-service/internal/metrics"
	"ign-lookup-service/internal/store"
)

// RouterConfig carries the middleware collaborators for NewRouter.
type RouterConfig struct {
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
	Store          *store.Store
	AllowedOrigins []string
	RateLimiter    *RateLimiter
}

// NewRouter assembles the API surface with its middleware stack:
// CORS -> rate limit -> request logging -> routes.
func NewRouter(h *Handler, cfg RouterConfig) nethttp.Handler {
	mux := nethttp.NewServeMux()

	mux.HandleFunc("/api/health", h.Health)

	mux.HandleFunc("/api/auth/register", h.Register)
	mux.HandleFunc("/api/auth/login", h.Login)

	mux.HandleFunc("/api/games", h.Games)
	mux.HandleFunc("/api/games/", h.GameByCode)

	mux.Handle("/api/check-ign", h.OptionalAuth(nethttp.HandlerFunc(h.CheckIGN)))
	mux.Handle("/api/check-ign/", h.OptionalAuth(nethttp.HandlerFunc(h.CheckIGNPath)))
	mux.Handle("/api/bulk-check", h.OptionalAuth(nethttp.HandlerFunc(h.BulkCheck)))

	mux.Handle("/api/user/profile", h.RequireAuth(nethttp.HandlerFunc(h.Profile)))
	mux.Handle("/api/user/", h.RequireAuth(nethttp.HandlerFunc(h.UserHistory)))

	mux.HandleFunc("/api/stats", h.Stats)
	mux.HandleFunc("/api/stats/games", h.GameStats)

	mux.HandleFunc("/", h.NotFoundHandler)

	var handler nethttp.Handler = mux
	handler = LoggingMiddleware(cfg.Logger, cfg.Recorder, cfg.Store, handler)
	if cfg.RateLimiter != nil {
		handler = cfg.RateLimiter.Middleware(handler)
	}
	handler = CORSMiddleware(cfg.AllowedOrigins, handler)
	return handler
}
