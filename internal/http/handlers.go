package http

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"time"

	"ign-lookup-service/internal/auth"
	"ign-lookup-service/internal/domain"
	"ign-lookup-service/internal/store"
)

type nowFunc func() time.Time

// Checker is the lookup contract the HTTP layer consumes; satisfied by the
// dispatcher and its caching decorator.
type Checker interface {
	Dispatch(ctx context.Context, gameCode, userID, zoneID string) domain.LookupResult
}

// Handler wires HTTP routes to the lookup core and its collaborators.
type Handler struct {
	checker Checker
	store   *store.Store
	tokens  *auth.TokenManager
	logger  *slog.Logger
	version string
	started time.Time
	now     nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(checker Checker, st *store.Store, tokens *auth.TokenManager, logger *slog.Logger, version string) *Handler {
	return &Handler{
		checker: checker,
		store:   st,
		tokens:  tokens,
		logger:  logger,
		version: version,
		started: time.Now(),
		now:     time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w, r)
		return
	}
	h.writeData(w, r, nethttp.StatusOK, "API is healthy", map[string]any{
		"status":         "ok",
		"version":        h.version,
		"uptime_seconds": int64(h.now().Sub(h.started).Seconds()),
	})
}

func (h *Handler) methodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeError(w, r, nethttp.StatusMethodNotAllowed, "MethodNotAllowed", "method not allowed")
}

// NotFoundHandler serves the envelope-shaped 404 for unknown routes.
func (h *Handler) NotFoundHandler(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeError(w, r, nethttp.StatusNotFound, "NotFoundError", "Endpoint not found")
}
