package http

import (
	nethttp "net/http"
	"time"

	"ign-lookup-service/internal/logging"
	"ign-lookup-service/internal/lookup"
)

var statsPeriods = map[string]time.Duration{
	"1h":  time.Hour,
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

// Stats handles GET /api/stats: traffic aggregates for the last 24 hours.
func (h *Handler) Stats(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w, r)
		return
	}

	ctx := r.Context()
	since := h.now().UTC().Add(-24 * time.Hour)

	overview, err := h.store.RequestOverview(ctx, since)
	if err != nil {
		logging.Error(logging.FromContext(ctx, h.logger), "stats overview failed", err)
		h.writeError(w, r, nethttp.StatusInternalServerError, "Error", "failed to load stats")
		return
	}
	endpoints, err := h.store.TopEndpoints(ctx, since, 10)
	if err != nil {
		logging.Error(logging.FromContext(ctx, h.logger), "top endpoints failed", err)
		h.writeError(w, r, nethttp.StatusInternalServerError, "Error", "failed to load stats")
		return
	}
	hourly, err := h.store.HourlyDistribution(ctx, since)
	if err != nil {
		logging.Error(logging.FromContext(ctx, h.logger), "hourly distribution failed", err)
		h.writeError(w, r, nethttp.StatusInternalServerError, "Error", "failed to load stats")
		return
	}

	h.writeData(w, r, nethttp.StatusOK, "", map[string]any{
		"period":        "24h",
		"overview":      overview,
		"top_endpoints": endpoints,
		"hourly":        hourly,
	})
}

// GameStats handles GET /api/stats/games?period=1h|24h|7d|30d.
func (h *Handler) GameStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w, r)
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = "24h"
	}
	window, ok := statsPeriods[period]
	if !ok {
		h.writeError(w, r, nethttp.StatusBadRequest, "ValidationError", "period must be one of 1h, 24h, 7d, 30d")
		return
	}

	since := h.now().UTC().Add(-window)
	stats, err := h.store.GameCheckStats(r.Context(), since)
	if err != nil {
		logging.Error(logging.FromContext(r.Context(), h.logger), "game stats failed", err)
		h.writeError(w, r, nethttp.StatusInternalServerError, "Error", "failed to load game stats")
		return
	}
	for i := range stats {
		stats[i].Name = lookup.DisplayName(stats[i].GameCode)
	}

	h.writeData(w, r, nethttp.StatusOK, "", map[string]any{
		"period": period,
		"games":  stats,
	})
}
