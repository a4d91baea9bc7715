package http

import (
	nethttp "net/http"
	"strconv"
	"strings"

	"ign-lookup-service/internal/logging"
)

// Profile handles GET /api/user/profile.
func (h *Handler) Profile(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w, r)
		return
	}

	user := userFromContext(r.Context())
	if user == nil {
		h.writeError(w, r, nethttp.StatusUnauthorized, "UnauthorizedError", "Authentication required")
		return
	}

	summary, err := h.store.UserCheckSummary(r.Context(), user.ID)
	if err != nil {
		logging.Error(logging.FromContext(r.Context(), h.logger), "profile summary failed", err)
		h.writeError(w, r, nethttp.StatusInternalServerError, "Error", "failed to load profile")
		return
	}

	h.writeData(w, r, nethttp.StatusOK, "", map[string]any{
		"user": userView{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			APIKey:   user.APIKey,
		},
		"stats": summary,
	})
}

// UserHistory handles GET /api/user/{userId}/history. Callers may only read
// their own history.
func (h *Handler) UserHistory(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w, r)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/user/")
	idPart, ok := strings.CutSuffix(rest, "/history")
	if !ok || idPart == "" || strings.Contains(idPart, "/") {
		h.NotFoundHandler(w, r)
		return
	}
	targetID, err := strconv.ParseUint(idPart, 10, 32)
	if err != nil {
		h.writeError(w, r, nethttp.StatusBadRequest, "ValidationError", "user id must be numeric")
		return
	}

	user := userFromContext(r.Context())
	if user == nil {
		h.writeError(w, r, nethttp.StatusUnauthorized, "UnauthorizedError", "Authentication required")
		return
	}
	if user.ID != uint(targetID) {
		h.writeError(w, r, nethttp.StatusForbidden, "ForbiddenError", "You can only view your own history")
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)
	if limit > 100 {
		limit = 100
	}

	checks, total, err := h.store.UserHistory(r.Context(), user.ID, limit, offset)
	if err != nil {
		logging.Error(logging.FromContext(r.Context(), h.logger), "history query failed", err)
		h.writeError(w, r, nethttp.StatusInternalServerError, "Error", "failed to load history")
		return
	}

	h.writeData(w, r, nethttp.StatusOK, "", map[string]any{
		"history": checks,
		"pagination": map[string]any{
			"total":  total,
			"limit":  limit,
			"offset": offset,
		},
	})
}

func queryInt(r *nethttp.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
