package http

import (
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"strings"

	"ign-lookup-service/internal/domain"
	"ign-lookup-service/internal/logging"
	"ign-lookup-service/internal/store"
)

// checkRequest is the body of POST /api/check-ign.
type checkRequest struct {
	GameID string            `json:"gameId"`
	Params map[string]string `json:"params"`
}

type bulkCheckRequest struct {
	Checks []checkRequest `json:"checks"`
}

const maxBulkChecks = 10

// userIDFromParams accepts the per-game parameter aliases the API has
// always supported.
func userIDFromParams(params map[string]string) string {
	for _, key := range []string{"id", "uid", "riot_id", "tag"} {
		if v, ok := params[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

func (c checkRequest) validate() []fieldError {
	var errs []fieldError
	if strings.TrimSpace(c.GameID) == "" {
		errs = append(errs, fieldError{Path: "gameId", Message: "gameId is required"})
	}
	if c.Params == nil {
		errs = append(errs, fieldError{Path: "params", Message: "params is required"})
	} else if userIDFromParams(c.Params) == "" {
		errs = append(errs, fieldError{Path: "params", Message: "an account id is required"})
	}
	return errs
}

// CheckIGN handles POST /api/check-ign.
func (h *Handler) CheckIGN(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.methodNotAllowed(w, r)
		return
	}

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, nethttp.StatusBadRequest, "ValidationError", "invalid JSON body")
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		h.writeValidationErrors(w, r, errs)
		return
	}

	result := h.checker.Dispatch(r.Context(), req.GameID, userIDFromParams(req.Params), req.Params["zone"])
	h.recordCheck(r, req, result)
	h.writeLookupResult(w, r, result)
}

// CheckIGNPath handles GET /api/check-ign/{gameId}/{ign}. The zone query
// parameter is required for games that need one.
func (h *Handler) CheckIGNPath(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w, r)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/check-ign/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		h.writeError(w, r, nethttp.StatusBadRequest, "ValidationError", "expected /api/check-ign/{gameId}/{ign}")
		return
	}
	gameID, ign := parts[0], parts[1]
	zone := r.URL.Query().Get("zone")

	if profile, ok := profileZoneRequired(gameID); ok && profile && zone == "" {
		h.writeError(w, r, nethttp.StatusBadRequest, "ValidationError", "Zone parameter is required for this game")
		return
	}

	result := h.checker.Dispatch(r.Context(), gameID, ign, zone)
	h.recordCheck(r, checkRequest{GameID: gameID, Params: map[string]string{"id": ign, "zone": zone}}, result)
	h.writeLookupResult(w, r, result)
}

// BulkCheck handles POST /api/bulk-check.
func (h *Handler) BulkCheck(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.methodNotAllowed(w, r)
		return
	}

	var req bulkCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, nethttp.StatusBadRequest, "ValidationError", "invalid JSON body")
		return
	}
	if len(req.Checks) == 0 || len(req.Checks) > maxBulkChecks {
		h.writeError(w, r, nethttp.StatusBadRequest, "ValidationError",
			fmt.Sprintf("checks must contain between 1 and %d items", maxBulkChecks))
		return
	}

	type bulkResult struct {
		GameID string              `json:"gameId"`
		Result domain.LookupResult `json:"result"`
	}

	results := make([]bulkResult, 0, len(req.Checks))
	successful := 0
	for _, check := range req.Checks {
		if errs := check.validate(); len(errs) > 0 {
			results = append(results, bulkResult{
				GameID: check.GameID,
				Result: domain.UpstreamError("invalid check: missing gameId or account id"),
			})
			continue
		}
		result := h.checker.Dispatch(r.Context(), check.GameID, userIDFromParams(check.Params), check.Params["zone"])
		h.recordCheck(r, check, result)
		if result.Outcome == domain.OutcomeFound {
			successful++
		}
		results = append(results, bulkResult{GameID: check.GameID, Result: result})
	}

	h.writeData(w, r, nethttp.StatusOK, "Bulk check completed", map[string]any{
		"results":           results,
		"total_checks":      len(req.Checks),
		"successful_checks": successful,
	})
}

// writeLookupResult serializes a LookupResult to the wire contract:
// Found -> 200, NotFound -> 404, Unsupported -> 501, UpstreamError -> 502.
func (h *Handler) writeLookupResult(w nethttp.ResponseWriter, r *nethttp.Request, result domain.LookupResult) {
	status := result.HTTPStatus()
	switch result.Outcome {
	case domain.OutcomeFound:
		h.writeData(w, r, status, "", map[string]any{
			"game":    result.Game,
			"account": result.Account,
		})
	case domain.OutcomeNotFound:
		h.writeError(w, r, status, "Not Found", result.Reason)
	case domain.OutcomeUnsupported:
		h.writeError(w, r, status, "Not Implemented",
			fmt.Sprintf("IGN checking for %s is not yet supported", result.GameName))
	default:
		h.writeError(w, r, status, "Bad Gateway", "upstream provider unavailable")
	}
}

// recordCheck persists history for authenticated callers. Failures are
// logged and never block the response.
func (h *Handler) recordCheck(r *nethttp.Request, req checkRequest, result domain.LookupResult) {
	user := userFromContext(r.Context())
	if user == nil || h.store == nil {
		return
	}
	switch result.Outcome {
	case domain.OutcomeFound, domain.OutcomeNotFound:
	default:
		return
	}

	input, _ := json.Marshal(req.Params)
	check := &store.IGNCheck{
		UserID:    user.ID,
		GameCode:  req.GameID,
		IGN:       result.Account.IGN,
		UserInput: string(input),
		Available: result.Outcome == domain.OutcomeFound,
	}
	if err := h.store.RecordCheck(r.Context(), check); err != nil {
		logging.Error(logging.FromContext(r.Context(), h.logger), "failed to store check history", err)
	}
}
