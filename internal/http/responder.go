package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"time"
)

// apiError is the error block inside the response envelope.
type apiError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// fieldError describes one failed validation rule.
type fieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type meta struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
}

// envelope is the uniform response shape for every endpoint.
type envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Error   *apiError    `json:"error,omitempty"`
	Errors  []fieldError `json:"errors,omitempty"`
	Meta    meta         `json:"meta"`
}

func (h *Handler) writeEnvelope(w nethttp.ResponseWriter, r *nethttp.Request, status int, env envelope) {
	env.Meta = meta{
		Timestamp: h.now().UTC().Format(time.RFC3339),
		RequestID: requestIDFromContext(r.Context()),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", slog.String("path", r.URL.Path), "error", err)
	}
}

func (h *Handler) writeData(w nethttp.ResponseWriter, r *nethttp.Request, status int, message string, data any) {
	h.writeEnvelope(w, r, status, envelope{Success: true, Message: message, Data: data})
}

func (h *Handler) writeError(w nethttp.ResponseWriter, r *nethttp.Request, status int, name, message string) {
	h.writeEnvelope(w, r, status, envelope{
		Success: false,
		Message: message,
		Error:   &apiError{Name: name, Message: message},
	})
}

func (h *Handler) writeValidationErrors(w nethttp.ResponseWriter, r *nethttp.Request, errs []fieldError) {
	h.writeEnvelope(w, r, nethttp.StatusBadRequest, envelope{
		Success: false,
		Message: "Validation error",
		Errors:  errs,
	})
}
