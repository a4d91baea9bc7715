package http

import (
	"context"
	"log/slog"
	"net"
	nethttp "net/http"
	"strings"
	"time"

	"ign-lookup-service/internal/logging"
	"ign-lookup-service/internal/metrics"
	"ign-lookup-service/internal/store"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	nethttp.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = nethttp.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// clientIP prefers X-Forwarded-For so deployments behind a proxy still see
// the real caller.
func clientIP(r *nethttp.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// LoggingMiddleware tags each request with an id, logs it, records HTTP
// metrics, and persists a stat row for the /api/stats aggregates.
func LoggingMiddleware(logger *slog.Logger, recorder *metrics.Recorder, st *store.Store, next nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = generateRequestID()
		}

		ctx := withRequestID(r.Context(), requestID)
		reqLogger := logger.With(
			logging.FieldRequestID, requestID,
			logging.FieldMethod, r.Method,
			logging.FieldPath, r.URL.Path,
		)
		ctx = logging.WithLogger(ctx, reqLogger)

		rec := &statusRecorder{ResponseWriter: w, status: nethttp.StatusOK}
		rec.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(rec, r.WithContext(ctx))

		duration := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, r.URL.Path, rec.status, duration)
		logging.Info(reqLogger, "request completed",
			logging.FieldStatusCode, rec.status,
			logging.FieldDurationMS, duration.Milliseconds(),
		)

		if st != nil {
			stat := &store.RequestStat{
				Endpoint:   r.URL.Path,
				Method:     r.Method,
				StatusCode: rec.status,
				DurationMS: duration.Milliseconds(),
				ClientIP:   clientIP(r),
				UserAgent:  r.UserAgent(),
			}
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := st.RecordRequest(ctx, stat); err != nil {
					logging.Warn(logger, "failed to record request stat", "error", err)
				}
			}()
		}
	})
}

// CORSMiddleware applies the configured allowed origins. "*" allows all.
func CORSMiddleware(allowedOrigins []string, next nethttp.Handler) nethttp.Handler {
	allowAll := false
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		origin := r.Header.Get("Origin")
		if allowAll {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin != "" {
			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")

		if r.Method == nethttp.MethodOptions {
			w.WriteHeader(nethttp.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
