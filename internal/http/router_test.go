package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ign-lookup-service/internal/domain"
	"ign-lookup-service/internal/metrics"
)

func newTestRouter(t *testing.T, result domain.LookupResult, limiter *RateLimiter) nethttp.Handler {
	t.Helper()
	h, _, st := newTestHandler(t, result)
	return NewRouter(h, RouterConfig{
		Logger:         discardLogger(),
		Recorder:       metrics.NewRecorder(),
		Store:          st,
		AllowedOrigins: []string{"*"},
		RateLimiter:    limiter,
	})
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t, domain.Found("Mobile Legends", "PlayerOne", "12345", "1234"), nil)

	cases := []struct {
		method string
		path   string
		status int
	}{
		{nethttp.MethodGet, "/api/health", nethttp.StatusOK},
		{nethttp.MethodGet, "/api/games", nethttp.StatusOK},
		{nethttp.MethodGet, "/api/games/mlbb", nethttp.StatusOK},
		{nethttp.MethodGet, "/api/stats", nethttp.StatusOK},
		{nethttp.MethodGet, "/api/stats/games", nethttp.StatusOK},
		{nethttp.MethodGet, "/api/user/profile", nethttp.StatusUnauthorized},
		{nethttp.MethodGet, "/api/user/1/history", nethttp.StatusUnauthorized},
		{nethttp.MethodGet, "/api/nope", nethttp.StatusNotFound},
		{nethttp.MethodDelete, "/api/health", nethttp.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.status {
			t.Errorf("%s %s = %d, want %d", tc.method, tc.path, rec.Code, tc.status)
		}
	}
}

func TestRouterRequestID(t *testing.T) {
	router := newTestRouter(t, domain.LookupResult{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/api/health", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected generated X-Request-ID header")
	}

	req := httptest.NewRequest(nethttp.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want abc-123", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, domain.LookupResult{}, nil)

	req := httptest.NewRequest(nethttp.MethodOptions, "/api/check-ign", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != nethttp.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow-origin = %q, want *", got)
	}
}

func TestCORSRestrictedOrigins(t *testing.T) {
	handler := CORSMiddleware([]string{"https://app.example.com"},
		nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusOK)
		}))

	req := httptest.NewRequest(nethttp.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("allow-origin = %q, want the configured origin", got)
	}

	req = httptest.NewRequest(nethttp.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("allow-origin = %q for unlisted origin, want empty", got)
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	router := newTestRouter(t, domain.LookupResult{}, limiter)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(nethttp.MethodGet, "/api/health", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	if statuses[0] != nethttp.StatusOK || statuses[1] != nethttp.StatusOK {
		t.Fatalf("first two requests = %v, want 200s", statuses[:2])
	}
	if statuses[2] != nethttp.StatusTooManyRequests {
		t.Fatalf("third request = %d, want 429", statuses[2])
	}

	// A different client has its own bucket.
	req := httptest.NewRequest(nethttp.MethodGet, "/api/health", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("other client status = %d, want 200", rec.Code)
	}
}

func TestRateLimiterPrunesIdleVisitors(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	base := time.Now()
	limiter.now = func() time.Time { return base }

	limiter.allow("10.0.0.1")
	if len(limiter.visitors) != 1 {
		t.Fatalf("visitors = %d, want 1", len(limiter.visitors))
	}

	// Pruning only kicks in past the size threshold; simulate it directly.
	limiter.now = func() time.Time { return base.Add(time.Hour) }
	limiter.mu.Lock()
	cutoff := limiter.now().Add(-10 * time.Minute)
	for ip, v := range limiter.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(limiter.visitors, ip)
		}
	}
	limiter.mu.Unlock()
	if len(limiter.visitors) != 0 {
		t.Errorf("visitors = %d after prune, want 0", len(limiter.visitors))
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:5555"
	if got := clientIP(req); got != "192.0.2.10" {
		t.Errorf("clientIP = %q, want 192.0.2.10", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 192.0.2.10")
	if got := clientIP(req); got != "203.0.113.7" {
		t.Errorf("clientIP with XFF = %q, want 203.0.113.7", got)
	}
}
