package http

import (
	"encoding/json"
	nethttp "net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter enforces a per-client-IP token bucket.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter builds a limiter allowing r events per second with the
// given burst per client IP.
func NewRateLimiter(r float64, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(r),
		burst:    burst,
		now:      time.Now,
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = rl.now()

	// Opportunistic pruning keeps the map from growing unbounded.
	if len(rl.visitors) > 10_000 {
		cutoff := rl.now().Add(-10 * time.Minute)
		for ip, v := range rl.visitors {
			if v.lastSeen.Before(cutoff) {
				delete(rl.visitors, ip)
			}
		}
	}

	return v.limiter.Allow()
}

// Middleware rejects over-limit requests with an envelope-shaped 429.
func (rl *RateLimiter) Middleware(next nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if !rl.allow(clientIP(r)) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(nethttp.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(envelope{
				Success: false,
				Message: "Too many requests, please try again later",
				Error:   &apiError{Name: "RateLimitError", Message: "Too many requests, please try again later"},
				Meta: meta{
					Timestamp: time.Now().UTC().Format(time.RFC3339),
					RequestID: requestIDFromContext(r.Context()),
				},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
