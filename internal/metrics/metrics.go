package metrics

import (
	"sync"
	"time"
)

type lookupKey struct {
	game    string
	outcome string
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// lookup outcomes. It is intentionally simple so it can be swapped for a
// real backend later.
type Recorder struct {
	mu              sync.Mutex
	providerCalls   int
	providerErrors  int
	lastCallLatency time.Duration
	lookups         map[lookupKey]int
	otel            *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		lookups: make(map[lookupKey]int),
		otel:    otel,
	}
}

// RecordProviderAttempt increments counters for an outbound call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.providerCalls++
	r.lastCallLatency = duration
	if err != nil {
		r.providerErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(duration, err)
	}
}

// RecordLookup tracks a completed dispatch by game code and outcome.
func (r *Recorder) RecordLookup(game, outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.lookups[lookupKey{game: game, outcome: outcome}]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLookup(game, outcome, duration)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total outbound attempts recorded.
func (r *Recorder) ProviderCalls() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.providerCalls
}

// ProviderErrors returns the total failed outbound attempts recorded.
func (r *Recorder) ProviderErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.providerErrors
}

// LastCallLatency returns the last recorded latency for an outbound call.
func (r *Recorder) LastCallLatency() time.Duration {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastCallLatency
}

// LookupCount returns how many dispatches finished with the given game code
// and outcome.
func (r *Recorder) LookupCount(game, outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookups[lookupKey{game: game, outcome: outcome}]
}
