package providers

import (
	"context"
	"log/slog"
	"time"

	"ign-lookup-service/internal/logging"
	"ign-lookup-service/internal/metrics"
	"ign-lookup-service/internal/providers/codashop"
)

const (
	defaultRetryAttempts = 3
	defaultBackoffBase   = time.Second
)

type backoffFunc func(attempt int) time.Duration

// retryingClient wraps a LookupClient with retry/backoff behavior. Attempts
// are sequential; the backoff base doubles per attempt (1s, 2s, 4s with the
// defaults).
type retryingClient struct {
	inner       LookupClient
	logger      *slog.Logger
	recorder    *metrics.Recorder
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingClient wraps the given client with retries. If maxAttempts or
// backoff are <= 0, defaults are used.
func NewRetryingClient(inner LookupClient, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, backoff time.Duration) LookupClient {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoffBase
	}
	return &retryingClient{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return backoff << (attempt - 1)
		},
	}
}

func (r *retryingClient) InitPayment(ctx context.Context, order codashop.Order) (*codashop.InitPaymentResponse, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		resp, err := r.inner.InitPayment(ctx, order)
		r.recorder.RecordProviderAttempt(time.Since(start), err)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider call retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider call failed", "attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}

func (r *retryingClient) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
