package cache

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"ign-lookup-service/internal/domain"
)

// Checker is the dispatch contract this cache decorates.
type Checker interface {
	Dispatch(ctx context.Context, gameCode, userID, zoneID string) domain.LookupResult
}

const (
	defaultTTL  = 5 * time.Minute
	defaultSize = 1024
)

// CachingChecker wraps a Checker with a TTL-bounded LRU. Only settled
// outcomes (Found/NotFound) are cached; upstream failures and unsupported
// codes always go through. Cached results are immutable.
type CachingChecker struct {
	inner Checker
	lru   *expirable.LRU[string, domain.LookupResult]
}

// New builds a caching decorator. Non-positive ttl/size fall back to
// defaults.
func New(inner Checker, ttl time.Duration, size int) *CachingChecker {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if size <= 0 {
		size = defaultSize
	}
	return &CachingChecker{
		inner: inner,
		lru:   expirable.NewLRU[string, domain.LookupResult](size, nil, ttl),
	}
}

func cacheKey(gameCode, userID, zoneID string) string {
	return strings.Join([]string{gameCode, userID, zoneID}, ":")
}

// Dispatch serves from cache when possible, falling through to the inner
// checker otherwise.
func (c *CachingChecker) Dispatch(ctx context.Context, gameCode, userID, zoneID string) domain.LookupResult {
	key := cacheKey(gameCode, userID, zoneID)
	if result, ok := c.lru.Get(key); ok {
		return result
	}

	result := c.inner.Dispatch(ctx, gameCode, userID, zoneID)
	switch result.Outcome {
	case domain.OutcomeFound, domain.OutcomeNotFound:
		c.lru.Add(key, result)
	}
	return result
}

// Len reports how many results are currently cached.
func (c *CachingChecker) Len() int {
	return c.lru.Len()
}
