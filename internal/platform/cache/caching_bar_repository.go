// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"momentum_screener/internal/feature/screener/domain/entity"
	"momentum_screener/internal/feature/screener/usecase"
)

// CachingBarRepository decorates a MarketRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingBarRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	now       func() time.Time
}

var _ usecase.MarketRepository = (*CachingBarRepository)(nil)

// NewCachingBarRepository decorates a MarketRepository with Redis caching.
// If ttl is 0, entries expire at the next minute boundary. If namespace is empty, it uses "bars".
func NewCachingBarRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingBarRepository {
	if ttl < 0 {
		ttl = 0
	}
	if namespace == "" {
		namespace = "bars"
	}
	return &CachingBarRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		now:       time.Now,
	}
}

// GetRecentBars retrieves bars, checking cache first then falling back to the upstream API.
// Errors and empty results are never cached.
func (c *CachingBarRepository) GetRecentBars(ctx context.Context, symbol string, count int) ([]entity.Bar, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetRecentBars(ctx, symbol, count)
	}

	key := c.cacheKey(symbol, count)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Bar
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to upstream
	out, err := c.inner.GetRecentBars(ctx, symbol, count)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.expiry()).Err(); err != nil {
			slog.Warn("failed to cache bars", "symbol", symbol, "error", err)
		}
	}

	return out, nil
}

// expiry returns the TTL for a new cache entry.
func (c *CachingBarRepository) expiry() time.Duration {
	if c.ttl > 0 {
		return c.ttl
	}
	return TimeUntilNextMinute(c.now())
}

// cacheKey generates a cache key for a specific query.
func (c *CachingBarRepository) cacheKey(symbol string, count int) string {
	return fmt.Sprintf("%s:%s:%d",
		c.namespace,
		safe(symbol),
		count,
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
