// Package cache provides caching implementations for provider interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"finboard/internal/feature/charts/domain/entity"
	"finboard/internal/feature/charts/usecase"
)

// CachingChartProvider decorates a ChartProvider with Redis caching.
// It implements the decorator pattern, transparently adding caching
// without modifying the underlying provider. Chart series are recomputed
// upstream on every call, so a short TTL keeps the dashboard fresh while
// absorbing bursts of repeated lookups.
type CachingChartProvider struct {
	inner     usecase.ChartProvider
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingChartProviderがChartProviderを実装していることをコンパイル時に検証します。
var _ usecase.ChartProvider = (*CachingChartProvider)(nil)

// NewCachingChartProvider decorates a ChartProvider with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "charts".
func NewCachingChartProvider(rdb *redis.Client, ttl time.Duration, inner usecase.ChartProvider, namespace string) *CachingChartProvider {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "charts"
	}
	return &CachingChartProvider{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Series retrieves a chart series, checking the cache first and falling
// back to the underlying provider.
func (c *CachingChartProvider) Series(ctx context.Context, symbol, rng string) ([]entity.ChartPoint, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Series(ctx, symbol, rng)
	}

	key := c.cacheKey(symbol, rng)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.ChartPoint
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the provider
	out, err := c.inner.Series(ctx, symbol, rng)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingChartProvider) cacheKey(symbol, rng string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, safe(symbol), safe(rng))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
