package services

import (
	"context"
	"time"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/metrics"
)

// cached is common.GetOrLoad with hit/miss accounting per key prefix
func cached[T any](
	ctx context.Context,
	c common.CacheInterface,
	m *metrics.MetricsRegistry,
	prefix constants.CachePrefix,
	id string,
	ttl time.Duration,
	loader func(ctx context.Context) (T, error),
) (T, bool, error) {
	val, hit, err := common.GetOrLoad(ctx, c, string(prefix)+id, ttl, loader)
	if m != nil && err == nil {
		if hit {
			m.CacheHitsTotal.WithLabelValues(string(prefix)).Inc()
		} else {
			m.CacheMissesTotal.WithLabelValues(string(prefix)).Inc()
		}
	}
	return val, hit, err
}
