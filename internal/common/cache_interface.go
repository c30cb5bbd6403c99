package common

import (
	"context"
	"time"
)

// CacheInterface defines the contract for cache implementations.
// Values are stored JSON encoded so every backend round-trips typed values.
type CacheInterface interface {
	// Set stores value under key for duration
	Set(ctx context.Context, key string, value interface{}, duration time.Duration) error

	// Get decodes the cached value into dest. Returns false when the key is absent.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Delete removes a value from cache by key
	Delete(ctx context.Context, key string) error

	// Ping reports whether the backend is reachable
	Ping(ctx context.Context) error

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}

// GetOrLoad returns the cached value for key, or calls loader and caches its result.
// The boolean reports whether the value was served from cache.
// Cache read/write failures degrade to calling loader; they are never returned.
func GetOrLoad[T any](
	ctx context.Context,
	c CacheInterface,
	key string,
	duration time.Duration,
	loader func(ctx context.Context) (T, error),
) (T, bool, error) {
	var cached T
	if found, err := c.Get(ctx, key, &cached); err == nil && found {
		return cached, true, nil
	}

	val, err := loader(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}

	_ = c.Set(ctx, key, val, duration)
	return val, false, nil
}
