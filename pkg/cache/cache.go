package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a generic key-value cache with TTL support.
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: item never expires
type Cache[V any] interface {
	// Get returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}

// LoadFunc computes a missing value and the TTL to cache it for.
type LoadFunc[V any] func(ctx context.Context) (V, time.Duration, error)

// Loader wraps a Cache with read-through loading.
// Concurrent misses for the same key share a single LoadFunc call.
type Loader[V any] struct {
	cache Cache[V]
	group singleflight.Group
}

// NewLoader creates a read-through loader over c.
func NewLoader[V any](c Cache[V]) *Loader[V] {
	return &Loader[V]{cache: c}
}

// Cache returns the underlying cache.
func (l *Loader[V]) Cache() Cache[V] { return l.cache }

// GetOrSet returns the cached value for key, or calls fn on a miss.
// If fn fails, nothing is cached and the error is returned.
func (l *Loader[V]) GetOrSet(ctx context.Context, key string, fn LoadFunc[V]) (V, error) {
	if v, err := l.cache.Get(ctx, key); err == nil {
		return v, nil
	}

	res, err, _ := l.group.Do(key, func() (any, error) {
		val, ttl, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		// Best effort: a closed cache still returns the loaded value.
		_ = l.cache.Set(ctx, key, val, ttl)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// Forget drops key from the cache so the next GetOrSet reloads it.
func (l *Loader[V]) Forget(ctx context.Context, key string) error {
	l.group.Forget(key)
	return l.cache.Delete(ctx, key)
}
