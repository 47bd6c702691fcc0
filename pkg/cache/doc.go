// Package cache provides a generic in-memory cache with TTL expiration,
// LRU eviction and read-through loading.
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL (1 hour by default)
//   - Negative: item never expires
//
// Memory keeps entries in a map plus a doubly-linked list, so lookups and
// evictions are O(1):
//
//	c := cache.NewMemory[string](
//	    cache.WithDefaultTTL(5 * time.Minute),
//	    cache.WithMaxEntries(256),
//	)
//	defer c.Close()
//
// Loader adds read-through loading. Concurrent misses for one key run the
// load function once:
//
//	pages := cache.NewLoader[Page](c)
//	p, err := pages.GetOrSet(ctx, "about", func(ctx context.Context) (Page, time.Duration, error) {
//	    p, err := render(ctx, "about")
//	    return p, 0, err
//	})
//
// Misses are reported with ErrNotFound, operations on a closed cache with
// ErrClosed.
package cache
