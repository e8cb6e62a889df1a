// Package cache provides content memoization for the overlay engine.
//
// A tooltip following the pointer re-renders on every move event, and in
// the common case the bound datum has not changed between events. Caching
// the generated markup keyed by a hash of the datum and the formatting
// options turns those renders into a single map lookup.
//
// The package exposes a small byte-oriented [Cache] interface with three
// implementations:
//   - Memory: In-process TTL cache, the default for interactive use
//   - Null: No-op cache for disabling memoization
//   - Scoped: Prefix wrapper isolating cache entries per overlay instance
//
// Cache keys are SHA-256 hashes of their components (see [ContentKey]),
// so arbitrary datum contents never leak into key syntax.
package cache

import (
	"context"
	"time"
)

// Cache is the byte-oriented storage interface for memoized content.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
