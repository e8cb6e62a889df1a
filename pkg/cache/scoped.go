package cache

import (
	"context"
	"time"
)

// Scoped wraps a Cache with a key prefix for per-instance isolation.
// Multiple tooltip instances sharing one backing cache use scoped views
// so their memoized content never collides.
//
// Example usage:
//
//	shared := cache.NewMemory()
//	a := cache.NewScoped(shared, "tooltip-1:")
//	b := cache.NewScoped(shared, "tooltip-2:")
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped creates a prefixed view over inner.
// A nil inner falls back to the null cache.
func NewScoped(inner Cache, prefix string) Cache {
	if inner == nil {
		inner = NewNullCache()
	}
	return &Scoped{inner: inner, prefix: prefix}
}

// Get retrieves a value under the scoped key.
func (c *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.inner.Get(ctx, c.prefix+key)
}

// Set stores a value under the scoped key.
func (c *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.prefix+key, data, ttl)
}

// Delete removes a value under the scoped key.
func (c *Scoped) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, c.prefix+key)
}

// Close closes the underlying cache.
func (c *Scoped) Close() error { return c.inner.Close() }

// Ensure Scoped implements Cache.
var _ Cache = (*Scoped)(nil)
