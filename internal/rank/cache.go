package rank

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedSource wraps another Source with a TTL cache. The dataset is
// immutable for the lifetime of a process, so a generous TTL is safe; the
// TTL mostly bounds memory. Lookup failures are not cached.
type CachedSource struct {
	inner Source
	cache *gocache.Cache
}

// NewCachedSource wraps inner with a cache using the given TTL. A TTL of 0
// falls back to one hour.
func NewCachedSource(inner Source, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedSource{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Resolve returns the cached rank when present, otherwise delegates to the
// wrapped source and caches the result.
func (c *CachedSource) Resolve(ctx context.Context, domainName string) (int, error) {
	key := Normalize(domainName)
	if v, ok := c.cache.Get(key); ok {
		return v.(int), nil
	}
	rank, err := c.inner.Resolve(ctx, domainName)
	if err != nil {
		return Unranked, err
	}
	c.cache.SetDefault(key, rank)
	return rank, nil
}
