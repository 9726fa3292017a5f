package catalog

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 5 * time.Minute
)

type cacheEntry[T any] struct {
	items    []T
	storedAt time.Time
}

// resultCache holds filtered results keyed by canonical criteria.
type resultCache[T any] struct {
	lru *lru.Cache[string, cacheEntry[T]]
	ttl time.Duration
	now func() time.Time
}

func newResultCache[T any](size int, ttl time.Duration, now func() time.Time) *resultCache[T] {
	if size <= 0 {
		size = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	// lru.New only errors on a non-positive size, guarded above.
	c, _ := lru.New[string, cacheEntry[T]](size)
	return &resultCache[T]{lru: c, ttl: ttl, now: now}
}

func (c *resultCache[T]) get(key string) ([]T, bool) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.items, true
}

func (c *resultCache[T]) put(key string, items []T) {
	c.lru.Add(key, cacheEntry[T]{items: items, storedAt: c.now()})
}

func (c *resultCache[T]) purge() { c.lru.Purge() }

func (c *resultCache[T]) size() int { return c.lru.Len() }
