package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	catalog  *Catalog
	revision string
	built    time.Time
}

// Cache holds loaded catalogs keyed by source, rebuilt after the TTL.
// Concurrent misses for one source share a single load.
type Cache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	sf      singleflight.Group
	now     func() time.Time
}

// NewCache creates a cache. A zero TTL disables reuse.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
		now:     time.Now,
	}
}

func (c *Cache) fresh(e *cacheEntry) bool {
	if c.ttl == 0 {
		return false
	}
	return c.now().Sub(e.built) <= c.ttl
}

// Get returns the cached catalog for src, loading it when missing or expired.
func (c *Cache) Get(ctx context.Context, src Source) (*Catalog, error) {
	key := src.Key()

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if exists && c.fresh(entry) {
		return entry.catalog, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		entry, exists := c.entries[key]
		c.mu.RUnlock()

		if exists && c.fresh(entry) {
			return entry.catalog, nil
		}

		var revision string
		if rev, ok := src.(Revisioner); ok {
			if r, err := rev.Revision(ctx); err == nil {
				revision = r
				if exists && revision != "" && revision == entry.revision {
					c.store(key, &cacheEntry{catalog: entry.catalog, revision: revision, built: c.now()})
					return entry.catalog, nil
				}
			}
		}

		cat, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, &cacheEntry{catalog: cat, revision: revision, built: c.now()})
		return cat, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Catalog), nil
}

func (c *Cache) store(key string, e *cacheEntry) {
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

// Bound pairs a cache with one source so callers can ask for "the" catalog.
type Bound struct {
	Cache  *Cache
	Source Source
}

// Catalog returns the current catalog of the bound source.
func (b Bound) Catalog(ctx context.Context) (*Catalog, error) {
	return b.Cache.Get(ctx, b.Source)
}
