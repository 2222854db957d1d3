package service

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/guttosm/segment-insights/internal/metrics"
)

// cacheEntry holds one computed result and the time it was computed.
type cacheEntry struct {
	value      any
	computedAt time.Time
}

// TTLCache memoizes computed results by key for a caller-supplied TTL.
// Entries are never evicted; the working set is one entry per metric key,
// so memory is bounded by the number of distinct computations. Concurrent
// misses on the same key are collapsed to a single supplier call.
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	sf      singleflight.Group

	// now is swappable for tests.
	now func() time.Time
}

// NewTTLCache creates an empty cache.
func NewTTLCache() *TTLCache {
	return &TTLCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// GetOrCompute returns the cached value for key if it is younger than ttl,
// otherwise invokes supplier, stores the result, and returns it. Supplier
// errors are returned to every coalesced caller and nothing is stored, so
// the next call retries.
func (c *TTLCache) GetOrCompute(key string, ttl time.Duration, supplier func() (any, error)) (any, error) {
	if value, ok := c.lookup(key, ttl); ok {
		metrics.RecordCacheOperation("get", "hit")
		return value, nil
	}
	metrics.RecordCacheOperation("get", "miss")

	value, err, _ := c.sf.Do(key, func() (any, error) {
		// A coalesced caller may arrive just after the winner stored the
		// result; serve the fresh entry instead of recomputing.
		if value, ok := c.lookup(key, ttl); ok {
			return value, nil
		}
		value, err := supplier()
		if err != nil {
			return nil, err
		}
		c.store(key, value)
		metrics.RecordCacheOperation("set", "success")
		return value, nil
	})
	return value, err
}

// Len returns the number of live entries.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *TTLCache) lookup(key string, ttl time.Duration) (any, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.computedAt) >= ttl {
		return nil, false
	}
	return entry.value, true
}

func (c *TTLCache) store(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, computedAt: c.now()}
}
