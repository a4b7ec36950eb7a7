// util/ttl_cache.go

package util

import (
	"sort"
	"sync"
	"time"

	"github.com/kada-connect/api/model"
)

// cacheEntry holds a computed value and when it was computed.
type cacheEntry struct {
	value      interface{}
	computedAt time.Time
}

// TTLCache is an explicit key -> (value, timestamp) mapping with a fixed
// time-to-live. Expired entries are recomputed by callers on the next read;
// they are never evicted proactively. Concurrent recomputation for the same
// key is benign: values are pure functions of current profile data, so the
// last writer wins.
type TTLCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewTTLCache creates an empty cache whose entries live for ttl.
func NewTTLCache(ttl time.Duration) *TTLCache {
	return &TTLCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached value for key if it exists and has not expired.
func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.computedAt) > c.ttl {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with a fresh timestamp.
func (c *TTLCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{value: value, computedAt: c.now()}
}

// Clear discards all entries unconditionally.
func (c *TTLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}

// Len returns the number of populated entries, expired ones included.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Status reports age, remaining TTL and validity for every populated entry,
// sorted by key for stable output. Stale entries are reported, not hidden,
// since they stay in the map until the next read recomputes them.
func (c *TTLCache) Status() []model.CacheKeyStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	statuses := make([]model.CacheKeyStatus, 0, len(c.entries))
	now := c.now()
	for key, e := range c.entries {
		age := now.Sub(e.computedAt)
		remaining := c.ttl - age
		if remaining < 0 {
			remaining = 0
		}
		statuses = append(statuses, model.CacheKeyStatus{
			Key:        key,
			Age:        age,
			Remaining:  remaining,
			Valid:      age <= c.ttl,
			ComputedAt: e.computedAt,
		})
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Key < statuses[j].Key })
	return statuses
}
