// util/ttl_cache_test.go

package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCache_GetSet(t *testing.T) {
	cache := NewTTLCache(time.Minute)

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Set("key", []string{"a", "b"})
	value, ok := cache.Get("key")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, value)
	assert.Equal(t, 1, cache.Len())
}

func TestTTLCache_Expiry(t *testing.T) {
	cache := NewTTLCache(time.Minute)
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	cache.Set("key", "value")

	current = current.Add(59 * time.Second)
	_, ok := cache.Get("key")
	assert.True(t, ok)

	current = current.Add(2 * time.Second)
	_, ok = cache.Get("key")
	assert.False(t, ok)

	// Expired entries stay in the map until overwritten.
	assert.Equal(t, 1, cache.Len())

	// A fresh Set revives the key.
	cache.Set("key", "newer")
	value, ok := cache.Get("key")
	require.True(t, ok)
	assert.Equal(t, "newer", value)
}

func TestTTLCache_Clear(t *testing.T) {
	cache := NewTTLCache(time.Minute)
	cache.Set("a", 1)
	cache.Set("b", 2)

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("a")
	assert.False(t, ok)
}

func TestTTLCache_Status(t *testing.T) {
	cache := NewTTLCache(time.Minute)
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	cache.Set("beta", 2)
	cache.Set("alpha", 1)

	current = current.Add(30 * time.Second)
	statuses := cache.Status()
	require.Len(t, statuses, 2)

	// Sorted by key.
	assert.Equal(t, "alpha", statuses[0].Key)
	assert.Equal(t, "beta", statuses[1].Key)
	for _, s := range statuses {
		assert.Equal(t, 30*time.Second, s.Age)
		assert.Equal(t, 30*time.Second, s.Remaining)
		assert.True(t, s.Valid)
	}

	// Stale entries are reported with zero remaining TTL.
	current = current.Add(2 * time.Minute)
	statuses = cache.Status()
	require.Len(t, statuses, 2)
	for _, s := range statuses {
		assert.Equal(t, time.Duration(0), s.Remaining)
		assert.False(t, s.Valid)
	}
}
