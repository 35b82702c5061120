// Package cache provides a small in-memory TTL cache.
package cache

import (
	"sync"
	"time"
)

type item[V any] struct {
	value     V
	expiresAt time.Time // zero means no expiry
}

// InMemoryCache is a mutex-guarded map with per-entry TTLs. Expired entries
// are dropped on access; there is no background janitor, so an idle cache
// costs nothing.
type InMemoryCache[K comparable, V any] struct {
	items      map[K]item[V]
	defaultTTL time.Duration
	mu         sync.RWMutex
}

// New creates a cache. defaultTTL applies to Set calls with a non-positive
// ttl; a non-positive defaultTTL means such entries never expire.
func New[K comparable, V any](defaultTTL time.Duration) *InMemoryCache[K, V] {
	return &InMemoryCache[K, V]{
		items:      make(map[K]item[V]),
		defaultTTL: defaultTTL,
	}
}

// Get returns the live value for key, if any.
func (c *InMemoryCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}
	if !it.expiresAt.IsZero() && time.Now().After(it.expiresAt) {
		c.Delete(key)
		var zero V
		return zero, false
	}
	return it.value, true
}

// Set stores value under key for ttl. A non-positive ttl falls back to the
// cache's default.
func (c *InMemoryCache[K, V]) Set(key K, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	it := item[V]{value: value}
	if ttl > 0 {
		it.expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.items[key] = it
	c.mu.Unlock()
}

// Delete removes key.
func (c *InMemoryCache[K, V]) Delete(key K) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Clear removes every entry.
func (c *InMemoryCache[K, V]) Clear() {
	c.mu.Lock()
	c.items = make(map[K]item[V])
	c.mu.Unlock()
}

// Size returns the number of stored entries, expired ones included until
// their next access.
func (c *InMemoryCache[K, V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
