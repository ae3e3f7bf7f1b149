// Package cache is a small bounded TTL cache used to memoize analytics
// responses at the transport layer. The analytics core itself stays pure
// and cache-free; callers hold an explicit Cache and decide what to
// memoize.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value      any
	insertedAt time.Time
}

// Cache is a fixed-capacity map with per-cache TTL. When full, the oldest
// insertion is evicted. Safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	order      []string // Insertion order, oldest first.
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
}

func New(maxEntries int, ttl time.Duration) *Cache {
	return &Cache{
		entries:    make(map[string]entry, maxEntries),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Get returns the cached value if present and not expired. Expired
// entries are removed on access.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(e.insertedAt) > c.ttl {
		c.remove(key)
		return nil, false
	}

	return e.value, true
}

// Set stores the value, evicting the oldest insertion when the cache is
// full. Re-setting a key refreshes its insertion time and order.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.remove(key)
	}

	for len(c.entries) >= c.maxEntries && len(c.order) > 0 {
		c.remove(c.order[0])
	}

	c.entries[key] = entry{value: value, insertedAt: c.now()}
	c.order = append(c.order, key)
}

// Evict drops one key.
func (c *Cache) Evict(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.remove(key)
}

// Purge drops everything; called after any snapshot mutation.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry, c.maxEntries)
	c.order = c.order[:0]
}

// Len reports the number of live entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// remove expects the lock to be held.
func (c *Cache) remove(key string) {
	delete(c.entries, key)

	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
