package cache

import (
	"sync"
	"time"
)

type entry struct {
	value      interface{}
	insertedAt time.Time
	expiresAt  time.Time
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Expired int64 `json:"expired"`
	Entries int   `json:"entries"`
}

// Cache is a process-scoped TTL map with periodic sweep-based eviction.
// There is no capacity bound; entries live until their TTL elapses.
type Cache struct {
	mu      sync.RWMutex
	items   map[string]entry
	hits    int64
	misses  int64
	expired int64
	done    chan struct{}
	once    sync.Once
}

// New creates a cache and starts its sweep goroutine. Callers own the
// lifecycle and must Close it on shutdown.
func New(sweepInterval time.Duration) *Cache {
	c := &Cache{
		items: make(map[string]entry),
		done:  make(chan struct{}),
	}
	go c.sweep(sweepInterval)
	return c
}

func (c *Cache) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, ent := range c.items {
				if now.After(ent.expiresAt) {
					delete(c.items, key)
					c.expired++
				}
			}
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}

// Get returns the cached value and its insertion time. Expired entries are
// treated as misses; the sweep goroutine reclaims them later.
func (c *Cache) Get(key string) (interface{}, time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.items[key]
	if !ok || time.Now().After(ent.expiresAt) {
		c.misses++
		return nil, time.Time{}, false
	}
	c.hits++
	return ent.value, ent.insertedAt, true
}

// Set stores a value with its own TTL.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	now := time.Now()
	c.mu.Lock()
	c.items[key] = entry{
		value:      value,
		insertedAt: now,
		expiresAt:  now.Add(ttl),
	}
	c.mu.Unlock()
}

// Delete removes a single entry.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Hits:    c.hits,
		Misses:  c.misses,
		Expired: c.expired,
		Entries: len(c.items),
	}
}

// Close stops the sweep goroutine.
func (c *Cache) Close() {
	c.once.Do(func() { close(c.done) })
}
