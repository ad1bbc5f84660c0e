// Package cache provides a thread-safe generic LRU cache with optional
// expiry, used to memoise parsed citations.
package cache

import (
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
)

// Cache is a generic LRU cache interface.
type Cache[K comparable, V any] interface {
	// Get retrieves a value from the cache.
	Get(key K) (V, bool)

	// Put stores a value in the cache.
	Put(key K, value V)

	// Remove removes a value from the cache.
	Remove(key K)

	// Clear removes all entries from the cache.
	Clear()

	// Len returns the number of entries in the cache.
	Len() int

	// Stats returns cache statistics.
	Stats() Stats
}

// Stats contains cache statistics.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	MaxSize   int
}

// HitRatio returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Config contains cache configuration options.
type Config struct {
	// MaxSize is the maximum number of entries (0 = unlimited).
	MaxSize int

	// TTL is the time-to-live for entries (0 = no expiration).
	TTL time.Duration

	// OnEvict is called when an entry leaves the cache, whether by
	// eviction, expiry, Remove or Clear.
	OnEvict func(key, value any)
}

// DefaultConfig returns a default cache configuration.
func DefaultConfig() Config {
	return Config{MaxSize: 256}
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// lruCache guards a groupcache LRU, which is not safe for concurrent use.
type lruCache[K comparable, V any] struct {
	mu     sync.Mutex
	config Config
	now    func() time.Time
	lru    *lru.Cache
	stats  Stats
}

// NewLRUCache creates a new LRU cache with the given configuration.
func NewLRUCache[K comparable, V any](config Config) Cache[K, V] {
	if config.MaxSize < 0 {
		config.MaxSize = 0
	}

	c := &lruCache[K, V]{
		config: config,
		now:    time.Now,
		lru:    lru.New(config.MaxSize),
	}
	if config.OnEvict != nil {
		c.lru.OnEvicted = func(key lru.Key, value any) {
			config.OnEvict(key, value.(*entry[V]).value)
		}
	}
	return c
}

// Get retrieves a value from the cache.
func (c *lruCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	v, ok := c.lru.Get(key)
	if !ok {
		c.stats.Misses++
		return zero, false
	}

	e := v.(*entry[V])
	if c.expired(e) {
		c.lru.Remove(key)
		c.stats.Misses++
		return zero, false
	}

	c.stats.Hits++
	return e.value, true
}

// Put stores a value in the cache, evicting the least recently used entry
// when the cache is full.
func (c *lruCache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := &entry[V]{value: value}
	if c.config.TTL > 0 {
		e.expiresAt = c.now().Add(c.config.TTL)
	}

	if _, exists := c.lru.Get(key); !exists && c.config.MaxSize > 0 && c.lru.Len() >= c.config.MaxSize {
		c.stats.Evictions++
	}
	c.lru.Add(key, e)
}

// Remove removes a value from the cache.
func (c *lruCache[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(key)
}

// Clear removes all entries from the cache.
func (c *lruCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Clear()
}

// Len returns the number of entries in the cache, including expired entries
// not yet reclaimed.
func (c *lruCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns cache statistics.
func (c *lruCache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.Size = c.lru.Len()
	s.MaxSize = c.config.MaxSize
	return s
}

func (c *lruCache[K, V]) expired(e *entry[V]) bool {
	return c.config.TTL > 0 && c.now().After(e.expiresAt)
}
