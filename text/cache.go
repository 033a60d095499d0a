package text

import (
	"cmp"
	"slices"
	"sync"
)

// advanceCacheSize bounds the advance widths remembered per Face. Legends
// measure a few dozen distinct labels over and over while fitting.
const advanceCacheSize = 256

// lru is a thread-safe map with a soft size limit. Once the limit is
// exceeded the least recently used quarter of the entries is dropped.
type lru[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*lruEntry[V]
	limit   int
	clock   int64
}

type lruEntry[V any] struct {
	value V
	used  int64
}

func newLRU[K comparable, V any](limit int) *lru[K, V] {
	return &lru[K, V]{entries: make(map[K]*lruEntry[V]), limit: limit}
}

// getOrCompute returns the cached value for key, computing and storing it
// on a miss. compute runs without the lock held, so two goroutines may
// both compute a missing value; the results are equal.
func (c *lru[K, V]) getOrCompute(key K, compute func() V) V {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.clock++
		e.used = c.clock
		v := e.value
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v := compute()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock++
	c.entries[key] = &lruEntry[V]{value: v, used: c.clock}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
	return v
}

func (c *lru[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evict trims the map to three quarters of the limit. Caller holds c.mu.
func (c *lru[K, V]) evict() {
	keep := max(c.limit*3/4, 1)
	type aged struct {
		key  K
		used int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.used})
	}
	slices.SortFunc(all, func(a, b aged) int { return cmp.Compare(a.used, b.used) })
	for _, a := range all[:len(all)-keep] {
		delete(c.entries, a.key)
	}
}
