package hashing

import "sync"

// perftKey identifies a cached subtree.
type perftKey struct {
	hash  uint64
	depth int
}

// PerftCache stores node counts per (position, depth) behind a mutex so
// parallel perft workers can share it. A nil *PerftCache is valid and
// caches nothing.
type PerftCache struct {
	mu          sync.RWMutex
	entries     map[perftKey]uint64
	maxCapacity int
	hits        int
}

// NewPerftCache creates a cache. maxCapacity of 0 means unlimited capacity.
func NewPerftCache(maxCapacity int) *PerftCache {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &PerftCache{
		entries:     make(map[perftKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached node count for the position hash at depth.
func (c *PerftCache) Get(hash uint64, depth int) (uint64, bool) {
	if c == nil {
		return 0, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	nodes, ok := c.entries[perftKey{hash, depth}]
	if ok {
		c.hits++
	}
	return nodes, ok
}

// Put records a node count. Entries beyond the capacity limit are dropped.
func (c *PerftCache) Put(hash uint64, depth int, nodes uint64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	key := perftKey{hash, depth}
	if _, ok := c.entries[key]; !ok && c.isFull() {
		return
	}
	c.entries[key] = nodes
}

// Len returns the number of cached entries.
func (c *PerftCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Hits returns how many lookups were answered from the cache.
func (c *PerftCache) Hits() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	if c == nil {
		return true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isFull()
}

func (c *PerftCache) isFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}
