// Package cache provides the engine's memoization stores: a bounded in-memory
// pair cache used by the breed and genetic calculators, and an optional
// Redis-backed adapter for sharing genetic reports across processes.
package cache

import (
	"sort"
	"strings"
	"sync"
)

// PairKey builds a symmetric cache key from two identifiers: the pair is
// sorted and joined so that PairKey(a, b) == PairKey(b, a).  This is what
// guarantees calc(A,B) == calc(B,A) for every memoized calculator.
func PairKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "|")
}

// Bounded is a mutex-guarded map with a hard size ceiling.  When an insert
// would grow the map past the ceiling, the whole map is cleared first.  This
// mirrors the observed production behavior (simple capacity bound, not LRU);
// hit patterns right after a clear are deliberately cold.
type Bounded[V any] struct {
	mu      sync.Mutex
	entries map[string]V
	limit   int
	clears  uint64
}

// NewBounded constructs a Bounded cache with the given ceiling.
// A non-positive limit falls back to 1 so the cache never grows unbounded.
func NewBounded[V any](limit int) *Bounded[V] {
	if limit < 1 {
		limit = 1
	}
	return &Bounded[V]{
		entries: make(map[string]V),
		limit:   limit,
	}
}

// Get returns the cached value for key, if present.
func (c *Bounded[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put inserts value under key.  Returns true when the insert triggered a
// wholesale clear because the cache had reached its ceiling.
func (c *Bounded[V]) Put(key string, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	cleared := false
	if len(c.entries) >= c.limit {
		c.entries = make(map[string]V)
		c.clears++
		cleared = true
	}
	c.entries[key] = value
	return cleared
}

// Len returns the current entry count.
func (c *Bounded[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clears returns how many wholesale clears the ceiling has triggered.
func (c *Bounded[V]) Clears() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clears
}

// Clear empties the cache.
func (c *Bounded[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]V)
}

//Personal.AI order the ending
