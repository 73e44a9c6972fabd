package plan

import (
	"sync"

	"strictjson-generator/internal/schema"
)

// Cache memoizes plans by schema fingerprint. It is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64][]cacheEntry
}

type cacheEntry struct {
	canonical string
	plan      *ParsePlan
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64][]cacheEntry)}
}

// Get returns the plan cached for s.
func (c *Cache) Get(s schema.Schema) (*ParsePlan, bool) {
	canonical := s.String()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Entries sharing a fingerprint are told apart by their canonical text.
	for _, e := range c.entries[s.Fingerprint()] {
		if e.canonical == canonical {
			return e.plan, true
		}
	}

	return nil, false
}

// Put caches p as the plan of s.
func (c *Cache) Put(s schema.Schema, p *ParsePlan) {
	canonical := s.String()
	key := s.Fingerprint()

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries[key] {
		if e.canonical == canonical {
			return
		}
	}

	c.entries[key] = append(c.entries[key], cacheEntry{canonical: canonical, plan: p})
}

// Len returns the number of cached plans.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, es := range c.entries {
		n += len(es)
	}

	return n
}
