// Package cache provides the read-through query cache for week records.
package cache

import (
	"fmt"
	"sync"

	"weeklog/weekrecord"
)

// Lister is the slice of the record store the cache depends on.
type Lister interface {
	ListWeekRecords() ([]weekrecord.Record, error)
}

// Cache serves the full ordered record list, re-querying the store only on
// first use or after an explicit invalidation.
type Cache struct {
	lister Lister

	mu      sync.Mutex
	records []weekrecord.Record
	loaded  bool
}

func New(lister Lister) *Cache {
	return &Cache{lister: lister}
}

// FetchAll returns the ordered record list, served from the cached value
// when one is loaded. Callers receive a copy and may not mutate shared state.
func (c *Cache) FetchAll() ([]weekrecord.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		records, err := c.lister.ListWeekRecords()
		if err != nil {
			return nil, fmt.Errorf("list week records: %w", err)
		}
		c.records = records
		c.loaded = true
	}

	return append([]weekrecord.Record(nil), c.records...), nil
}

// InvalidateAndRefetch discards the cached value and re-queries the store.
// When the query fails the prior cached value is kept and the error is
// returned; there is no automatic retry.
func (c *Cache) InvalidateAndRefetch() ([]weekrecord.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.lister.ListWeekRecords()
	if err != nil {
		return nil, fmt.Errorf("list week records: %w", err)
	}
	c.records = records
	c.loaded = true

	return append([]weekrecord.Record(nil), c.records...), nil
}

// Cached returns the last known-good value without touching the store.
// The second result reports whether a value has been loaded at all.
func (c *Cache) Cached() ([]weekrecord.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]weekrecord.Record(nil), c.records...), c.loaded
}
