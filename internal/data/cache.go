package data

import (
	"context"
	"sync"
	"time"

	"carbon-credits/internal/dataset"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultDatasetTTL is how long a generated dataset stays retrievable.
const DefaultDatasetTTL = 1 * time.Hour

// CacheEntry is a generated dataset held for later retrieval.
type CacheEntry struct {
	ID        string
	Result    *dataset.Result
	CreatedAt time.Time
	ExpiresAt time.Time
}

// DatasetCache keeps generated datasets in memory so the API can serve
// records, summaries and exports for a dataset id without regenerating.
//
// Entries are not persisted; a restart drops them.
type DatasetCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewDatasetCache returns an empty cache. A non-positive ttl uses DefaultDatasetTTL.
func NewDatasetCache(ttl time.Duration) *DatasetCache {
	if ttl <= 0 {
		ttl = DefaultDatasetTTL
	}
	return &DatasetCache{
		store: make(map[string]*CacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put stores res under a fresh id and returns the entry.
func (c *DatasetCache) Put(res *dataset.Result) *CacheEntry {
	now := c.now()
	entry := &CacheEntry{
		ID:        uuid.NewString(),
		Result:    res,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[entry.ID] = entry
	return entry
}

// Get retrieves an entry if present and not expired.
func (c *DatasetCache) Get(id string) (*CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[id]
	if !exists {
		return nil, false
	}
	if c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry, true
}

// Len counts stored entries, expired ones included until the next sweep.
func (c *DatasetCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries.
func (c *DatasetCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*CacheEntry)
}

// Sweep deletes expired entries and returns how many were removed.
func (c *DatasetCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for id, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, id)
			removed++
		}
	}
	return removed
}

// RunCleanup sweeps every interval until ctx is done.
func (c *DatasetCache) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.Sweep(); n > 0 {
				log.Debug().Int("removed", n).Int("remaining", c.Len()).Msg("dataset cache sweep")
			}
		}
	}
}
