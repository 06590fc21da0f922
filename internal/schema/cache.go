package schema

import (
	"context"
	"sync"

	"enerdocs.dev/idfls/internal/log"
)

// Cache memoizes the schema document for a session. At most one fetch is in
// flight at a time: concurrent callers attach to the pending load instead of
// duplicating it. A failed fetch leaves the cache empty and is terminal
// until Reset, so documentation features degrade silently instead of
// hammering the source.
type Cache struct {
	mu      sync.Mutex
	fetcher Fetcher
	schema  *Schema
	failed  bool
	pending chan struct{}
	gen     int
}

// NewCache creates a cache that loads through the given fetcher.
func NewCache(fetcher Fetcher) *Cache {
	return &Cache{fetcher: fetcher}
}

// Snapshot returns the loaded schema, or nil when no load has succeeded yet.
// It never blocks.
func (c *Cache) Snapshot() *Schema {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.schema
}

// EnsureLoaded returns the schema, starting a fetch if none has run and none
// is in flight. Callers arriving while a fetch is pending share it. The
// context bounds only this caller's wait, never the fetch itself: an
// abandoned caller gets nil and the cache stays consistent for the next one.
func (c *Cache) EnsureLoaded(ctx context.Context) *Schema {
	c.mu.Lock()
	if c.schema != nil || c.failed {
		s := c.schema
		c.mu.Unlock()
		return s
	}
	if c.pending == nil {
		done := make(chan struct{})
		c.pending = done
		go c.load(c.gen, done)
	}
	pending := c.pending
	c.mu.Unlock()

	select {
	case <-pending:
	case <-ctx.Done():
		return nil
	}
	return c.Snapshot()
}

// Reset discards the snapshot and detaches any in-flight fetch, whose late
// result will be ignored. Used when switching between independently
// versioned schema sources.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.schema = nil
	c.failed = false
	c.pending = nil
}

// SetFetcher replaces the schema source and resets the cache.
func (c *Cache) SetFetcher(fetcher Fetcher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.schema = nil
	c.failed = false
	c.pending = nil
	c.fetcher = fetcher
}

func (c *Cache) load(gen int, done chan struct{}) {
	defer close(done)

	c.mu.Lock()
	fetcher := c.fetcher
	c.mu.Unlock()

	var s *Schema
	var err error
	if fetcher == nil {
		s = nil
	} else if content, fetchErr := fetcher.Fetch(context.Background()); fetchErr != nil {
		err = fetchErr
	} else {
		s, err = Parse(content)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		// Reset while we were loading; this result belongs to a
		// discarded source.
		return
	}
	c.pending = nil
	if err != nil || s == nil {
		c.failed = true
		log.Warn("schema load failed: %v", err)
		return
	}
	c.schema = s
	log.Info("schema loaded: version %s, %d object types", s.Version, len(s.ObjectTypes))
}
