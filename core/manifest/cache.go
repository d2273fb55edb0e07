package manifest

import (
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheEntry is a parsed manifest and the time it was loaded.
type cacheEntry struct {
	manifest *Manifest
	loaded   time.Time
}

// Cache holds parsed manifests keyed by path so that repeated dev-server requests
// do not re-read the file. Entries expire after TTL or when invalidated.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	sf      singleflight.Group

	// TTL is the time-to-live for an entry. Zero disables caching.
	TTL time.Duration

	load func(path string) (*Manifest, error)
}

// NewCache creates a cache that loads manifests from disk.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
		TTL:     ttl,
		load:    Load,
	}
}

func (c *Cache) expired(e *cacheEntry) bool {
	if c.TTL == 0 {
		return true
	}
	return time.Since(e.loaded) > c.TTL
}

// Get returns the cached manifest for path, loading it if missing or expired.
// Concurrent misses for the same path share one load.
func (c *Cache) Get(path string) (*Manifest, error) {
	path = filepath.Clean(path)

	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()

	if ok && !c.expired(entry) {
		return entry.manifest, nil
	}

	result, err, _ := c.sf.Do(path, func() (interface{}, error) {
		// Double-check after winning the flight
		c.mu.RLock()
		entry, ok := c.entries[path]
		c.mu.RUnlock()
		if ok && !c.expired(entry) {
			return entry.manifest, nil
		}

		m, err := c.load(path)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[path] = &cacheEntry{manifest: m, loaded: time.Now()}
		c.mu.Unlock()

		return m, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Manifest), nil
}

// Invalidate drops the entry for path.
func (c *Cache) Invalidate(path string) {
	path = filepath.Clean(path)

	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}
