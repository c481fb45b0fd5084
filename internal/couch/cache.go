package couch

import "sync"

// NamesCache holds the list of databases a client can see. The client never
// invalidates it on its own; staleness is entirely the owner's business,
// which keeps refresh behavior testable and explicit.
type NamesCache interface {
	// Get returns the cached names and whether a value has been stored.
	Get() ([]string, bool)
	Set(names []string)
	Invalidate()
}

// MemoryNamesCache is the default NamesCache: process lifetime, no expiry.
type MemoryNamesCache struct {
	mu    sync.Mutex
	names []string
	valid bool
}

func NewMemoryNamesCache() *MemoryNamesCache {
	return &MemoryNamesCache{}
}

func (c *MemoryNamesCache) Get() ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return nil, false
	}
	return c.names, true
}

func (c *MemoryNamesCache) Set(names []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = names
	c.valid = true
}

func (c *MemoryNamesCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = nil
	c.valid = false
}
