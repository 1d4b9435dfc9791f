// Package catalog accumulates the globals advertised by the registry.
package catalog

import (
	"sort"
	"sync"
)

// Entry is one advertised global: the numeric registry name plus the
// interface string and version the server announced for it.
type Entry struct {
	Name      uint32
	Interface string
	Version   uint32
}

// Catalog records globals keyed by registry name. Re-announcements of a
// name overwrite the prior entry; the latest announcement wins.
type Catalog struct {
	mu      sync.RWMutex
	entries map[uint32]Entry
}

func New() *Catalog {
	return &Catalog{entries: make(map[uint32]Entry)}
}

// Upsert stores e under its registry name, replacing any prior entry.
func (c *Catalog) Upsert(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[e.Name] = e
}

// Get returns the entry for name and whether it is present.
func (c *Catalog) Get(name uint32) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[name]
	return e, ok
}

// Len returns the number of distinct registry names recorded.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// List returns all entries ordered by registry name.
func (c *Catalog) List() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
