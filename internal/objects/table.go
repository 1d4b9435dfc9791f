// Package objects tracks the remote objects known to one connection.
package objects

import (
	"sync"

	"github.com/halfmoor/wlprobe/internal/protocol"
)

// Tag identifies the interface a remote object implements. The zero
// value is Unknown so lookups of unregistered ids degrade cleanly.
type Tag uint8

const (
	Unknown Tag = iota
	Display
	Registry
	Callback
)

// String returns the wire interface name for the tag.
func (t Tag) String() string {
	switch t {
	case Display:
		return "wl_display"
	case Registry:
		return "wl_registry"
	case Callback:
		return "wl_callback"
	default:
		return "unknown"
	}
}

// Table maps live object ids to interface tags and hands out new
// client-side ids. Ids grow monotonically and are never reused within a
// session. Id 1 is the display, seeded at construction.
type Table struct {
	mu     sync.RWMutex
	tags   map[uint32]Tag
	nextID uint32
}

func NewTable() *Table {
	return &Table{
		tags:   map[uint32]Tag{protocol.DisplayObjectID: Display},
		nextID: protocol.DisplayObjectID + 1,
	}
}

// Allocate returns the next unused object id. It never fails and never
// returns an id handed out before.
func (t *Table) Allocate() uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	return id
}

// Register associates id with tag, overwriting any prior association.
func (t *Table) Register(id uint32, tag Tag) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tags[id] = tag
}

// Lookup returns the tag registered for id, or Unknown when the id has
// never been registered. Unknown ids are reported by callers, not
// treated as failures.
func (t *Table) Lookup(id uint32) Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tags[id]
}

// Len returns the number of registered objects.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.tags)
}
