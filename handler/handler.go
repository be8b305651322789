package handler

import (
	"github.com/philipp01105/lambdalog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Recycler is implemented by handlers that know whether an entry may be
// returned to the pool as soon as Handle returns.
type Recycler interface {
	CanRecycleEntry() bool
}

// StatsProvider is implemented by handlers that keep overflow statistics
type StatsProvider interface {
	Stats() Snapshot
}

// CanRecycle reports whether the caller may recycle an entry after
// h.Handle returns. Handlers that do not implement Recycler are assumed
// to retain the entry.
func CanRecycle(h Handler) bool {
	rc, ok := h.(Recycler)
	return ok && rc.CanRecycleEntry()
}
