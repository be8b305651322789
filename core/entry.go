package core

import (
	"sync"
	"time"
)

// Entry is a single log event on its way to a handler. It carries the
// presentation policy of the logger that produced it so that formatters
// need no back-reference to the logger.
type Entry struct {
	Time         time.Time
	Level        Level
	Marker       *Marker
	Message      string
	Err          error
	Fields       []Field
	RequestID    string
	GoroutineID  uint64
	Presentation *Presentation
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetEntry retrieves a reset Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Time{}
	e.Fields = e.Fields[:0]
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Fields = e.Fields[:0]
	e.Marker = nil
	e.Message = ""
	e.Err = nil
	e.RequestID = ""
	e.GoroutineID = 0
	e.Presentation = nil
	entryPool.Put(e)
}
