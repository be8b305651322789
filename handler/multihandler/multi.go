package multihandler

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/lambdalog/core"
	"github.com/philipp01105/lambdalog/handler"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers     []handler.Handler
	recycleEntry bool // every child processes entries synchronously
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	m := &MultiHandler{
		handlers:     handlers,
		recycleEntry: true,
	}
	for _, h := range handlers {
		if !handler.CanRecycle(h) {
			m.recycleEntry = false
		}
	}
	return m
}

// Handle sends the entry to every child. An asynchronous child would
// otherwise recycle the entry under the feet of its siblings, so such
// children receive their own copy.
func (m *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, h := range m.handlers {
		e := entry
		if !handler.CanRecycle(h) {
			e = clone(entry)
		}
		if herr := h.Handle(e); herr != nil {
			err = multierr.Append(err, errors.Wrapf(herr, "handler %T", h))
		}
	}
	if !m.recycleEntry {
		// children got copies; the caller's entry is ours to recycle
		core.PutEntry(entry)
	}
	return err
}

// CanRecycleEntry returns true if the caller can recycle the entry after
// Handle returns, which is the case when every child is synchronous.
func (m *MultiHandler) CanRecycleEntry() bool {
	return m.recycleEntry
}

// Close closes all handlers
func (m *MultiHandler) Close() error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}

func clone(src *core.Entry) *core.Entry {
	e := core.GetEntry()
	fields := e.Fields
	*e = *src
	e.Fields = append(fields[:0], src.Fields...)
	return e
}
