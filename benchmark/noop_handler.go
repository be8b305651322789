package benchmark

import (
	"github.com/philipp01105/lambdalog/core"
	"github.com/philipp01105/lambdalog/handler"
)

// noopHandler touches the entry and lets the logger recycle it
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return noopHandler{}
}

func (noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (noopHandler) CanRecycleEntry() bool {
	return true
}

func (noopHandler) Close() error {
	return nil
}
