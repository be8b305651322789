package consolehandler

import (
	"sync"
	"time"

	"github.com/philipp01105/lambdalog/core"
	"github.com/philipp01105/lambdalog/handler"
)

// AsyncConsoleHandler queues entries for a background goroutine and
// applies a per-level OverflowPolicy when the queue is full.
type AsyncConsoleHandler struct {
	consoleBase
	queue          chan *core.Entry
	wg             sync.WaitGroup
	closeOnce      sync.Once
	overflowPolicy map[core.Level]handler.OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	timerMu        sync.Mutex
	blockTimer     *time.Timer
}

func newAsyncConsoleHandler(cfg ConsoleConfig) *AsyncConsoleHandler {
	h := &AsyncConsoleHandler{
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		blockTimer:     handler.NewStoppedTimer(),
	}
	h.init(cfg)

	h.queue = make(chan *core.Entry, cfg.BufferSize)
	h.wg.Add(1)
	go h.process()

	return h
}

// Handle sends a log entry to the async queue with overflow policy handling.
// The handler owns the entry afterwards and returns it to the pool.
func (h *AsyncConsoleHandler) Handle(entry *core.Entry) error {
	select {
	case <-h.closed:
		// Handler is closing, write synchronously
		return h.writeAndRecycle(entry)
	default:
	}

	policy, ok := h.overflowPolicy[entry.Level]
	if !ok {
		policy = handler.DropNewest
	}

	switch policy {
	case handler.Block:
		select {
		case h.queue <- entry:
			return h.enqueued()
		default:
		}
		return h.blockingSend(entry)

	case handler.DropOldest:
		select {
		case h.queue <- entry:
			return h.enqueued()
		default:
		}
		select {
		case oldest := <-h.queue:
			h.stats.IncrementDropped(oldest.Level)
			core.PutEntry(oldest)
		default:
		}
		select {
		case h.queue <- entry:
			return h.enqueued()
		default:
			h.stats.IncrementDropped(entry.Level)
			core.PutEntry(entry)
		}
		return nil

	default:
		select {
		case h.queue <- entry:
			return h.enqueued()
		default:
			h.stats.IncrementDropped(entry.Level)
			core.PutEntry(entry)
		}
		return nil
	}
}

// enqueued runs after a successful send. A Close that started after the
// closed check in Handle may already have drained the queue, so the
// sender drains it again.
func (h *AsyncConsoleHandler) enqueued() error {
	select {
	case <-h.closed:
		h.drain(nil)
	default:
	}
	return nil
}

// blockingSend waits up to blockTimeout for queue space and falls back
// to a synchronous write on timeout or close.
func (h *AsyncConsoleHandler) blockingSend(entry *core.Entry) error {
	// one shared timer; concurrent blockers serialize here
	h.timerMu.Lock()
	defer h.timerMu.Unlock()

	h.blockTimer.Reset(h.blockTimeout)
	select {
	case h.queue <- entry:
		handler.StopTimer(h.blockTimer)
		return h.enqueued()
	case <-h.blockTimer.C:
		h.stats.IncrementBlocked()
		return h.writeAndRecycle(entry)
	case <-h.closed:
		handler.StopTimer(h.blockTimer)
		return h.writeAndRecycle(entry)
	}
}

func (h *AsyncConsoleHandler) writeAndRecycle(entry *core.Entry) error {
	err := h.write(entry)
	core.PutEntry(entry)
	return err
}

// CanRecycleEntry returns false because entries are processed after
// Handle returns.
func (h *AsyncConsoleHandler) CanRecycleEntry() bool {
	return false
}

// process handles async log processing
func (h *AsyncConsoleHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case entry := <-h.queue:
			h.consume(entry)
		batchDrain:
			for {
				select {
				case entry := <-h.queue:
					h.consume(entry)
				default:
					break batchDrain
				}
			}
		case <-h.closed:
			h.drain(time.After(h.drainTimeout))
			return
		}
	}
}

// drain consumes what is queued without waiting for more. A nil
// deadline never fires.
func (h *AsyncConsoleHandler) drain(deadline <-chan time.Time) {
	for {
		select {
		case entry := <-h.queue:
			h.consume(entry)
		case <-deadline:
			return
		default:
			return
		}
	}
}

func (h *AsyncConsoleHandler) consume(entry *core.Entry) {
	// write errors have no caller to report to
	_ = h.processWrite(entry)
	core.PutEntry(entry)
}

// Close closes the handler, draining the queue with a timeout.
func (h *AsyncConsoleHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.closed)
		h.wg.Wait()
		h.drain(nil)
	})
	return nil
}
