package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/lambdalog/core"
	"github.com/philipp01105/lambdalog/formatter"
	"github.com/philipp01105/lambdalog/handler"
)

// lockedWriter wraps an io.Writer with the handler's mutex, acquiring it
// only for Write calls. Formatters prepare data in their own pooled
// buffers and call Write once, so the lock covers only the I/O.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// consoleBase contains shared fields and methods for console handlers.
type consoleBase struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool
	stats           *handler.Stats
	mu              sync.Mutex // protects syncBuf and writer
	lw              lockedWriter
	syncBuf         bytes.Buffer
	bufPool         sync.Pool // *bytes.Buffer for contended writes
	closed          chan struct{}
}

func (b *consoleBase) init(cfg ConsoleConfig) {
	b.writer = cfg.Writer
	b.formatter = cfg.Formatter
	b.concurrentSafe = cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer)
	b.stats = handler.NewStats()
	b.closed = make(chan struct{})
	b.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	b.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	b.lw = lockedWriter{mu: &b.mu, w: b.writer}
	if b.bufferFormatter != nil {
		b.syncBuf.Grow(256)
		b.bufPool.New = func() interface{} {
			buf := new(bytes.Buffer)
			buf.Grow(256)
			return buf
		}
	}
}

// write formats and writes an entry. When the handler-owned buffer is
// free it is used directly; under contention the entry is formatted into
// a pooled buffer outside the lock and only the Write is serialized.
func (b *consoleBase) write(entry *core.Entry) error {
	if b.bufferFormatter != nil {
		if b.mu.TryLock() {
			return b.writeLocked(entry)
		}

		buf := b.bufPool.Get().(*bytes.Buffer)
		buf.Reset()
		b.bufferFormatter.FormatEntry(entry, buf)
		var err error
		if b.concurrentSafe {
			_, err = b.writer.Write(buf.Bytes())
		} else {
			_, err = b.lw.Write(buf.Bytes())
		}
		b.bufPool.Put(buf)
		return b.count(err)
	}

	if b.writerFormatter != nil {
		if b.concurrentSafe {
			return b.count(b.writerFormatter.FormatTo(entry, b.writer))
		}
		return b.count(b.writerFormatter.FormatTo(entry, &b.lw))
	}

	data, err := b.formatter.Format(entry)
	if err != nil {
		return err
	}
	if b.concurrentSafe {
		_, err = b.writer.Write(data)
	} else {
		_, err = b.lw.Write(data)
	}
	return b.count(err)
}

// writeLocked formats into the handler-owned buffer; mu must be held and
// is released on return.
func (b *consoleBase) writeLocked(entry *core.Entry) error {
	b.syncBuf.Reset()
	b.bufferFormatter.FormatEntry(entry, &b.syncBuf)
	_, err := b.writer.Write(b.syncBuf.Bytes())
	b.mu.Unlock()
	return b.count(err)
}

// processWrite is used by the single consumer goroutine of the async
// handler, where the lock is uncontended.
func (b *consoleBase) processWrite(entry *core.Entry) error {
	if b.bufferFormatter != nil {
		b.mu.Lock()
		return b.writeLocked(entry)
	}
	return b.write(entry)
}

func (b *consoleBase) count(err error) error {
	if err == nil {
		b.stats.IncrementProcessed()
	}
	return err
}

// Stats returns a snapshot of the current statistics
func (b *consoleBase) Stats() handler.Snapshot {
	return b.stats.GetSnapshot()
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout, which Lambda forwards to CloudWatch)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Async enables asynchronous logging
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: DefaultLevelPolicy)
	OverflowPolicy map[core.Level]handler.OverflowPolicy
	// BlockTimeout is the timeout for blocking overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining queue on Close (default: 5s)
	DrainTimeout time.Duration
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Detected automatically for io.Discard and *os.File.
	ConcurrentWriter bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = handler.DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

// NewConsoleHandler creates a new console handler.
// Returns a SyncConsoleHandler when Async is false, or an AsyncConsoleHandler
// when Async is true. Both implement Handler, Recycler and StatsProvider.
func NewConsoleHandler(cfg ConsoleConfig) handler.Handler {
	applyConsoleDefaults(&cfg)
	if cfg.Async {
		return newAsyncConsoleHandler(cfg)
	}
	return newSyncConsoleHandler(cfg)
}
