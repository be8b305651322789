package consolehandler

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/lambdalog/core"
	"github.com/philipp01105/lambdalog/handler"
)

// gateWriter blocks every Write until the gate is opened, which keeps
// the consumer goroutine busy so the queue fills deterministically.
type gateWriter struct {
	gate chan struct{}
	mu   sync.Mutex
	buf  bytes.Buffer
}

func newGateWriter() *gateWriter {
	return &gateWriter{gate: make(chan struct{})}
}

func (w *gateWriter) Write(p []byte) (int, error) {
	<-w.gate
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *gateWriter) open() { close(w.gate) }

func overflowHandler(w *gateWriter, level core.Level, policy handler.OverflowPolicy) handler.Handler {
	return NewConsoleHandler(ConsoleConfig{
		Writer:         w,
		Async:          true,
		BufferSize:     2,
		BlockTimeout:   20 * time.Millisecond,
		OverflowPolicy: map[core.Level]handler.OverflowPolicy{level: policy},
	})
}

func TestOverflowPolicy_DropNewest(t *testing.T) {
	w := newGateWriter()
	h := overflowHandler(w, core.InfoLevel, handler.DropNewest)

	for i := 0; i < 10; i++ {
		require.NoError(t, h.Handle(newEntry(core.InfoLevel, "test")))
	}
	w.open()
	require.NoError(t, h.Close())

	stats := h.(handler.StatsProvider).Stats()
	assert.NotZero(t, stats.DroppedTotal[core.InfoLevel])
	assert.Equal(t, uint64(10), stats.DroppedTotal[core.InfoLevel]+stats.ProcessedTotal)
}

func TestOverflowPolicy_DropOldest(t *testing.T) {
	w := newGateWriter()
	h := overflowHandler(w, core.WarnLevel, handler.DropOldest)

	for i := 0; i < 10; i++ {
		require.NoError(t, h.Handle(newEntry(core.WarnLevel, "warn")))
	}
	last := newEntry(core.WarnLevel, "newest")
	require.NoError(t, h.Handle(last))
	w.open()
	require.NoError(t, h.Close())

	stats := h.(handler.StatsProvider).Stats()
	assert.NotZero(t, stats.DroppedTotal[core.WarnLevel])
	assert.Contains(t, w.buf.String(), "newest", "the newest entry survives")
}

func TestOverflowPolicy_Block(t *testing.T) {
	w := newGateWriter()
	h := overflowHandler(w, core.ErrorLevel, handler.Block)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5; i++ {
			_ = h.Handle(newEntry(core.ErrorLevel, "error"))
		}
	}()

	time.Sleep(100 * time.Millisecond)
	w.open()
	<-done
	require.NoError(t, h.Close())

	stats := h.(handler.StatsProvider).Stats()
	assert.NotZero(t, stats.BlockedTotal)
	assert.Zero(t, stats.DroppedTotal[core.ErrorLevel], "blocked entries are written, not dropped")
	assert.Equal(t, uint64(5), stats.ProcessedTotal)
}

func TestStats_Telemetry(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	defer h.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, h.Handle(newEntry(core.InfoLevel, "info")))
	}

	stats := h.(handler.StatsProvider).Stats()
	assert.Equal(t, uint64(5), stats.ProcessedTotal)
}

func TestHandler_CloseIdempotent(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{Writer: &bytes.Buffer{}, Async: true})

	assert.NoError(t, h.Close())
	assert.NoError(t, h.Close())
	assert.NoError(t, h.Close())
}

func TestHandler_DrainOnClose(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:       &buf,
		Async:        true,
		BufferSize:   1000,
		DrainTimeout: 100 * time.Millisecond,
	})

	for i := 0; i < 100; i++ {
		require.NoError(t, h.Handle(newEntry(core.InfoLevel, "test")))
	}

	start := time.Now()
	require.NoError(t, h.Close())
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, uint64(100), h.(handler.StatsProvider).Stats().ProcessedTotal)
}

func TestHandler_HandleRacingClose(t *testing.T) {
	const senders, perSender = 8, 20

	for round := 0; round < 50; round++ {
		var buf bytes.Buffer
		h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Async: true, BufferSize: 1000})

		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := 0; i < senders; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				for j := 0; j < perSender; j++ {
					assert.NoError(t, h.Handle(newEntry(core.InfoLevel, "test")))
				}
			}()
		}
		close(start)
		require.NoError(t, h.Close())
		wg.Wait()

		require.Equal(t, senders*perSender, strings.Count(buf.String(), "\n"), "round %d", round)
	}
}
