package consolehandler

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/lambdalog/core"
	"github.com/philipp01105/lambdalog/formatter"
	"github.com/philipp01105/lambdalog/handler"
)

func newEntry(level core.Level, msg string) *core.Entry {
	entry := core.GetEntry()
	entry.Level = level
	entry.Message = msg
	return entry
}

func TestConsoleHandler_Sync(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defer h.Close()

	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "test message")))
	assert.Equal(t, "INFO test message\n", buf.String())
	assert.True(t, handler.CanRecycle(h))
}

func TestConsoleHandler_Presentation(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	defer h.Close()

	entry := newEntry(core.WarnLevel, "disk almost full")
	entry.Presentation = &core.Presentation{LevelInBrackets: true, LogName: "Monitor"}
	entry.RequestID = "req-1"
	require.NoError(t, h.Handle(entry))

	assert.Equal(t, "req-1 [WARN] Monitor - disk almost full\n", buf.String())
}

func TestConsoleHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})
	defer h.Close()

	require.NoError(t, h.Handle(newEntry(core.ErrorLevel, "failed")))
	assert.Equal(t, `{"level":"ERROR","message":"failed"}`+"\n", buf.String())
}

func TestConsoleHandler_Async(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:     &buf,
		Async:      true,
		BufferSize: 100,
	})
	assert.False(t, handler.CanRecycle(h))

	for i := 0; i < 50; i++ {
		require.NoError(t, h.Handle(newEntry(core.InfoLevel, "async test")))
	}
	require.NoError(t, h.Close())

	assert.Equal(t, 50, strings.Count(buf.String(), "async test"))
}

func TestConsoleHandler_HandleAfterClose(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Async: true})
	require.NoError(t, h.Close())

	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "late")))
	assert.Equal(t, "INFO late\n", buf.String())
}

func TestIsConcurrentSafeWriter(t *testing.T) {
	tests := []struct {
		name     string
		writer   io.Writer
		expected bool
	}{
		{"io.Discard", io.Discard, true},
		{"os.Stdout", os.Stdout, true},
		{"os.Stderr", os.Stderr, true},
		{"bytes.Buffer", &bytes.Buffer{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isConcurrentSafeWriter(tt.writer))
		})
	}
}

func TestConcurrentSafeConfig(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{Writer: io.Discard})
	assert.True(t, h.(*SyncConsoleHandler).concurrentSafe, "auto-detected for io.Discard")
	h.Close()

	h = NewConsoleHandler(ConsoleConfig{Writer: &bytes.Buffer{}})
	assert.False(t, h.(*SyncConsoleHandler).concurrentSafe, "not detected for bytes.Buffer")
	h.Close()

	h = NewConsoleHandler(ConsoleConfig{Writer: &bytes.Buffer{}, ConcurrentWriter: true})
	assert.True(t, h.(*SyncConsoleHandler).concurrentSafe, "explicit opt-in")
	h.Close()
}

func TestConsoleHandler_Parallel(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	defer h.Close()

	const goroutines = 8
	const msgs = 100
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < msgs; i++ {
				entry := newEntry(core.InfoLevel, "parallel")
				_ = h.Handle(entry)
				core.PutEntry(entry)
			}
		}()
	}
	wg.Wait()

	snap := h.(handler.StatsProvider).Stats()
	assert.Equal(t, uint64(goroutines*msgs), snap.ProcessedTotal)
	assert.Equal(t, goroutines*msgs, strings.Count(buf.String(), "INFO parallel\n"))
}

func BenchmarkConsoleHandler_Sync(b *testing.B) {
	h := NewConsoleHandler(ConsoleConfig{Writer: io.Discard})
	defer h.Close()

	entry := newEntry(core.InfoLevel, "benchmark message")
	entry.Fields = append(entry.Fields,
		core.Field{Key: "key1", Type: core.StringType, Str: "value1"},
		core.Field{Key: "key2", Type: core.Int64Type, Int64: 42},
	)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Handle(entry)
	}
}
