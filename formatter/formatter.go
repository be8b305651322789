package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/lambdalog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration. The per-logger
// presentation (timestamps, names, thread info) travels with each entry.
type Config struct {
	// OmitFields drops structured fields from the output
	OmitFields bool
	// OmitErrorDetail prints only err.Error() instead of the "%+v" form,
	// which includes stack traces for errors that carry them.
	OmitErrorDetail bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// format runs fn into a pooled buffer and returns a copy of the bytes
func format(entry *core.Entry, fn func(*core.Entry, *bytes.Buffer)) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	fn(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// formatTo runs fn into a pooled buffer and writes it with one Write call
func formatTo(entry *core.Entry, w io.Writer, fn func(*core.Entry, *bytes.Buffer)) error {
	buf := getBuffer()
	fn(entry, buf)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}
