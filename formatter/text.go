package formatter

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/philipp01105/lambdalog/core"
)

// TextFormatter renders the CloudWatch-style text line:
//
//	[request-id ][timestamp ][[thread] ][thread=id ]LEVEL [name - ]message[ key=value...]
//
// followed by the error detail on the next line when the entry has one.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	return format(entry, f.FormatEntry), nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	return formatTo(entry, w, f.FormatEntry)
}

// pre-formatted level strings to avoid multiple WriteString calls
var (
	levelPlain = [...]string{
		core.TraceLevel: "TRACE ",
		core.DebugLevel: "DEBUG ",
		core.InfoLevel:  "INFO ",
		core.WarnLevel:  "WARN ",
		core.ErrorLevel: "ERROR ",
	}
	levelBrackets = [...]string{
		core.TraceLevel: "[TRACE] ",
		core.DebugLevel: "[DEBUG] ",
		core.InfoLevel:  "[INFO] ",
		core.WarnLevel:  "[WARN] ",
		core.ErrorLevel: "[ERROR] ",
	}
)

const logNameSeparator = " - "

// FormatEntry writes the formatted entry into buf (implements BufferFormatter)
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	p := entry.Presentation
	if p == nil {
		p = &core.Presentation{}
	}

	if entry.RequestID != "" {
		buf.WriteString(entry.RequestID)
		buf.WriteByte(' ')
	}

	if p.ShowDateTime {
		buf.Write(p.AppendTimestamp(buf.AvailableBuffer(), entry.Time))
		buf.WriteByte(' ')
	}

	if p.ShowThreadName {
		buf.WriteByte('[')
		buf.WriteString(core.GoroutineName(entry.GoroutineID))
		buf.WriteString("] ")
	}
	if p.ShowThreadID {
		buf.WriteString("thread=")
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), entry.GoroutineID, 10))
		buf.WriteByte(' ')
	}

	switch {
	case !entry.Level.Valid():
		buf.WriteString("UNKNOWN ")
	case p.LevelInBrackets:
		buf.WriteString(levelBrackets[entry.Level])
	default:
		buf.WriteString(levelPlain[entry.Level])
	}

	if p.LogName != "" {
		buf.WriteString(p.LogName)
		buf.WriteString(logNameSeparator)
	}

	buf.WriteString(entry.Message)

	if !f.OmitFields {
		for _, field := range entry.Fields {
			buf.WriteByte(' ')
			buf.WriteString(field.Key)
			buf.WriteByte('=')
			buf.Write(field.AppendValue(buf.AvailableBuffer()))
		}
	}

	if entry.Err != nil {
		buf.WriteByte('\n')
		if f.OmitErrorDetail {
			buf.WriteString(entry.Err.Error())
		} else {
			fmt.Fprintf(buf, "%+v", entry.Err)
		}
	}

	buf.WriteByte('\n')
}
