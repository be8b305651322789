package formatter

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/philipp01105/lambdalog/core"
)

// JSON keys written by JSONFormatter
const (
	KeyRequestID         = "aws-request-id"
	KeyTimestamp         = "timestamp"
	KeyRelativeTimestamp = "relative-timestamp"
	KeyThreadName        = "thread-name"
	KeyThreadID          = "thread-id"
	KeyLevel             = "level"
	KeyLogName           = "logname"
	KeyMessage           = "message"
	KeyMarker            = "marker"
	KeyStackTrace        = "stack-trace"
)

// JSONFormatter formats log entries as one JSON object per line
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	return &JSONFormatter{Config: cfg}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
	return format(entry, f.FormatEntry), nil
}

// FormatTo formats an entry as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	return formatTo(entry, w, f.FormatEntry)
}

// FormatEntry builds JSON manually into the buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	p := entry.Presentation
	if p == nil {
		p = &core.Presentation{}
	}

	buf.WriteByte('{')
	first := true
	key := func(k string) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteByte('"')
		appendJSONString(buf, k)
		buf.WriteString(`":`)
	}

	if entry.RequestID != "" {
		key(KeyRequestID)
		writeJSONString(buf, entry.RequestID)
	}

	if p.ShowDateTime {
		if p.DateTimeFormat != nil {
			key(KeyTimestamp)
			var ts [64]byte
			writeJSONString(buf, string(p.DateTimeFormat.AppendFormat(ts[:0], entry.Time)))
		} else {
			key(KeyRelativeTimestamp)
			buf.Write(strconv.AppendInt(buf.AvailableBuffer(), p.RelativeMillis(entry.Time), 10))
		}
	}

	if p.ShowThreadName {
		key(KeyThreadName)
		writeJSONString(buf, core.GoroutineName(entry.GoroutineID))
	}
	if p.ShowThreadID {
		key(KeyThreadID)
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), entry.GoroutineID, 10))
	}

	key(KeyLevel)
	writeJSONString(buf, entry.Level.String())

	if p.LogName != "" {
		key(KeyLogName)
		writeJSONString(buf, p.LogName)
	}

	key(KeyMessage)
	writeJSONString(buf, entry.Message)

	if entry.Marker != nil {
		key(KeyMarker)
		writeJSONString(buf, entry.Marker.Name())
	}

	if entry.Err != nil {
		key(KeyStackTrace)
		if f.OmitErrorDetail {
			writeJSONString(buf, entry.Err.Error())
		} else {
			writeJSONString(buf, fmt.Sprintf("%+v", entry.Err))
		}
	}

	if !f.OmitFields {
		for _, field := range entry.Fields {
			key(field.Key)
			appendJSONFieldValue(buf, field)
		}
	}

	buf.WriteString("}\n")
}

func writeJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	appendJSONString(buf, s)
	buf.WriteByte('"')
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// appendJSONFieldValue writes a JSON-encoded field value to the buffer
func appendJSONFieldValue(buf *bytes.Buffer, field core.Field) {
	switch field.Type {
	case core.Int64Type, core.DurationType:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), field.Int64, 10))
	case core.Float64Type:
		switch f := field.Float64; {
		case math.IsNaN(f):
			buf.WriteString(`"NaN"`)
		case math.IsInf(f, 1):
			buf.WriteString(`"+Inf"`)
		case math.IsInf(f, -1):
			buf.WriteString(`"-Inf"`)
		default:
			buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), f, 'f', -1, 64))
		}
	case core.BoolType:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), field.Int64 == 1))
	case core.TimeType:
		buf.WriteByte('"')
		buf.Write(time.Unix(0, field.Int64).AppendFormat(buf.AvailableBuffer(), time.RFC3339Nano))
		buf.WriteByte('"')
	default:
		writeJSONString(buf, field.StringValue())
	}
}
