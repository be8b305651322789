package core

import (
	"strconv"
	"time"
)

// TimeFormat renders a timestamp into a byte slice
type TimeFormat interface {
	AppendFormat(dst []byte, t time.Time) []byte
}

// Layout is a TimeFormat using a Go reference layout
type Layout string

// AppendFormat implements TimeFormat
func (l Layout) AppendFormat(dst []byte, t time.Time) []byte {
	return t.AppendFormat(dst, string(l))
}

// Presentation is the per-logger output policy resolved from
// configuration. It is immutable once attached to a logger.
type Presentation struct {
	// LogName is the name printed with each line; empty hides it.
	LogName string
	// LevelInBrackets prints "[INFO]" instead of "INFO".
	LevelInBrackets bool
	// ShowDateTime enables the timestamp column.
	ShowDateTime bool
	// DateTimeFormat renders absolute timestamps. Nil means the
	// timestamp is printed as milliseconds elapsed since StartTime.
	DateTimeFormat TimeFormat
	// ShowThreadID prints "thread=<goroutine id>".
	ShowThreadID bool
	// ShowThreadName prints "[<goroutine name>]".
	ShowThreadName bool
	// RequestIDKey is the MDC key whose value prefixes every line.
	RequestIDKey string
	// StartTime is the reference point for relative timestamps.
	StartTime time.Time
}

// AppendTimestamp appends the timestamp of t according to the policy.
// It appends nothing when ShowDateTime is off.
func (p *Presentation) AppendTimestamp(dst []byte, t time.Time) []byte {
	if p == nil || !p.ShowDateTime {
		return dst
	}
	if p.DateTimeFormat != nil {
		return p.DateTimeFormat.AppendFormat(dst, t)
	}
	return strconv.AppendInt(dst, p.RelativeMillis(t), 10)
}

// RelativeMillis returns the milliseconds elapsed between StartTime and t
func (p *Presentation) RelativeMillis(t time.Time) int64 {
	return t.Sub(p.StartTime).Milliseconds()
}
