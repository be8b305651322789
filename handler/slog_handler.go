package handler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/lambdalog/core"
)

// Enabler decides whether a (level, marker) combination is logged.
// logger.Configuration implements it.
type Enabler interface {
	// IsEnabled reports whether a call at level carrying marker is logged.
	IsEnabled(level core.Level, marker *core.Marker) bool
	// AnyEnabled reports whether some marker could enable level.
	AnyEnabled(level core.Level) bool
}

// SlogHandler is an adapter that implements slog.Handler on top of a
// Handler, gated by the level rules of one logger. A *core.Marker passed
// as an attribute value becomes the marker of the entry.
type SlogHandler struct {
	handler      Handler
	enabler      Enabler
	presentation *core.Presentation
	attrs        []core.Field
	marker       *core.Marker
	group        string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, enabler Enabler, p *core.Presentation) *SlogHandler {
	return &SlogHandler{
		handler:      h,
		enabler:      enabler,
		presentation: p,
	}
}

// Enabled reports whether the handler handles records at the given
// level. Markers are not known yet, so any rule at or below the level
// counts; Handle applies the exact check.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.enabler.AnyEnabled(slogLevelToCore(level))
}

// Handle converts the record to a core.Entry and passes it to the wrapped handler.
func (s *SlogHandler) Handle(ctx context.Context, record slog.Record) error {
	entry := core.GetEntry()
	entry.Time = record.Time
	entry.Level = slogLevelToCore(record.Level)
	entry.Message = record.Message
	entry.Marker = s.marker
	entry.Presentation = s.presentation

	if len(s.attrs) > 0 {
		entry.Fields = append(entry.Fields, s.attrs...)
	}
	record.Attrs(func(a slog.Attr) bool {
		if m, ok := a.Value.Any().(*core.Marker); ok {
			entry.Marker = m
			return true
		}
		entry.Fields = append(entry.Fields, slogAttrToField(s.group, a))
		return true
	})

	if !s.enabler.IsEnabled(entry.Level, entry.Marker) {
		core.PutEntry(entry)
		return nil
	}

	if p := s.presentation; p != nil {
		if p.RequestIDKey != "" {
			entry.RequestID, _ = core.MDCValue(ctx, p.RequestIDKey)
		}
		if p.ShowThreadID || p.ShowThreadName {
			entry.GoroutineID = core.GoroutineID()
		}
	}

	err := s.handler.Handle(entry)
	if CanRecycle(s.handler) {
		core.PutEntry(entry)
	}
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := s.clone()
	c.attrs = make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(c.attrs, s.attrs)
	for _, a := range attrs {
		if m, ok := a.Value.Any().(*core.Marker); ok {
			c.marker = m
			continue
		}
		c.attrs = append(c.attrs, slogAttrToField(s.group, a))
	}
	return c
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	c := s.clone()
	if s.group != "" {
		c.group = s.group + "." + name
	} else {
		c.group = name
	}
	return c
}

func (s *SlogHandler) clone() *SlogHandler {
	c := *s
	return &c
}

// slogLevelToCore converts a slog.Level to a core.Level. Anything below
// slog.LevelDebug is TRACE.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// slogAttrToField converts a slog.Attr to a core.Field, prepending the group prefix if present.
func slogAttrToField(group string, a slog.Attr) core.Field {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		return core.Field{Key: key, Type: core.StringType, Str: a.Value.String()}
	case slog.KindInt64:
		return core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()}
	case slog.KindUint64:
		return core.Field{Key: key, Type: core.Int64Type, Int64: int64(a.Value.Uint64())}
	case slog.KindFloat64:
		return core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()}
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return core.Field{Key: key, Type: core.BoolType, Int64: val}
	case slog.KindTime:
		return core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()}
	case slog.KindDuration:
		return core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())}
	case slog.KindGroup:
		// groups are flattened to their first attribute
		attrs := a.Value.Group()
		if len(attrs) > 0 {
			return slogAttrToField(key, attrs[0])
		}
		return core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()}
	default:
		if err, ok := a.Value.Any().(error); ok {
			return core.Field{Key: key, Type: core.ErrorType, Str: err.Error(), Any: err}
		}
		return core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()}
	}
}
