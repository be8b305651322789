package logger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/philipp01105/lambdalog/core"
	"github.com/philipp01105/lambdalog/handler"
)

// Logger is a named logger bound to a resolved Configuration and a
// Handler. It is immutable; With and WithMarker return derived loggers
// that share the configuration and the handler.
type Logger struct {
	cfg          *Configuration
	handler      handler.Handler
	clock        core.Clock
	fields       []core.Field
	marker       *core.Marker
	recycleEntry bool
	threadInfo   bool
}

// New creates a logger for cfg writing to h
func New(cfg *Configuration, h handler.Handler) *Logger {
	return newLogger(cfg, h, core.SystemClock)
}

func newLogger(cfg *Configuration, h handler.Handler, clock core.Clock) *Logger {
	p := cfg.Presentation()
	return &Logger{
		cfg:          cfg,
		handler:      h,
		clock:        clock,
		recycleEntry: h != nil && handler.CanRecycle(h),
		threadInfo:   p.ShowThreadID || p.ShowThreadName,
	}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.cfg.name
}

// Configuration returns the resolved configuration
func (l *Logger) Configuration() *Configuration {
	return l.cfg
}

// Marker returns the marker attached by WithMarker, or nil
func (l *Logger) Marker() *core.Marker {
	return l.marker
}

// With creates a new Logger with additional fields
func (l *Logger) With(fields ...core.Field) *Logger {
	c := *l
	c.fields = make([]core.Field, len(l.fields)+len(fields))
	copy(c.fields, l.fields)
	copy(c.fields[len(l.fields):], fields)
	return &c
}

// WithMarker creates a new Logger whose calls carry marker. The marker
// takes part in level decisions: "DEBUG@audit" enables Debug calls of
// loggers marked with audit or with a marker that references it.
func (l *Logger) WithMarker(marker *core.Marker) *Logger {
	c := *l
	c.marker = marker
	return &c
}

// IsEnabled reports whether a call at lvl with the logger's marker is logged
func (l *Logger) IsEnabled(lvl core.Level) bool {
	return l.cfg.IsEnabled(lvl, l.marker)
}

// IsEnabledFor reports whether a call at lvl carrying marker is logged
func (l *Logger) IsEnabledFor(lvl core.Level, marker *core.Marker) bool {
	return l.cfg.IsEnabled(lvl, marker)
}

// IsTraceEnabled reports whether Trace calls are logged
func (l *Logger) IsTraceEnabled() bool { return l.IsEnabled(core.TraceLevel) }

// IsDebugEnabled reports whether Debug calls are logged
func (l *Logger) IsDebugEnabled() bool { return l.IsEnabled(core.DebugLevel) }

// IsInfoEnabled reports whether Info calls are logged
func (l *Logger) IsInfoEnabled() bool { return l.IsEnabled(core.InfoLevel) }

// IsWarnEnabled reports whether Warn calls are logged
func (l *Logger) IsWarnEnabled() bool { return l.IsEnabled(core.WarnLevel) }

// IsErrorEnabled reports whether Error calls are logged
func (l *Logger) IsErrorEnabled() bool { return l.IsEnabled(core.ErrorLevel) }

// Log logs a message at lvl. ctx supplies the request id.
func (l *Logger) Log(ctx context.Context, lvl core.Level, msg string, fields ...core.Field) {
	if !l.cfg.IsEnabled(lvl, l.marker) {
		return
	}
	l.log(ctx, lvl, msg, fields)
}

// log builds an entry and hands it to the handler. The first error-typed
// field carrying an error value becomes the entry's error.
func (l *Logger) log(ctx context.Context, lvl core.Level, msg string, fields []core.Field) {
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	entry.Time = l.clock()
	entry.Level = lvl
	entry.Marker = l.marker
	entry.Message = msg
	entry.Presentation = &l.cfg.presentation

	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	for _, f := range fields {
		if entry.Err == nil && f.Type == core.ErrorType {
			if err, ok := f.Any.(error); ok {
				entry.Err = err
				continue
			}
		}
		entry.Fields = append(entry.Fields, f)
	}

	if key := l.cfg.presentation.RequestIDKey; ctx != nil && key != "" {
		entry.RequestID, _ = core.MDCValue(ctx, key)
	}
	if l.threadInfo {
		entry.GoroutineID = core.GoroutineID()
	}

	// handler errors have nowhere to go
	_ = l.handler.Handle(entry)

	if l.recycleEntry {
		core.PutEntry(entry)
	}
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if !l.cfg.IsEnabled(core.TraceLevel, l.marker) {
		return
	}
	l.log(context.Background(), core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if !l.cfg.IsEnabled(core.DebugLevel, l.marker) {
		return
	}
	l.log(context.Background(), core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if !l.cfg.IsEnabled(core.InfoLevel, l.marker) {
		return
	}
	l.log(context.Background(), core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if !l.cfg.IsEnabled(core.WarnLevel, l.marker) {
		return
	}
	l.log(context.Background(), core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if !l.cfg.IsEnabled(core.ErrorLevel, l.marker) {
		return
	}
	l.log(context.Background(), core.ErrorLevel, msg, fields)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !l.cfg.IsEnabled(core.TraceLevel, l.marker) {
		return
	}
	l.log(context.Background(), core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.cfg.IsEnabled(core.DebugLevel, l.marker) {
		return
	}
	l.log(context.Background(), core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.cfg.IsEnabled(core.InfoLevel, l.marker) {
		return
	}
	l.log(context.Background(), core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.cfg.IsEnabled(core.WarnLevel, l.marker) {
		return
	}
	l.log(context.Background(), core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.cfg.IsEnabled(core.ErrorLevel, l.marker) {
		return
	}
	l.log(context.Background(), core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// TraceContext logs a trace message with the request id found in ctx
func (l *Logger) TraceContext(ctx context.Context, msg string, fields ...core.Field) {
	if !l.cfg.IsEnabled(core.TraceLevel, l.marker) {
		return
	}
	l.log(ctx, core.TraceLevel, msg, fields)
}

// DebugContext logs a debug message with the request id found in ctx
func (l *Logger) DebugContext(ctx context.Context, msg string, fields ...core.Field) {
	if !l.cfg.IsEnabled(core.DebugLevel, l.marker) {
		return
	}
	l.log(ctx, core.DebugLevel, msg, fields)
}

// InfoContext logs an info message with the request id found in ctx
func (l *Logger) InfoContext(ctx context.Context, msg string, fields ...core.Field) {
	if !l.cfg.IsEnabled(core.InfoLevel, l.marker) {
		return
	}
	l.log(ctx, core.InfoLevel, msg, fields)
}

// WarnContext logs a warning message with the request id found in ctx
func (l *Logger) WarnContext(ctx context.Context, msg string, fields ...core.Field) {
	if !l.cfg.IsEnabled(core.WarnLevel, l.marker) {
		return
	}
	l.log(ctx, core.WarnLevel, msg, fields)
}

// ErrorContext logs an error message with the request id found in ctx
func (l *Logger) ErrorContext(ctx context.Context, msg string, fields ...core.Field) {
	if !l.cfg.IsEnabled(core.ErrorLevel, l.marker) {
		return
	}
	l.log(ctx, core.ErrorLevel, msg, fields)
}

// Slog returns a *slog.Logger that writes through the same handler and
// obeys the same level rules.
func (l *Logger) Slog() *slog.Logger {
	sh := handler.NewSlogHandler(l.handler, l.cfg, &l.cfg.presentation)
	var h slog.Handler = sh
	if l.marker != nil || len(l.fields) > 0 {
		attrs := make([]slog.Attr, 0, len(l.fields)+1)
		if l.marker != nil {
			attrs = append(attrs, slog.Any("marker", l.marker))
		}
		for _, f := range l.fields {
			attrs = append(attrs, slog.Any(f.Key, f.Value()))
		}
		h = sh.WithAttrs(attrs)
	}
	return slog.New(h)
}
