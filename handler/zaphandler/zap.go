package zaphandler

import (
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/lambdalog/core"
)

// Keys of the zap fields added for entry metadata
const (
	LogNameKey   = "logname"
	MarkerKey    = "marker"
	RequestIDKey = "aws-request-id"
	ThreadKey    = "thread"
)

// Handler forwards entries to a *zap.Logger. Level filtering has already
// happened in the logger rules; the zap core still applies its own level
// on top.
type Handler struct {
	logger *zap.Logger
}

// New creates a handler writing to logger
func New(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle converts the entry into a zap entry and writes it
func (h *Handler) Handle(entry *core.Entry) error {
	ce := h.logger.Check(Level(entry.Level), entry.Message)
	if ce == nil {
		return nil
	}
	if !entry.Time.IsZero() {
		ce.Time = entry.Time
	}

	fields := make([]zap.Field, 0, len(entry.Fields)+5)
	if p := entry.Presentation; p != nil {
		if p.LogName != "" {
			fields = append(fields, zap.String(LogNameKey, p.LogName))
		}
		if p.ShowThreadID || p.ShowThreadName {
			fields = append(fields, zap.String(ThreadKey, core.GoroutineName(entry.GoroutineID)))
		}
	}
	if entry.Marker != nil {
		fields = append(fields, zap.Stringer(MarkerKey, entry.Marker))
	}
	if entry.RequestID != "" {
		fields = append(fields, zap.String(RequestIDKey, entry.RequestID))
	}
	if entry.Err != nil {
		fields = append(fields, zap.Error(entry.Err))
	}
	for _, f := range entry.Fields {
		fields = append(fields, Field(f))
	}

	ce.Write(fields...)
	return nil
}

// CanRecycleEntry returns true; zap copies what it needs during Write.
func (h *Handler) CanRecycleEntry() bool {
	return true
}

// Close flushes the zap logger
func (h *Handler) Close() error {
	return errors.Wrap(ignoreSyncErr(h.logger.Sync()), "sync zap logger")
}

// Level maps a level onto zap. zap has no TRACE, so it shares DEBUG.
func Level(l core.Level) zapcore.Level {
	switch l {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Field converts a structured field into its zap equivalent
func Field(f core.Field) zap.Field {
	switch f.Type {
	case core.StringType:
		return zap.String(f.Key, f.Str)
	case core.Int64Type:
		return zap.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return zap.Float64(f.Key, f.Float64)
	case core.BoolType:
		return zap.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		return zap.Time(f.Key, time.Unix(0, f.Int64))
	case core.DurationType:
		return zap.Duration(f.Key, time.Duration(f.Int64))
	case core.ErrorType:
		if err, ok := f.Any.(error); ok {
			return zap.NamedError(f.Key, err)
		}
		return zap.String(f.Key, f.Str)
	default:
		return zap.Any(f.Key, f.Any)
	}
}

// ignoreSyncErr drops the errors fsync reports for terminals and pipes,
// which is what stdout is inside Lambda.
func ignoreSyncErr(err error) error {
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
