package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/lambdalog/core"
)

// Numeric, boolean, time and duration values are kept in Field.Int64 so
// that building a field does not allocate.

func scalar(key string, t core.FieldType, v int64) core.Field {
	return core.Field{Key: key, Type: t, Int64: v}
}

// String creates a string field
func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

// Stringer stores the result of val.String(), or "<nil>" for a nil val.
// The method runs even when the call turns out to be disabled; guard
// expensive values with IsEnabled.
func Stringer(key string, val fmt.Stringer) core.Field {
	if val == nil {
		return String(key, "<nil>")
	}
	return String(key, val.String())
}

// Int creates an integer field
func Int(key string, val int) core.Field {
	return scalar(key, core.Int64Type, int64(val))
}

// Int64 creates an integer field
func Int64(key string, val int64) core.Field {
	return scalar(key, core.Int64Type, val)
}

// Float64 creates a floating point field
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

// Bool creates a boolean field
func Bool(key string, val bool) core.Field {
	f := scalar(key, core.BoolType, 0)
	if val {
		f.Int64 = 1
	}
	return f
}

// Time creates a timestamp field, printed as RFC 3339
func Time(key string, val time.Time) core.Field {
	return scalar(key, core.TimeType, val.UnixNano())
}

// Duration creates a duration field, printed as "1.5s"
func Duration(key string, val time.Duration) core.Field {
	return scalar(key, core.DurationType, int64(val))
}

// Err creates the "error" field. On a log call the first error field
// becomes the entry's error and is printed with its stack trace.
func Err(err error) core.Field {
	return NamedErr("error", err)
}

// NamedErr creates an error field under key. A nil err is kept as an
// empty field and never becomes the entry's error.
func NamedErr(key string, err error) core.Field {
	f := core.Field{Key: key, Type: core.ErrorType}
	if err != nil {
		f.Str = err.Error()
		f.Any = err
	}
	return f
}

// Any creates a field printed with fmt
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Type: core.AnyType, Any: val}
}
