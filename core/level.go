package core

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidLevelName is returned when a level token does not name a
// known severity.
var ErrInvalidLevelName = errors.New("invalid level name")

// Level represents the severity of a log call. Levels are totally ordered.
type Level int8

const (
	// TraceLevel for the finest-grained diagnostics
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

var levelNames = [...]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

// String returns the upper-case name of the level
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Valid reports whether l is one of the five known levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= ErrorLevel
}

// ParseLevel converts a case-insensitive level name to a Level.
// Surrounding whitespace is ignored; anything else that is not one of
// TRACE, DEBUG, INFO, WARN or ERROR yields ErrInvalidLevelName.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return InfoLevel, errors.Wrapf(ErrInvalidLevelName, "%q", s)
	}
}

// MustParseLevel is like ParseLevel but panics on an unknown name.
// Intended for compiled-in defaults.
func MustParseLevel(s string) Level {
	l, err := ParseLevel(s)
	if err != nil {
		panic(err)
	}
	return l
}
