package logger

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/lambdalog/core"
	"github.com/philipp01105/lambdalog/level"
)

var (
	// ErrMissingName is returned by Builder.Build when WithName was never called.
	ErrMissingName = errors.New("logger name is required")
	// ErrNoLevelRules is returned by Builder.Build when no level rule was given.
	ErrNoLevelRules = errors.New("at least one level rule is required")
)

// Configuration is the resolved, immutable configuration of one named
// logger: its level rules and its presentation policy.
type Configuration struct {
	name         string
	origin       string
	rules        level.Rules
	presentation core.Presentation
}

// Name returns the logger name
func (c *Configuration) Name() string {
	return c.name
}

// DisplayName returns the name printed with each line, "" when hidden
func (c *Configuration) DisplayName() string {
	return c.presentation.LogName
}

// Rules returns a copy of the level rules
func (c *Configuration) Rules() level.Rules {
	out := make(level.Rules, len(c.rules))
	copy(out, c.rules)
	return out
}

// Origin returns the ancestor whose level expression produced the rules,
// or "" when the global default applies.
func (c *Configuration) Origin() string {
	return c.origin
}

// Presentation returns the output policy. The pointer stays valid for
// the lifetime of the configuration and must not be modified.
func (c *Configuration) Presentation() *core.Presentation {
	return &c.presentation
}

// IsEnabled reports whether a call at lvl carrying marker (nil for none)
// is logged. It does not allocate.
func (c *Configuration) IsEnabled(lvl core.Level, marker *core.Marker) bool {
	return c.rules.Enabled(lvl, marker)
}

// IsLevelEnabled is IsEnabled for a call without marker
func (c *Configuration) IsLevelEnabled(lvl core.Level) bool {
	return c.rules.Enabled(lvl, nil)
}

// AnyEnabled reports whether some marker could enable lvl
func (c *Configuration) AnyEnabled(lvl core.Level) bool {
	return lvl >= c.rules.MinLevel()
}

// String renders the configuration for diagnostics
func (c *Configuration) String() string {
	return c.name + "=" + c.rules.String()
}

// Builder assembles a Configuration. Build validates it; the builder
// itself may be reused.
type Builder struct {
	name             string
	nameSet          bool
	origin           string
	rules            level.Rules
	dateTimeFormat   core.TimeFormat
	levelInBrackets  bool
	showDateTime     bool
	showLogName      bool
	showShortLogName bool
	showThreadID     bool
	showThreadName   bool
	requestIDKey     string
	startTime        time.Time
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithName sets the logger name. The empty name is allowed.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	b.nameSet = true
	return b
}

// WithRules replaces the level rules
func (b *Builder) WithRules(rules level.Rules) *Builder {
	b.rules = append(level.Rules(nil), rules...)
	return b
}

// WithRule appends one level rule
func (b *Builder) WithRule(rule level.Rule) *Builder {
	b.rules = append(b.rules, rule)
	return b
}

// WithOrigin records the ancestor the rules were resolved from
func (b *Builder) WithOrigin(origin string) *Builder {
	b.origin = origin
	return b
}

// WithDateTimeFormat sets the timestamp format; nil prints milliseconds
// since the start time.
func (b *Builder) WithDateTimeFormat(f core.TimeFormat) *Builder {
	b.dateTimeFormat = f
	return b
}

// WithLevelInBrackets prints "[INFO]" instead of "INFO"
func (b *Builder) WithLevelInBrackets(enabled bool) *Builder {
	b.levelInBrackets = enabled
	return b
}

// WithShowDateTime enables the timestamp column
func (b *Builder) WithShowDateTime(enabled bool) *Builder {
	b.showDateTime = enabled
	return b
}

// WithShowLogName prints the full logger name
func (b *Builder) WithShowLogName(enabled bool) *Builder {
	b.showLogName = enabled
	return b
}

// WithShowShortLogName prints the last dot-separated segment of the
// logger name. It takes precedence over WithShowLogName.
func (b *Builder) WithShowShortLogName(enabled bool) *Builder {
	b.showShortLogName = enabled
	return b
}

// WithShowThreadID prints the goroutine id
func (b *Builder) WithShowThreadID(enabled bool) *Builder {
	b.showThreadID = enabled
	return b
}

// WithShowThreadName prints the goroutine name
func (b *Builder) WithShowThreadName(enabled bool) *Builder {
	b.showThreadName = enabled
	return b
}

// WithRequestIDKey sets the MDC key of the request id
func (b *Builder) WithRequestIDKey(key string) *Builder {
	b.requestIDKey = key
	return b
}

// WithStartTime sets the reference point of relative timestamps
func (b *Builder) WithStartTime(t time.Time) *Builder {
	b.startTime = t
	return b
}

// Build validates the builder and returns the immutable configuration
func (b *Builder) Build() (*Configuration, error) {
	if !b.nameSet {
		return nil, errors.WithStack(ErrMissingName)
	}
	if len(b.rules) == 0 {
		return nil, errors.Wrapf(ErrNoLevelRules, "logger %q", b.name)
	}

	return &Configuration{
		name:   b.name,
		origin: b.origin,
		rules:  append(level.Rules(nil), b.rules...),
		presentation: core.Presentation{
			LogName:         displayName(b.name, b.showLogName, b.showShortLogName),
			LevelInBrackets: b.levelInBrackets,
			ShowDateTime:    b.showDateTime,
			DateTimeFormat:  b.dateTimeFormat,
			ShowThreadID:    b.showThreadID,
			ShowThreadName:  b.showThreadName,
			RequestIDKey:    b.requestIDKey,
			StartTime:       b.startTime,
		},
	}, nil
}

func displayName(name string, full, short bool) string {
	switch {
	case short:
		return name[strings.LastIndexByte(name, '.')+1:]
	case full:
		return name
	default:
		return ""
	}
}
