package level

import (
	"regexp"
	"sync"

	"go.uber.org/zap"

	"github.com/philipp01105/lambdalog/config"
	"github.com/philipp01105/lambdalog/core"
)

// Resolver finds the rules that apply to a logger name: the rules of
// the most specific configured ancestor, or the global default rules.
// It is safe for concurrent use.
type Resolver struct {
	values   *config.Resolver
	parser   *Parser
	log      *zap.Logger
	defaults func() Rules
}

// NewResolver creates a resolver. The level and marker separators are
// read from values immediately; an invalid separator pattern is
// reported to log and replaced by the default. The global default
// rules are resolved on first use.
func NewResolver(values *config.Resolver, markers *core.MarkerRegistry, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Resolver{values: values, log: log}
	r.parser = NewParser(
		r.separator(config.LogLevelSeparator, DefaultLevelSeparator),
		r.separator(config.MarkerSeparator, DefaultMarkerSeparator),
		markers,
	)
	r.defaults = sync.OnceValue(r.resolveDefault)
	return r
}

func (r *Resolver) separator(p config.Property, fallback *regexp.Regexp) *regexp.Regexp {
	expr := r.values.String(p)
	if expr == fallback.String() {
		return fallback
	}
	re, err := regexp.Compile(expr)
	if err != nil || expr == "" {
		r.log.Warn("bad separator pattern, using default",
			zap.String("property", p.PropertyName),
			zap.String("pattern", expr),
			zap.String("default", fallback.String()),
			zap.Error(err))
		return fallback
	}
	return re
}

// Parser returns the parser configured with the resolved separators
func (r *Resolver) Parser() *Parser {
	return r.parser
}

// Resolve returns the rules for loggerName. Ancestors are tried from
// the most specific; the first one whose level expression parses wins.
// A malformed expression is reported and the walk continues with the
// next ancestor. Without a usable match the global default rules are
// returned, so the result is never empty.
func (r *Resolver) Resolve(loggerName string) Rules {
	rules, _ := r.ResolveWithOrigin(loggerName)
	return rules
}

// ResolveWithOrigin is Resolve that also returns the ancestor whose
// configuration was used, or "" for the global default.
func (r *Resolver) ResolveWithOrigin(loggerName string) (Rules, string) {
	for candidate := range Ancestors(loggerName) {
		expr, ok := r.values.PerLogger(config.LogLevel, candidate)
		if !ok {
			continue
		}
		rules, err := r.parser.Parse(expr)
		if err != nil {
			r.log.Warn("bad log level of the logger",
				zap.String("logger", loggerName),
				zap.String("ancestor", candidate),
				zap.Error(err))
			continue
		}
		return rules, candidate
	}
	return r.Default(), ""
}

// Default returns the global default rules. They are resolved once:
// LOG_DEFAULT_LEVEL, then defaultLogLevel, each skipped with a report
// when malformed, then the compiled-in INFO.
func (r *Resolver) Default() Rules {
	return r.defaults()
}

func (r *Resolver) resolveDefault() Rules {
	p := config.DefaultLogLevel
	for source, expr := range r.values.Sources(p) {
		rules, err := r.parser.Parse(expr)
		if err == nil {
			return rules
		}
		name := p.VariableName
		if source == config.SourceProperties {
			name = p.PropertyName
		}
		r.log.Warn("bad default log level",
			zap.Stringer("source", source),
			zap.String("key", name),
			zap.Error(err))
	}
	return Rules{NewRule(core.MustParseLevel(p.DefaultValue))}
}
