package config

import (
	"iter"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

var (
	spaces = regexp.MustCompile(`\s+`)
	dots   = regexp.MustCompile(`\.+`)
)

// Source names where a configuration value was found.
type Source int

const (
	// SourceEnvironment is a process environment variable
	SourceEnvironment Source = iota
	// SourceProperties is the properties resource
	SourceProperties
	// SourceDefault is the compiled-in default
	SourceDefault
)

// String returns the source name
func (s Source) String() string {
	switch s {
	case SourceEnvironment:
		return "environment"
	case SourceProperties:
		return "properties"
	case SourceDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Resolver looks configuration keys up in the environment first, then
// in the properties resource, then in the compiled default. It never
// modifies its sources and is safe for concurrent use.
type Resolver struct {
	env   Environment
	props Properties
}

// NewResolver creates a resolver over already-loaded sources. A nil
// env means the OS environment; nil props means no properties resource.
func NewResolver(env Environment, props Properties) *Resolver {
	if env == nil {
		env = OSEnvironment{}
	}
	if props == nil {
		props = Properties{}
	}
	return &Resolver{env: env, props: props}
}

// Properties returns the properties snapshot the resolver reads from
func (r *Resolver) Properties() Properties {
	return r.props
}

// Global resolves a global property. ok is false only when the property
// has no default and neither source sets it.
func (r *Resolver) Global(p Property) (value string, ok bool) {
	for _, v := range r.Sources(p) {
		return v, true
	}
	if p.HasDefault {
		return p.DefaultValue, true
	}
	return "", false
}

// String resolves a global property, returning "" when it is unset
func (r *Resolver) String(p Property) string {
	v, _ := r.Global(p)
	return v
}

// Bool resolves a global property as a boolean. Values that do not
// parse as a boolean are false.
func (r *Resolver) Bool(p Property) bool {
	return cast.ToBool(strings.TrimSpace(r.String(p)))
}

// Sources yields the values a global property is set to, in precedence
// order: environment, then properties. The compiled default is not
// yielded.
func (r *Resolver) Sources(p Property) iter.Seq2[Source, string] {
	return func(yield func(Source, string) bool) {
		if v, ok := r.env.LookupEnv(p.VariableName); ok {
			if !yield(SourceEnvironment, v) {
				return
			}
		}
		if v, ok := r.props.Get(p.PropertyName); ok {
			yield(SourceProperties, v)
		}
	}
}

// PerLogger resolves a per-logger property for exactly loggerName,
// without looking at ancestors. The environment variable is the
// property's variable prefix followed by the upper-cased name with
// whitespace removed and each run of dots turned into one underscore:
// "org.test.Class" reads LOG_ORG_TEST_CLASS. The properties key is the
// property prefix followed by the name as given: log.org.test.Class.
func (r *Resolver) PerLogger(p Property, loggerName string) (string, bool) {
	if v, ok := r.env.LookupEnv(p.VariableName + EnvironmentSuffix(loggerName)); ok {
		return v, true
	}
	if v, ok := r.props.Get(p.PropertyName + loggerName); ok {
		return v, true
	}
	return "", false
}

// EnvironmentSuffix normalizes a logger name into an environment
// variable suffix.
func EnvironmentSuffix(loggerName string) string {
	name := spaces.ReplaceAllString(loggerName, "")
	return dots.ReplaceAllString(strings.ToUpper(name), "_")
}
