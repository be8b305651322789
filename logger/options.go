package logger

import (
	"go.uber.org/zap"

	"github.com/philipp01105/lambdalog/config"
	"github.com/philipp01105/lambdalog/core"
	"github.com/philipp01105/lambdalog/handler"
)

// Option configures a Factory
type Option func(*options)

type options struct {
	env         config.Environment
	props       config.Properties
	file        string
	diagnostics *zap.Logger
	handler     handler.Handler
	markers     *core.MarkerRegistry
	clock       core.Clock
}

// WithEnvironment replaces the process environment as the first
// configuration source.
func WithEnvironment(env config.Environment) Option {
	return func(o *options) {
		o.env = env
	}
}

// WithProperties supplies an already-loaded properties resource. The
// configuration file is not read.
func WithProperties(props config.Properties) Option {
	return func(o *options) {
		o.props = props
	}
}

// WithConfigurationFile reads the properties resource from path instead
// of lambda-logger.properties. YAML and TOML files are recognized by
// their extension.
func WithConfigurationFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithDiagnostics sets the logger that receives configuration problems
// such as malformed level expressions.
func WithDiagnostics(log *zap.Logger) Option {
	return func(o *options) {
		o.diagnostics = log
	}
}

// WithHandler sets the handler shared by every logger of the factory
func WithHandler(h handler.Handler) Option {
	return func(o *options) {
		o.handler = h
	}
}

// WithMarkerRegistry sets the registry used to intern marker names found
// in level expressions.
func WithMarkerRegistry(r *core.MarkerRegistry) Option {
	return func(o *options) {
		o.markers = r
	}
}

// WithClock sets the clock that stamps entries and the start time
func WithClock(c core.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func defaultOptions() options {
	return options{
		file:  config.DefaultFile,
		clock: core.SystemClock,
	}
}

// newDiagnostics builds a production zap logger on stderr that only
// reports warnings and errors.
func newDiagnostics() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log.Named("lambdalog")
}
