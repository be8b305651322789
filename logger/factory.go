package logger

import (
	"iter"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/philipp01105/lambdalog/config"
	"github.com/philipp01105/lambdalog/core"
	"github.com/philipp01105/lambdalog/formatter"
	"github.com/philipp01105/lambdalog/handler"
	"github.com/philipp01105/lambdalog/handler/consolehandler"
	"github.com/philipp01105/lambdalog/level"
)

// Factory resolves and caches logger configurations. Sources are read
// once, in NewFactory; each logger name is resolved at most once and
// the result is shared by every caller for the life of the factory.
type Factory struct {
	values  *config.Resolver
	levels  *level.Resolver
	markers *core.MarkerRegistry
	handler handler.Handler
	diag    *zap.Logger
	clock   core.Clock
	start   time.Time
	flags   presentationFlags
	cache   sync.Map // string -> *cacheEntry
}

// presentationFlags are the global presentation properties, read once
type presentationFlags struct {
	dateTimeFormat   core.TimeFormat
	levelInBrackets  bool
	showDateTime     bool
	showLogName      bool
	showShortLogName bool
	showThreadID     bool
	showThreadName   bool
	requestIDKey     string
}

type cacheEntry struct {
	once   sync.Once
	cfg    *Configuration
	logger *Logger
}

// NewFactory loads the configuration sources and returns a factory.
// Problems with the sources are reported to the diagnostics logger and
// never fail construction: an unreadable properties file counts as
// empty, a bad date format falls back to relative timestamps. A missing
// properties file is not a problem.
func NewFactory(opts ...Option) *Factory {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.diagnostics == nil {
		o.diagnostics = newDiagnostics()
	}
	if o.markers == nil {
		o.markers = core.NewMarkerRegistry()
	}
	if o.handler == nil {
		o.handler = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Formatter: formatter.NewTextFormatter(formatter.Config{}),
		})
	}
	if o.props == nil {
		o.props = loadProperties(o.file, o.diagnostics)
	}

	values := config.NewResolver(o.env, o.props)
	f := &Factory{
		values:  values,
		levels:  level.NewResolver(values, o.markers, o.diagnostics),
		markers: o.markers,
		handler: o.handler,
		diag:    o.diagnostics,
		clock:   o.clock,
		start:   o.clock(),
	}
	f.flags = f.readFlags()
	return f
}

func loadProperties(path string, diag *zap.Logger) config.Properties {
	props, err := config.LoadFile(path)
	switch {
	case err == nil:
		return props
	case config.IsNotExist(err):
		diag.Debug("no properties file", zap.String("file", path))
	default:
		diag.Warn("cannot read properties file", zap.String("file", path), zap.Error(err))
	}
	return config.Properties{}
}

func (f *Factory) readFlags() presentationFlags {
	flags := presentationFlags{
		levelInBrackets:  f.values.Bool(config.LevelInBrackets),
		showDateTime:     f.values.Bool(config.ShowDateTime),
		showLogName:      f.values.Bool(config.ShowLogName),
		showShortLogName: f.values.Bool(config.ShowShortLogName),
		showThreadID:     f.values.Bool(config.ShowThreadID),
		showThreadName:   f.values.Bool(config.ShowThreadName),
		requestIDKey:     f.values.String(config.RequestID),
	}
	if pattern, ok := f.values.Global(config.DateTimeFormat); ok {
		df, err := config.ParseDateFormat(pattern)
		if err != nil {
			f.diag.Warn("bad date-time format, using relative timestamps",
				zap.String("pattern", pattern),
				zap.Error(err))
		} else {
			flags.dateTimeFormat = df
		}
	}
	return flags
}

// Configuration returns the configuration of the named logger, resolving
// it on first use. Concurrent first calls for one name block until a
// single resolution completes and all receive the same instance.
func (f *Factory) Configuration(name string) *Configuration {
	return f.entry(name).cfg
}

// Logger returns the logger for name. Repeated calls return the same
// instance.
func (f *Factory) Logger(name string) *Logger {
	return f.entry(name).logger
}

func (f *Factory) entry(name string) *cacheEntry {
	v, ok := f.cache.Load(name)
	if !ok {
		v, _ = f.cache.LoadOrStore(name, &cacheEntry{})
	}
	e := v.(*cacheEntry)
	e.once.Do(func() {
		e.cfg = f.resolve(name)
		e.logger = newLogger(e.cfg, f.handler, f.clock)
	})
	return e
}

func (f *Factory) resolve(name string) *Configuration {
	rules, origin := f.levels.ResolveWithOrigin(name)
	cfg, err := NewBuilder().
		WithName(name).
		WithRules(rules).
		WithOrigin(origin).
		WithDateTimeFormat(f.flags.dateTimeFormat).
		WithLevelInBrackets(f.flags.levelInBrackets).
		WithShowDateTime(f.flags.showDateTime).
		WithShowLogName(f.flags.showLogName).
		WithShowShortLogName(f.flags.showShortLogName).
		WithShowThreadID(f.flags.showThreadID).
		WithShowThreadName(f.flags.showThreadName).
		WithRequestIDKey(f.flags.requestIDKey).
		WithStartTime(f.start).
		Build()
	if err != nil {
		// the level resolver never returns an empty rule list
		panic(errors.Wrapf(err, "resolve logger %q", name))
	}
	return cfg
}

// Configurations yields the configurations resolved so far, sorted by
// logger name.
func (f *Factory) Configurations() iter.Seq[*Configuration] {
	var names []string
	f.cache.Range(func(k, _ interface{}) bool {
		names = append(names, k.(string))
		return true
	})
	sort.Strings(names)
	return func(yield func(*Configuration) bool) {
		for _, name := range names {
			if !yield(f.Configuration(name)) {
				return
			}
		}
	}
}

// DefaultRules returns the global default rules
func (f *Factory) DefaultRules() level.Rules {
	return f.levels.Default()
}

// Marker returns the interned marker with the given name
func (f *Factory) Marker(name string) *core.Marker {
	return f.markers.Get(name)
}

// Markers returns the marker registry of the factory
func (f *Factory) Markers() *core.MarkerRegistry {
	return f.markers
}

// Values returns the configuration value resolver
func (f *Factory) Values() *config.Resolver {
	return f.values
}

// StartTime returns the reference point of relative timestamps
func (f *Factory) StartTime() time.Time {
	return f.start
}

// Handler returns the handler shared by the factory's loggers
func (f *Factory) Handler() handler.Handler {
	return f.handler
}

// Close closes the shared handler and flushes the diagnostics logger
func (f *Factory) Close() error {
	err := f.handler.Close()
	_ = f.diag.Sync()
	return err
}
