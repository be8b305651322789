package logger

import (
	"sync"
	"sync/atomic"
)

var (
	defaultFactory atomic.Pointer[Factory]
	defaultOnce    sync.Once
)

// Default returns the process-wide factory. Unless SetDefault was called
// first, it is created on first use from the process environment and
// lambda-logger.properties in the working directory.
func Default() *Factory {
	if f := defaultFactory.Load(); f != nil {
		return f
	}
	defaultOnce.Do(func() {
		defaultFactory.CompareAndSwap(nil, NewFactory())
	})
	return defaultFactory.Load()
}

// SetDefault replaces the process-wide factory. Loggers obtained from
// the previous factory keep their configuration.
func SetDefault(f *Factory) {
	defaultFactory.Store(f)
}

// GetLogger returns the named logger of the default factory
func GetLogger(name string) *Logger {
	return Default().Logger(name)
}

// GetConfiguration returns the configuration of the named logger of the
// default factory.
func GetConfiguration(name string) *Configuration {
	return Default().Configuration(name)
}
