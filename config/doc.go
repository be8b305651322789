// Package config resolves lambdalog configuration keys from layered
// sources.
//
// Every key is a Property with a properties-resource name, an
// environment variable name and an optional compiled-in default. A
// Resolver checks the environment first, then the properties resource,
// then the default:
//
//	r := config.NewResolver(config.OSEnvironment{}, props)
//	level, _ := r.Global(config.DefaultLogLevel) // LOG_DEFAULT_LEVEL, defaultLogLevel, "INFO"
//
// Per-logger keys append the logger name to the property prefix.
// "org.test.Class" is looked up as LOG_ORG_TEST_CLASS and then as
// log.org.test.Class. Ancestor search is the caller's job.
//
// The properties resource is read once with LoadFile. Java-style
// .properties files are the default; .yaml and .toml documents are
// flattened so that nested keys join with dots.
//
// Missing keys are never errors. Malformed values are reported by the
// consumer of the value, not here.
package config
