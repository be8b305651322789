// Package logger resolves named loggers and is the public entry point of
// lambdalog.
//
// A Factory reads its configuration sources once: the process environment
// (LOG_* variables), a properties resource (lambda-logger.properties by
// default; YAML and TOML are accepted too) and compiled-in defaults. Each
// logger name is then resolved at most once into an immutable
// Configuration: the level rules of the most specific configured ancestor
// ("org.test.Class", then "org.test", then "org") or the global default,
// plus the presentation policy shared by every line it writes.
//
//	log := logger.GetLogger("com.example.Handler")
//	log.Info("cold start")
//
// Level rules may name markers. With log.com.example=info,debug@audit a
// logger writes INFO and above, and DEBUG calls carrying the audit marker:
//
//	audit := logger.Default().Marker("audit")
//	log.WithMarker(audit).Debug("permission checked")
//
// The request id is taken from the context:
//
//	ctx = core.WithMDC(ctx, "AWS_REQUEST_ID", lambdaCtx.AwsRequestID)
//	log.InfoContext(ctx, "handled")
//
// Loggers are immutable and safe for concurrent use. Rule checks happen
// before any allocation, so a disabled call costs a short scan over the
// rule list.
package logger
