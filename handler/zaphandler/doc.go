// Package zaphandler forwards log entries to a go.uber.org/zap logger.
// The logger name, marker, request id and goroutine become zap fields.
package zaphandler
