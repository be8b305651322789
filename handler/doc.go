// Package handler provides the Handler interface that receives finished
// log entries, plus the pieces shared by its implementations.
//
// Entries arrive fully resolved: the logger has already applied its level
// rules and attached its core.Presentation, request id and goroutine id.
// A handler only decides where the bytes go.
//
// Shared pieces:
//
//   - OverflowPolicy and Stats for asynchronous handlers with bounded
//     queues. DropNewest is the default for TRACE to WARN; ERROR uses
//     Block with a timeout so that errors are never dropped silently.
//   - Recycler, which tells the logger whether an entry can go back to the
//     pool as soon as Handle returns.
//   - SlogHandler, which adapts a Handler plus an Enabler to log/slog.
//
// Implementations live in subpackages: consolehandler (stdout, which the
// Lambda runtime ships to CloudWatch), zaphandler (a go.uber.org/zap
// logger) and multihandler (fan-out).
package handler
