// Package consolehandler writes formatted log entries to an io.Writer,
// by default os.Stdout, which the Lambda runtime forwards to CloudWatch.
//
// Handlers are split into specialized sync and async variants:
//
//   - SyncConsoleHandler writes before Handle returns. It uses TryLock on
//     a handler-owned buffer and formats outside the lock when contended.
//   - AsyncConsoleHandler provides a bounded queue with a per-level
//     OverflowPolicy and a dedicated background goroutine.
//
// NewConsoleHandler chooses the variant based on ConsoleConfig.Async.
package consolehandler
