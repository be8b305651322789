// Package formatter serializes log entries into bytes.
//
// Two interfaces are exposed: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers check
// for WriterFormatter or BufferFormatter at construction time and prefer
// them, which removes the intermediate byte slice on the write path.
//
// What a line contains is decided per logger, not per formatter: every
// entry carries the core.Presentation of the logger that produced it
// (timestamp mode, thread info, log name, bracketed level). TextFormatter
// renders the CloudWatch-style line; JSONFormatter emits one object per
// line with the keys aws-request-id, timestamp or relative-timestamp,
// thread-name, thread-id, level, logname, message, marker and stack-trace,
// followed by structured fields.
//
// Buffers larger than 64 KiB are not returned to the pool so that a
// single large line does not permanently inflate memory usage.
package formatter
