// Package core defines the types shared by every other lambdalog
// package.
//
// Level is the five-step severity scale TRACE < DEBUG < INFO < WARN <
// ERROR. Marker is a named tag that may reference other markers;
// Contains walks those references, so a call tagged with a composite
// marker satisfies a rule gated on any marker it contains. Markers are
// interned per MarkerRegistry rather than in a process-wide singleton.
//
// Entry carries one log event, together with the Presentation policy of
// the logger that produced it, to a handler. Entries are pooled via
// sync.Pool; return them with PutEntry once the handler is done.
//
// The mapped diagnostic context (MDC) lives in a context.Context. The
// request id a logger prints is read from it under the key configured
// in Presentation.RequestIDKey.
package core
