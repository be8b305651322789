// Package multihandler provides a fan-out handler that dispatches log
// entries to multiple child handlers, for example a console handler for
// CloudWatch plus a zap-backed handler.
package multihandler
