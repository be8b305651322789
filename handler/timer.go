package handler

import "time"

// NewStoppedTimer returns a timer that is stopped and drained, ready for
// Reset. Async handlers keep one per handler to bound blocking sends
// without allocating a timer per call.
func NewStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	StopTimer(t)
	return t
}

// StopTimer stops t and drains its channel if it already fired
func StopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
