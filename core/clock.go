package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies the time stamped on log entries.
type Clock func() time.Time

// SystemClock is time.Now.
var SystemClock Clock = time.Now

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// CoarseClock returns a Clock backed by a background goroutine that
// caches time.Now() every 500µs. The goroutine is started once and runs
// for the lifetime of the process.
func CoarseClock() Clock {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
	return func() time.Time {
		return *coarseNow.Load()
	}
}
