package core

import (
	"bytes"
	"runtime"
	"strconv"
)

var goroutinePrefix = []byte("goroutine ")

// GoroutineID returns the id of the calling goroutine as reported in
// its stack header, or 0 if the header cannot be parsed. It is only
// called when a logger shows thread information.
func GoroutineID() uint64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// GoroutineName returns the display name used in place of a thread
// name: "main" for the main goroutine, "goroutine-<id>" otherwise.
func GoroutineName(id uint64) string {
	if id == 1 {
		return "main"
	}
	return "goroutine-" + strconv.FormatUint(id, 10)
}
