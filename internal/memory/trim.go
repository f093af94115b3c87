package memory

import (
	"errors"
	"runtime"
	"runtime/debug"
)

// ErrTrimNotSupported is returned by Trim where the runtime cannot return
// memory to the operating system.
var ErrTrimNotSupported = errors.New("memory trim not supported on " + runtime.GOOS)

// Trim runs a garbage collection and returns as much idle heap to the
// operating system as possible.
//
// It reports whether anything was released: either the runtime's released
// counter grew, or the resident set shrank. The call is advisory; a false
// result is not an error.
func Trim() (bool, error) {
	if !trimSupported {
		return false, ErrTrimNotSupported
	}

	before := Read()
	debug.FreeOSMemory()
	after := Read()

	return released(before, after), nil
}

func released(before, after Snapshot) bool {
	if after.HeapReleased > before.HeapReleased {
		return true
	}
	return after.RSS != 0 && after.RSS < before.RSS
}
