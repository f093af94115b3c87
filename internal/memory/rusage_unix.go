//go:build unix

package memory

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func peakResidentSetSize() uint64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}

	// Darwin reports bytes, everyone else kilobytes.
	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		return uint64(ru.Maxrss)
	}
	return uint64(ru.Maxrss) * 1024
}
