//go:build linux

package memory

import (
	"bytes"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// residentSetSize reads the current RSS from /proc/self/statm, whose second
// field is the resident page count.
func residentSetSize() uint64 {
	data, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return 0
	}

	fields := bytes.Fields(data)
	if len(fields) < 2 {
		return 0
	}

	pages, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}

	return pages * uint64(unix.Getpagesize())
}
