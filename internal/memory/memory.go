// Package memory reports how much memory the process holds and asks the
// runtime to give unused pages back to the operating system.
package memory

import (
	"runtime"
)

// Snapshot is a point-in-time view of heap and process memory.
//
// RSS and PeakRSS are zero on platforms that cannot report them.
type Snapshot struct {
	HeapAlloc    uint64 // Bytes of live and not yet swept heap objects
	HeapInuse    uint64 // Bytes in in-use spans
	HeapIdle     uint64 // Bytes in idle spans, released or not
	HeapReleased uint64 // Bytes of idle spans returned to the OS
	Sys          uint64 // Total bytes obtained from the OS
	RSS          uint64 // Resident set size of the process
	PeakRSS      uint64 // Highest resident set size seen so far
}

// Read takes a Snapshot. It stops the world briefly, like runtime.ReadMemStats.
func Read() Snapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return Snapshot{
		HeapAlloc:    ms.HeapAlloc,
		HeapInuse:    ms.HeapInuse,
		HeapIdle:     ms.HeapIdle,
		HeapReleased: ms.HeapReleased,
		Sys:          ms.Sys,
		RSS:          residentSetSize(),
		PeakRSS:      peakResidentSetSize(),
	}
}
