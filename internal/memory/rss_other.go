//go:build !linux

package memory

func residentSetSize() uint64 { return 0 }
