//go:build !unix

package memory

func peakResidentSetSize() uint64 { return 0 }
