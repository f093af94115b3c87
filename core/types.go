package core

// Key is the random identifier stored in the inverse index key sets.
type Key [KeySize]byte

// Value is the random reference value that the inverse index is keyed by.
type Value [ValueSize]byte

// Record associates one Value with a filler payload.
//
// Filler exists only to bloat the memory footprint of a generated pair. All
// records produced by one generator call carry a copy of the same filler.
type Record struct {
	Value  Value
	Filler [FillerSize]byte
}

// Pair is a single generated (Key, Record) item.
type Pair struct {
	Key    Key
	Record Record
}
