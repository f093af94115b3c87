package core

import (
	"iter"
	"maps"
)

// KeySet holds the distinct keys recorded for one Value.
//
// Entries are pointers so a set can refer to a key that lives inside a
// collected batch instead of owning a copy of it.
type KeySet []*Key

// Len returns the number of keys in the set.
func (s KeySet) Len() int { return len(s) }

// Contains reports whether key is in the set.
func (s KeySet) Contains(key Key) bool {
	for _, k := range s {
		if *k == key {
			return true
		}
	}
	return false
}

// Keys returns a copy of the keys in the set.
func (s KeySet) Keys() []Key {
	keys := make([]Key, len(s))
	for i, k := range s {
		keys[i] = *k
	}
	return keys
}

// InverseIndex maps a Value to the set of keys that produced it.
//
// It is not safe for concurrent use. The zero value is not usable, create
// one with NewInverseIndex.
type InverseIndex struct {
	sets map[Value]KeySet
	keys int
}

func NewInverseIndex() *InverseIndex {
	return &InverseIndex{sets: make(map[Value]KeySet)}
}

// Insert adds key to the set of val, creating the set if needed.
// The index keeps its own copy of key.
func (idx *InverseIndex) Insert(val Value, key Key) {
	set, ok := idx.sets[val]
	if ok && set.Contains(key) {
		return
	}
	owned := key
	idx.add(val, set, &owned)
}

// insertRef is Insert without the copy: the set keeps key itself, and with
// it whatever allocation key points into.
func (idx *InverseIndex) insertRef(val Value, key *Key) {
	set, ok := idx.sets[val]
	if ok && set.Contains(*key) {
		return
	}
	idx.add(val, set, key)
}

func (idx *InverseIndex) add(val Value, set KeySet, key *Key) {
	if set == nil {
		set = KeySet{key}
	} else {
		set = append(set, key)
	}
	idx.sets[val] = set
	idx.keys++
}

// Get returns the key set recorded for val.
func (idx *InverseIndex) Get(val Value) (KeySet, bool) {
	set, ok := idx.sets[val]
	return set, ok
}

// Len returns the number of distinct values in the index.
func (idx *InverseIndex) Len() int { return len(idx.sets) }

// KeyCount returns the number of keys across all sets.
func (idx *InverseIndex) KeyCount() int { return idx.keys }

// All iterates over every value and its key set, in no particular order.
func (idx *InverseIndex) All() iter.Seq2[Value, KeySet] {
	return maps.All(idx.sets)
}

// Clear removes every entry. The map keeps its buckets for reuse; to give
// that memory back, drop the index and start a new one.
func (idx *InverseIndex) Clear() {
	clear(idx.sets)
	idx.keys = 0
}
