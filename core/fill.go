package core

import (
	"fmt"
	"iter"
)

// Strategy selects how a fill populates the inverse index.
//
// Every strategy leaves the index in the same logical state for the same
// pairs. They differ in how much memory is held while filling and how much
// stays held afterwards.
type Strategy int

const (
	// Light inserts pairs as they are drawn. Nothing is materialized.
	Light Strategy = iota + 1

	// IterativeCollect collects every pair into a batch first, then inserts
	// copies of the batch entries. The batch is garbage once the fill
	// returns, so a trim gives its pages back.
	IterativeCollect

	// ConsumingCollect collects every pair into a batch first, then consumes
	// the entries in place. Key sets point into the batch, which therefore
	// stays live until the index drops those sets (Clear or a new index).
	ConsumingCollect
)

func (s Strategy) String() string {
	switch s {
	case Light:
		return "light"
	case IterativeCollect:
		return "iterative-collect"
	case ConsumingCollect:
		return "consuming-collect"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Fill inserts every pair of the sequence into idx using s.
func (s Strategy) Fill(idx *InverseIndex, pairs iter.Seq2[Key, Record]) {
	switch s {
	case Light:
		FillLight(idx, pairs)
	case IterativeCollect:
		FillIter(idx, pairs)
	case ConsumingCollect:
		FillConsume(idx, pairs)
	default:
		panic(fmt.Sprintf("core: unknown fill strategy %d", int(s)))
	}
}

// FillLight loops over the lazy sequence without collecting it.
func FillLight(idx *InverseIndex, pairs iter.Seq2[Key, Record]) {
	for key, rec := range pairs {
		idx.Insert(rec.Value, key)
	}
}

// FillIter collects the sequence, then iterates over copies of the collected
// entries. This takes the most memory while running but is trimmable back
// to the size of FillLight.
func FillIter(idx *InverseIndex, pairs iter.Seq2[Key, Record]) {
	batch := Collect(pairs)
	for _, p := range batch {
		idx.Insert(p.Record.Value, p.Key)
	}
}

// FillConsume collects the sequence, then consumes the collected entries in
// place. It peaks a little below FillIter since no key is copied, but the
// batch is retained by the index and no trim can release it while the
// index holds those keys.
func FillConsume(idx *InverseIndex, pairs iter.Seq2[Key, Record]) {
	batch := Collect(pairs)
	for i := range batch {
		p := &batch[i]
		idx.insertRef(p.Record.Value, &p.Key)
	}
}
