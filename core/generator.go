package core

import (
	"encoding/binary"
	"iter"
	"math/rand/v2"
)

// Generator draws random (Key, Record) pairs.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator backed by a PCG source seeded from the
// runtime's random state.
func NewGenerator() *Generator {
	return NewSeededGenerator(rand.Uint64(), rand.Uint64())
}

// NewSeededGenerator returns a Generator whose draws are fully determined by
// the two seed words.
func NewSeededGenerator(seed1, seed2 uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Pairs returns a lazy sequence of exactly amount random pairs.
//
// The filler payload is drawn once per call and copied into every Record the
// sequence yields. The sequence is single-use: once it has been ranged over,
// ranging again yields nothing, even if the first loop stopped early.
func (g *Generator) Pairs(amount uint32) iter.Seq2[Key, Record] {
	filler := g.filler()
	remaining := amount

	return func(yield func(Key, Record) bool) {
		for remaining > 0 {
			remaining--

			var key Key
			var val Value
			g.fill(key[:])
			g.fill(val[:])

			if !yield(key, Record{Value: val, Filler: filler}) {
				remaining = 0
				return
			}
		}
	}
}

// Collect drains a pair sequence into a batch.
func Collect(pairs iter.Seq2[Key, Record]) []Pair {
	var batch []Pair
	for key, rec := range pairs {
		batch = append(batch, Pair{Key: key, Record: rec})
	}
	return batch
}

// GenerateRandomPairs is shorthand for NewGenerator().Pairs(amount).
func GenerateRandomPairs(amount uint32) iter.Seq2[Key, Record] {
	return NewGenerator().Pairs(amount)
}

func (g *Generator) filler() [FillerSize]byte {
	var buf [FillerSize]byte
	for i := range buf {
		buf[i] = fillerAlphabet[g.rng.IntN(len(fillerAlphabet))]
	}
	return buf
}

// fill writes random bytes into b.
func (g *Generator) fill(b []byte) {
	var word [8]byte
	for len(b) > 0 {
		binary.LittleEndian.PutUint64(word[:], g.rng.Uint64())
		n := copy(b, word[:])
		b = b[n:]
	}
}
