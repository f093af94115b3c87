package core_test

import (
	"math"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xRadioAc7iv/go-memhog/core"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func count(gen *core.Generator, amount uint32) int {
	n := 0
	for range gen.Pairs(amount) {
		n++
	}
	return n
}

func TestPairsYieldsExactAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount uint32
		want   int
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"many", 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, count(core.NewGenerator(), tt.amount))
		})
	}
}

func TestPairsCopyOneFiller(t *testing.T) {
	records := make([]core.Record, 0, 100)
	for _, rec := range core.NewSeededGenerator(1, 2).Pairs(100) {
		records = append(records, rec)
	}
	require.Len(t, records, 100)

	first := records[0].Filler
	for _, rec := range records[1:] {
		assert.Equal(t, first, rec.Filler, "every record must carry the call's filler")
	}

	for _, c := range string(first[:]) {
		assert.True(t, strings.ContainsRune(alphanumeric, c), "filler byte %q is not alphanumeric", c)
	}

	// Each record owns its copy.
	records[1].Filler[0] ^= 0xff
	assert.Equal(t, first, records[0].Filler)
}

func TestRecordCarriesFullFiller(t *testing.T) {
	assert.EqualValues(t, core.FillerSize, unsafe.Sizeof(core.Record{}.Filler))
	assert.GreaterOrEqual(t, unsafe.Sizeof(core.Pair{}), uintptr(core.KeySize+core.ValueSize+core.FillerSize))
}

func TestPairsFreshFillerPerCall(t *testing.T) {
	gen := core.NewSeededGenerator(3, 4)

	var a, b core.Record
	for _, rec := range gen.Pairs(1) {
		a = rec
	}
	for _, rec := range gen.Pairs(1) {
		b = rec
	}

	assert.NotEqual(t, a.Filler, b.Filler)
}

func TestPairsIsSingleUse(t *testing.T) {
	seq := core.NewGenerator().Pairs(10)

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)

	for range seq {
		t.Fatal("sequence yielded after it was consumed")
	}
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a := core.Collect(core.NewSeededGenerator(7, 8).Pairs(50))
	b := core.Collect(core.NewSeededGenerator(7, 8).Pairs(50))

	require.Len(t, a, 50)
	require.Len(t, b, 50)
	for i := range a {
		assert.Equal(t, a[i].Key, b[i].Key)
		assert.Equal(t, a[i].Record.Value, b[i].Record.Value)
		assert.Equal(t, a[i].Record.Filler, b[i].Record.Filler)
	}
}

func TestPairsDrawDistinctKeys(t *testing.T) {
	seen := make(map[core.Key]struct{})
	for key := range core.GenerateRandomPairs(1000) {
		seen[key] = struct{}{}
	}
	// 128 random bits per key; a collision here means the source is broken.
	assert.Len(t, seen, 1000)
}

func TestPairsAmountAboveInt32(t *testing.T) {
	n := 0
	for range core.NewGenerator().Pairs(math.MaxUint32) {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}
