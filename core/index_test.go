package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xRadioAc7iv/go-memhog/core"
)

func key(b byte) core.Key     { return core.Key{b} }
func value(b byte) core.Value { return core.Value{b} }

func TestInverseIndexInsert(t *testing.T) {
	idx := core.NewInverseIndex()

	idx.Insert(value(1), key(1))
	idx.Insert(value(1), key(2))
	idx.Insert(value(2), key(1))

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 3, idx.KeyCount())

	set, ok := idx.Get(value(1))
	require.True(t, ok)
	assert.ElementsMatch(t, []core.Key{key(1), key(2)}, set.Keys())

	set, ok = idx.Get(value(2))
	require.True(t, ok)
	assert.Equal(t, []core.Key{key(1)}, set.Keys())

	_, ok = idx.Get(value(3))
	assert.False(t, ok)
}

func TestInverseIndexSetSemantics(t *testing.T) {
	idx := core.NewInverseIndex()

	for range 5 {
		idx.Insert(value(9), key(4))
	}

	set, ok := idx.Get(value(9))
	require.True(t, ok)
	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Contains(key(4)))
	assert.False(t, set.Contains(key(5)))
	assert.Equal(t, 1, idx.KeyCount())
}

func TestInverseIndexInsertCopiesKey(t *testing.T) {
	idx := core.NewInverseIndex()

	k := key(1)
	idx.Insert(value(1), k)
	k[0] = 2

	set, _ := idx.Get(value(1))
	assert.True(t, set.Contains(key(1)))
	assert.False(t, set.Contains(key(2)))
}

func TestInverseIndexAll(t *testing.T) {
	idx := core.NewInverseIndex()
	idx.Insert(value(1), key(1))
	idx.Insert(value(2), key(2))
	idx.Insert(value(2), key(3))

	got := make(map[core.Value]int)
	for v, set := range idx.All() {
		got[v] = set.Len()
	}

	assert.Equal(t, map[core.Value]int{value(1): 1, value(2): 2}, got)
}

func TestInverseIndexClear(t *testing.T) {
	t.Run("empty index", func(t *testing.T) {
		idx := core.NewInverseIndex()
		idx.Clear()
		assert.Zero(t, idx.Len())
		assert.Zero(t, idx.KeyCount())
	})

	t.Run("populated index", func(t *testing.T) {
		idx := core.NewInverseIndex()
		core.Light.Fill(idx, core.NewGenerator().Pairs(500))
		require.NotZero(t, idx.Len())

		idx.Clear()
		assert.Zero(t, idx.Len())
		assert.Zero(t, idx.KeyCount())

		idx.Clear()
		assert.Zero(t, idx.Len())
	})

	t.Run("reusable after clear", func(t *testing.T) {
		idx := core.NewInverseIndex()
		core.Light.Fill(idx, core.NewGenerator().Pairs(100))
		idx.Clear()

		core.Light.Fill(idx, core.NewGenerator().Pairs(100))
		assert.Equal(t, 100, idx.Len())
		assert.Equal(t, 100, idx.KeyCount())
	})
}
