package bitset_test

import (
	"testing"

	"github.com/esbmc/libltl2ba/bitset"
	"github.com/stretchr/testify/require"
)

func TestSingletonAndHas(t *testing.T) {
	s := bitset.Singleton(40, 64)
	require.True(t, s.Has(40))
	require.False(t, s.Has(0))
	require.False(t, s.Empty())
}

func TestEmptySingleton(t *testing.T) {
	s := bitset.Singleton(-1, 8)
	require.True(t, s.Empty())
}

func TestUnionIntersect(t *testing.T) {
	a := bitset.New(40)
	a.Add(1)
	a.Add(35)
	b := bitset.New(40)
	b.Add(35)
	b.Add(2)

	u := a.Union(b)
	require.ElementsMatch(t, []int{1, 2, 35}, u.List())

	i := a.Intersect(b)
	require.ElementsMatch(t, []int{35}, i.List())
	require.True(t, i.Intersects(a))

	c := bitset.New(40)
	c.Add(2)
	require.False(t, a.Intersects(c))
}

func TestSubsetEqual(t *testing.T) {
	a := bitset.New(10)
	a.Add(3)
	b := bitset.New(10)
	b.Add(3)
	b.Add(5)

	require.True(t, a.Subset(b))
	require.False(t, b.Subset(a))
	require.False(t, a.Equal(b))

	a.Add(5)
	require.True(t, a.Equal(b))
}

func TestMergeFromAndClone(t *testing.T) {
	a := bitset.New(16)
	a.Add(1)
	b := bitset.New(16)
	b.Add(9)

	clone := a.Clone()
	clone.MergeFrom(b)

	require.ElementsMatch(t, []int{1}, a.List())
	require.ElementsMatch(t, []int{1, 9}, clone.List())
}

func TestRemoveAndClear(t *testing.T) {
	a := bitset.New(8)
	a.Add(1)
	a.Add(2)
	a.Remove(1)
	require.Equal(t, []int{2}, a.List())
	a.Clear()
	require.True(t, a.Empty())
}

func TestLen(t *testing.T) {
	a := bitset.New(100)
	for _, n := range []int{1, 33, 65, 99} {
		a.Add(n)
	}
	require.Equal(t, 4, a.Len())
}
