package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHopsCacheCanonicalDirection(t *testing.T) {
	c := newHopsCache(5)
	c.Set(1, 3, []int{2})

	hops, ok := c.Get(1, 3)
	require.True(t, ok)
	require.Equal(t, []int{2}, hops)

	reverseHops, ok := c.Get(3, 1)
	require.True(t, ok)
	require.Equal(t, []int{2}, reverseHops, "single interior vertex reverses to itself")
}

func TestHopsCacheReverseLookupMultiHop(t *testing.T) {
	c := newHopsCache(6)
	c.Set(0, 5, []int{1, 2, 3})

	hops, ok := c.Get(5, 0)
	require.True(t, ok)
	require.Equal(t, []int{3, 2, 1}, hops)
}

func TestHopsCacheSetProhibitsOverwrite(t *testing.T) {
	c := newHopsCache(4)
	c.Set(0, 1, []int{})
	require.Panics(t, func() { c.Set(0, 1, []int{2}) })
}

func TestHopsCacheClear(t *testing.T) {
	c := newHopsCache(4)
	c.Set(0, 1, []int{})
	c.Clear()
	_, ok := c.Get(0, 1)
	require.False(t, ok)
	// no longer prohibited after Clear
	require.NotPanics(t, func() { c.Set(0, 1, []int{2}) })
}

func TestHopsCacheExportImportRoundTrip(t *testing.T) {
	src := newHopsCache(5)
	src.Set(0, 1, []int{})
	src.Set(0, 2, []int{1})
	src.Set(3, 4, []int{})

	ids := src.ExportIDs()

	dst := newHopsCache(5)
	dst.ImportIDs(ids)

	for _, pair := range [][2]int{{0, 1}, {0, 2}, {3, 4}} {
		want, wantOK := src.Get(pair[0], pair[1])
		got, gotOK := dst.Get(pair[0], pair[1])
		require.Equal(t, wantOK, gotOK)
		require.Equal(t, want, got)
	}
}

func TestHopsCacheAbsentEntry(t *testing.T) {
	c := newHopsCache(4)
	_, ok := c.Get(0, 2)
	require.False(t, ok)
}
