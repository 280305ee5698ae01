// File: hops_cache.go
// Role: pair-keyed store mapping an unordered vertex pair to the interior
// vertices of a shortest path between them.
//
// Storing only in canonical (low→high) orientation halves memory and
// doubles the hit rate for symmetric queries. The triangular layout is
// random-access O(1) with no hashing: row i (0 <= i < order-1) has length
// order-1-i; entry j holds the hops for pair (i, i+1+j).
package core

// HopsCache is a triangular array of cached shortest-path interiors,
// pre-sized to a graph's order. It is owned by exactly one Graph.
type HopsCache struct {
	// rows[i][j] holds the interior hops for pair (i, i+1+j), or nil if
	// that pair's entry is absent ("unknown"). An empty non-nil slice
	// means the pair is directly adjacent.
	rows [][][]int
}

// newHopsCache allocates an empty cache sized for a graph of the given order.
func newHopsCache(order int) *HopsCache {
	rows := make([][][]int, order-1)
	for i := range rows {
		rows[i] = make([][]int, order-1-i)
	}
	return &HopsCache{rows: rows}
}

// present reports whether rows[i][j] has been set (distinguishing "empty
// path, adjacent" from "absent, unknown"); a zero-length non-nil slice is
// present, nil is absent.
func present(hops []int) bool { return hops != nil }

// Get retrieves the cached interior hops between a and b, or (nil, false)
// if absent. a must not equal b. If a>b, the stored sequence is returned
// reversed so callers always see hops in the a→b direction.
func (c *HopsCache) Get(a, b int) ([]int, bool) {
	if a == b {
		panic("core: hops cache queried with a==b")
	}
	lo, hi := a, b
	reverse := false
	if lo > hi {
		lo, hi = hi, lo
		reverse = true
	}
	hops := c.rows[lo][hi-lo-1]
	if !present(hops) {
		return nil, false
	}
	if !reverse {
		out := make([]int, len(hops))
		copy(out, hops)
		return out, true
	}
	return reversed(hops), true
}

// Set stores hops as the interior path between a and b. Overwriting any
// existing entry, including an empty (adjacent) one, is prohibited and
// panics — callers must Clear first, since
// a silent overwrite would mask a stale cache entry bug (mirrors the
// original implementation's own assertion here).
func (c *HopsCache) Set(a, b int, hops []int) {
	if a == b {
		panic("core: hops cache set with a==b")
	}
	lo, hi := a, b
	store := hops
	if lo > hi {
		lo, hi = hi, lo
		store = reversed(hops)
	}
	if present(c.rows[lo][hi-lo-1]) {
		panic("core: overwriting a live hops cache entry; Clear first")
	}
	if store == nil {
		store = []int{}
	}
	c.rows[lo][hi-lo-1] = store
}

// Clear resets every entry to absent.
func (c *HopsCache) Clear() {
	for i := range c.rows {
		for j := range c.rows[i] {
			c.rows[i][j] = nil
		}
	}
}

// ExportIDs returns the cache contents as a plain nested-slice structure,
// suitable for re-keying through ImportIDs when duplicating a graph.
func (c *HopsCache) ExportIDs() [][][]int {
	out := make([][][]int, len(c.rows))
	for i, row := range c.rows {
		out[i] = make([][]int, len(row))
		for j, hops := range row {
			if hops == nil {
				continue
			}
			cp := make([]int, len(hops))
			copy(cp, hops)
			out[i][j] = cp
		}
	}
	return out
}

// ImportIDs fills an empty cache from a previous ExportIDs result. The
// cache must already be sized for the same order (via newHopsCache).
func (c *HopsCache) ImportIDs(ids [][][]int) {
	for i, row := range ids {
		for j, hops := range row {
			if hops == nil {
				continue
			}
			cp := make([]int, len(hops))
			copy(cp, hops)
			c.rows[i][j] = cp
		}
	}
}

// reversed returns a new slice with s's elements in reverse order.
func reversed(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
