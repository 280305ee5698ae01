package enhancer

import (
	"math/rand"

	"github.com/lpirl-go/graphgolf/core"
)

// removeRandomEdge shuffles v's neighbors and removes the edge to the
// first one whose removal is acceptable: its other endpoint either keeps
// at least one neighbor afterward, or allowDisconnect permits dropping it
// to zero. Returns false if v has no edges at all.
func removeRandomEdge(g *core.Graph, v int, rng *rand.Rand, allowDisconnect bool) bool {
	neighbors := g.Vertex(v).Neighbors()
	if len(neighbors) == 0 {
		return false
	}
	rng.Shuffle(len(neighbors), func(i, j int) { neighbors[i], neighbors[j] = neighbors[j], neighbors[i] })

	for _, other := range neighbors {
		if allowDisconnect || g.Vertex(other).Degree() > 1 {
			g.RemoveEdgeUnsafe(v, other)
			return true
		}
	}
	return false
}

// ensureCanAddEdge frees a port at v if it is already saturated, by
// removing one random incident edge. It is a no-op if v has a free port.
func ensureCanAddEdge(g *core.Graph, v int, rng *rand.Rand) {
	if g.Vertex(v).Degree() >= g.Degree() {
		removeRandomEdge(g, v, rng, true)
	}
}

// mostDistantPairs returns every unordered vertex pair whose shortest-path
// hop count equals g's current diameter (the pairs that realize it).
// g must be clean and analyzed.
func mostDistantPairs(g *core.Graph) ([][2]int, error) {
	target := g.Diameter()
	var pairs [][2]int
	for a := 0; a < g.Order(); a++ {
		for b := a + 1; b < g.Order(); b++ {
			hops, err := g.Hops(a, b)
			if err != nil {
				return nil, err
			}
			if len(hops)+1 == target {
				pairs = append(pairs, [2]int{a, b})
			}
		}
	}
	return pairs, nil
}

// tooLongPairs returns every unordered vertex pair whose hop count exceeds
// the given diameter lower bound, together with the full path (including
// endpoints) realizing that distance.
func tooLongPairs(g *core.Graph, diameterLowerBound int) ([][]int, error) {
	var paths [][]int
	for a := 0; a < g.Order(); a++ {
		for b := a + 1; b < g.Order(); b++ {
			hops, err := g.Hops(a, b)
			if err != nil {
				return nil, err
			}
			if len(hops)+1 > diameterLowerBound {
				path := make([]int, 0, len(hops)+2)
				path = append(path, a)
				path = append(path, hops...)
				path = append(path, b)
				paths = append(paths, path)
			}
		}
	}
	return paths, nil
}

// sampleDistinct returns n distinct vertex indices drawn uniformly from
// [0, order) using rng.
func sampleDistinct(order, n int, rng *rand.Rand) []int {
	if n > order {
		n = order
	}
	perm := rng.Perm(order)
	return append([]int(nil), perm[:n]...)
}
