// File: random.go
// Role: randomized edge completion, grounded on the original Python
// add_as_many_random_edges_as_possible and on builder/impl_random_regular.go's
// shuffle-then-pair pattern for deterministic-per-seed stub matching.

package core

import "math/rand"

// AddAsManyRandomEdgesAsPossible greedily wires up free ports at random.
// It runs up to Degree rounds. Each round takes a working list — the
// caller-supplied subset on the first call if limit is non-nil, otherwise
// every vertex with a free port — shuffles it, then pairs off: pop the
// first vertex u, scan the remainder for the first v with a free port not
// already adjacent to u, and add (u,v). Vertices found at full degree
// while scanning are dropped from further consideration.
//
// Termination: a round stops once fewer than two vertices remain with free
// ports. The algorithm is greedy and may leave up to one vertex short of
// full degree when order-1 == degree; otherwise it can leave arbitrary few
// free ports per round. It never fails; it simply does as well as the
// random order it was given allows.
//
// rng must be non-nil; callers own their own *rand.Rand (spec.md §5: each
// worker has an independent RNG).
func (g *Graph) AddAsManyRandomEdgesAsPossible(limit []int, rng *rand.Rand) {
	overall := limit
	if overall == nil {
		overall = g.verticesWithFreePorts()
	} else {
		overall = append([]int(nil), overall...)
	}

	for round := 0; round < g.degree; round++ {
		if len(overall) < 2 {
			break
		}

		current := append([]int(nil), overall...)
		rng.Shuffle(len(current), func(i, j int) { current[i], current[j] = current[j], current[i] })

		for len(current) > 1 {
			u := current[0]
			current = current[1:]

			if g.Vertex(u).Degree() == g.degree {
				overall = removeValue(overall, u)
				continue
			}

			matched := -1
			for _, v := range current {
				if g.Vertex(v).Degree() == g.degree {
					current = removeValue(current, v)
					overall = removeValue(overall, v)
					continue
				}
				if v == u || g.Vertex(u).hasNeighbor(v) {
					continue
				}
				matched = v
				break
			}
			if matched == -1 {
				continue
			}
			g.AddEdgeUnsafe(u, matched)
		}
	}
}

// verticesWithFreePorts returns the indices of every vertex not yet at
// full degree.
func (g *Graph) verticesWithFreePorts() []int {
	out := make([]int, 0, g.order)
	for i := range g.vertices {
		if g.vertices[i].Degree() < g.degree {
			out = append(out, i)
		}
	}
	return out
}

// removeValue returns s with the first occurrence of val removed, or s
// unchanged if val is absent. Iterating with a range inside a for loop
// above means this is sometimes called against a slice val is no longer
// in; that's fine, it's a no-op then.
func removeValue(s []int, val int) []int {
	for i, x := range s {
		if x == val {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
