// File: clone.go
// Role: deep duplication of a Graph, including its hops cache, for the
// enhancer tournament: every worker mutates its own independent copy.
// Grounded on core/methods_clone.go's Clone/CloneEmpty split and on the
// original duplicate()'s "fresh vertices, copied edges, copied analysis
// data" shape.

package core

// Clone returns an independent deep copy: fresh Vertex records, copied
// adjacency, a hops cache re-keyed to the new vertices' identities, and
// copied analysis fields (diameter/ASPL/MSPL, dirty, previousDiameter,
// lower bounds).
//
// Complexity: O(order + edges + cache entries).
func (g *Graph) Clone() *Graph {
	dup := &Graph{
		order:               g.order,
		degree:              g.degree,
		vertices:            make([]Vertex, g.order),
		diameter:            g.diameter,
		aspl:                g.aspl,
		mspl:                g.mspl,
		diameterLowerBound:  g.diameterLowerBound,
		asplLowerBound:      g.asplLowerBound,
		lowerBoundsComputed: g.lowerBoundsComputed,
		lowerBoundsDefined:  g.lowerBoundsDefined,
		previousDiameter:    g.previousDiameter,
		hopsCache:           newHopsCache(g.order),
		dirty:               g.dirty,
	}

	for i := range g.vertices {
		src := &g.vertices[i]
		dup.vertices[i] = Vertex{
			id:         src.id,
			edgesTo:    append([]int(nil), src.edgesTo...),
			breadcrumb: noBreadcrumb,
		}
	}

	// The hops cache is already keyed by plain int indices, which are
	// identical between g and dup (both arenas are indexed 0..order-1),
	// so an ID round-trip through ExportIDs/ImportIDs re-keys it for
	// free — no vertex-pointer translation is needed the way the
	// original per-object duplicate() required.
	dup.hopsCache.ImportIDs(g.hopsCache.ExportIDs())

	return dup
}
