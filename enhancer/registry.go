package enhancer

// NewRegistry builds the ordered, immutable list of Factory values the
// Controller races each round. Grounded on the original enhancers module,
// whose registered-classes list repeats RandomlyReplaceAPercentageEdges at
// three distinct percentages; spec.md §4.5 explicitly permits duplicate
// registrations of the same strategy, which simply weights it higher in
// the tournament. UnlinkPercentOfVertices gets the same three percentages
// for symmetry, since the original never defines a vertex-unlinking
// enhancer at all — this is a supplemented strategy named directly in
// spec.md §4.4's table.
//
// diameterLowerBound and diameterLowerBoundDefined parameterize the one
// enhancer (RandomlyRelinkAllInTooLongPaths) whose applicability and
// threshold depend on a value fixed for the whole run (order, degree
// never change mid-run, so the bound never changes either).
func NewRegistry(diameterLowerBound int, diameterLowerBoundDefined bool) []Factory {
	return []Factory{
		func() Enhancer { return NewRandomlyRelinkMostDistant() },
		func() Enhancer { return NewConnectMostDistant() },
		func() Enhancer {
			return NewRandomlyRelinkAllInTooLongPaths(diameterLowerBound, diameterLowerBoundDefined)
		},
		func() Enhancer { return NewRandomlyReplacePercentOfEdges(5) },
		func() Enhancer { return NewRandomlyReplacePercentOfEdges(10) },
		func() Enhancer { return NewRandomlyReplacePercentOfEdges(50) },
		func() Enhancer { return NewUnlinkPercentOfVertices(5) },
		func() Enhancer { return NewUnlinkPercentOfVertices(10) },
		func() Enhancer { return NewUnlinkPercentOfVertices(50) },
	}
}
