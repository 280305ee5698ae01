package enhancer

import (
	"context"
	"math/rand"

	"github.com/lpirl-go/graphgolf/core"
)

// RandomlyRelinkAllInTooLongPaths finds every pair whose hop count exceeds
// the graph's diameter lower bound, frees a port at every vertex along
// each such path, and re-completes randomly over every vertex. Grounded on
// the original ModifyLongestPaths, generalized per spec.md §4.4 to use the
// lower bound (rather than the observed diameter) as the threshold.
type randomlyRelinkAllInTooLongPaths struct {
	diameterLowerBound int
	defined            bool
}

// NewRandomlyRelinkAllInTooLongPaths returns a fresh instance parameterized
// by the graph's diameter lower bound (diameterLB, defined).
func NewRandomlyRelinkAllInTooLongPaths(diameterLB int, defined bool) Enhancer {
	return &randomlyRelinkAllInTooLongPaths{diameterLowerBound: diameterLB, defined: defined}
}

func (*randomlyRelinkAllInTooLongPaths) Name() string { return "RandomlyRelinkAllInTooLongPaths" }

func (e *randomlyRelinkAllInTooLongPaths) ApplicableTo(g *core.Graph) bool {
	return e.defined && g.Order()-1 > g.Degree()
}

func (e *randomlyRelinkAllInTooLongPaths) Enhance(ctx context.Context, best *core.Graph, rng *rand.Rand, result chan<- *core.Graph) {
	runLoop(ctx, best, rng, result, 0, 1, e.modify)
}

func (e *randomlyRelinkAllInTooLongPaths) modify(g *core.Graph, rng *rand.Rand) error {
	paths, err := tooLongPairs(g, e.diameterLowerBound)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return ErrNoModification
	}

	touched := map[int]bool{}
	for _, path := range paths {
		for _, v := range path {
			touched[v] = true
		}
	}
	for v := range touched {
		ensureCanAddEdge(g, v, rng)
	}

	g.AddAsManyRandomEdgesAsPossible(nil, rng)
	return nil
}
