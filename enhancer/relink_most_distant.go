package enhancer

import (
	"context"
	"math/rand"

	"github.com/lpirl-go/graphgolf/core"
)

// RandomlyRelinkMostDistant finds every vertex pair realizing the current
// diameter; for each endpoint that is at full degree, it frees a port by
// removing a random incident edge, then re-completes the graph randomly
// over every vertex. Grounded on the original ModifyLongestPaths class,
// generalized per spec.md §4.4's table (which splits that single Python
// class into two distinct mutators: this one and ConnectMostDistant).
type randomlyRelinkMostDistant struct{}

// NewRandomlyRelinkMostDistant returns a fresh instance of this strategy.
func NewRandomlyRelinkMostDistant() Enhancer { return &randomlyRelinkMostDistant{} }

func (*randomlyRelinkMostDistant) Name() string { return "RandomlyRelinkMostDistant" }

func (*randomlyRelinkMostDistant) ApplicableTo(g *core.Graph) bool {
	return g.Order()-1 > g.Degree()
}

func (e *randomlyRelinkMostDistant) Enhance(ctx context.Context, best *core.Graph, rng *rand.Rand, result chan<- *core.Graph) {
	runLoop(ctx, best, rng, result, 0, 1, e.modify)
}

func (*randomlyRelinkMostDistant) modify(g *core.Graph, rng *rand.Rand) error {
	pairs, err := mostDistantPairs(g)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return ErrNoModification
	}

	for _, pair := range pairs {
		for _, v := range pair {
			if g.Vertex(v).Degree() >= g.Degree() {
				removeRandomEdge(g, v, rng, true)
			}
		}
	}

	g.AddAsManyRandomEdgesAsPossible(nil, rng)
	return nil
}
