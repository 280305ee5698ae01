package enhancer

import (
	"context"
	"math/rand"

	"github.com/lpirl-go/graphgolf/core"
)

// RandomlyReplacePercentOfEdges samples floor(percent*order/100) random
// vertices, removes one random incident edge from each (optionally
// preserving the other endpoint's connectivity), and re-completes the
// freed ports randomly over every vertex left with a free port, so the
// removed edges' other endpoints are refilled too. Grounded on the original
// RandomlyReplaceAPercentageEdgesEnhancer (registered at 5/10/50 percent).
//
// This mutator uses the bounded-attempts variant (spec.md §4.4): each
// attempt chains up to order*degree modify calls onto the same candidate
// before a single Analyze, since repeatedly sampling-and-replacing small
// percentages of edges on one candidate explores a deeper neighborhood
// than a single pass.
type randomlyReplacePercentOfEdges struct {
	percent         int
	allowDisconnect bool
}

// NewRandomlyReplacePercentOfEdges returns a fresh instance parameterized
// by the percentage of vertices to touch per modification.
func NewRandomlyReplacePercentOfEdges(percent int) Enhancer {
	return &randomlyReplacePercentOfEdges{percent: percent, allowDisconnect: true}
}

func (e *randomlyReplacePercentOfEdges) Name() string {
	switch e.percent {
	case 5:
		return "RandomlyReplace5PercentEdges"
	case 10:
		return "RandomlyReplace10PercentEdges"
	case 50:
		return "RandomlyReplace50PercentEdges"
	default:
		return "RandomlyReplacePercentOfEdges"
	}
}

func (e *randomlyReplacePercentOfEdges) sampleSize(order int) int {
	return e.percent * order / 100
}

func (e *randomlyReplacePercentOfEdges) ApplicableTo(g *core.Graph) bool {
	return g.Order()-1 > g.Degree() && e.sampleSize(g.Order()) >= 2
}

func (e *randomlyReplacePercentOfEdges) Enhance(ctx context.Context, best *core.Graph, rng *rand.Rand, result chan<- *core.Graph) {
	mutationsPerCandidate := best.Order() * best.Degree()
	runLoop(ctx, best, rng, result, 0, mutationsPerCandidate, e.modify)
}

func (e *randomlyReplacePercentOfEdges) modify(g *core.Graph, rng *rand.Rand) error {
	n := e.sampleSize(g.Order())
	if n < 2 {
		return ErrNoModification
	}

	sampled := sampleDistinct(g.Order(), n, rng)
	touched := make([]int, 0, n)
	for _, v := range sampled {
		if removeRandomEdge(g, v, rng, e.allowDisconnect) {
			touched = append(touched, v)
		}
	}

	g.AddAsManyRandomEdgesAsPossible(nil, rng)
	return nil
}
