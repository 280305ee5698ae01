package enhancer

import (
	"context"
	"math/rand"

	"github.com/lpirl-go/graphgolf/core"
)

// UnlinkPercentOfVertices samples floor(percent*order/100) random
// vertices, removes every edge incident to each, and re-completes the
// freed ports randomly over every vertex left with a free port (the sample
// and its former neighbors alike).
type unlinkPercentOfVertices struct {
	percent int
}

// NewUnlinkPercentOfVertices returns a fresh instance parameterized by the
// percentage of vertices to fully unlink per modification.
func NewUnlinkPercentOfVertices(percent int) Enhancer {
	return &unlinkPercentOfVertices{percent: percent}
}

func (e *unlinkPercentOfVertices) Name() string {
	switch e.percent {
	case 5:
		return "UnlinkPercent5OfVertices"
	case 10:
		return "UnlinkPercent10OfVertices"
	case 50:
		return "UnlinkPercent50OfVertices"
	default:
		return "UnlinkPercentOfVertices"
	}
}

func (e *unlinkPercentOfVertices) sampleSize(order int) int {
	return e.percent * order / 100
}

func (e *unlinkPercentOfVertices) ApplicableTo(g *core.Graph) bool {
	return g.Order()-1 > g.Degree() && e.sampleSize(g.Order()) >= 2
}

func (e *unlinkPercentOfVertices) Enhance(ctx context.Context, best *core.Graph, rng *rand.Rand, result chan<- *core.Graph) {
	runLoop(ctx, best, rng, result, 0, 1, e.modify)
}

func (e *unlinkPercentOfVertices) modify(g *core.Graph, rng *rand.Rand) error {
	n := e.sampleSize(g.Order())
	if n < 2 {
		return ErrNoModification
	}

	sampled := sampleDistinct(g.Order(), n, rng)
	for _, v := range sampled {
		for g.Vertex(v).Degree() > 0 {
			neighbor := g.Vertex(v).Neighbors()[0]
			g.RemoveEdgeUnsafe(v, neighbor)
		}
	}

	g.AddAsManyRandomEdgesAsPossible(nil, rng)
	return nil
}
