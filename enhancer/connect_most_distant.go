package enhancer

import (
	"context"
	"math/rand"

	"github.com/lpirl-go/graphgolf/core"
)

// ConnectMostDistant finds every vertex pair realizing the current
// diameter, picks one of them at random, frees a port at either saturated
// endpoint of that pair and adds a direct edge between the two — a more
// targeted move than RandomlyRelinkMostDistant's full random
// re-completion. The other pairs realizing the diameter are left as they
// are in that modification.
type connectMostDistant struct{}

// NewConnectMostDistant returns a fresh instance of this strategy.
func NewConnectMostDistant() Enhancer { return &connectMostDistant{} }

func (*connectMostDistant) Name() string { return "ConnectMostDistant" }

func (*connectMostDistant) ApplicableTo(g *core.Graph) bool {
	return g.Order()-1 > g.Degree()
}

func (e *connectMostDistant) Enhance(ctx context.Context, best *core.Graph, rng *rand.Rand, result chan<- *core.Graph) {
	runLoop(ctx, best, rng, result, 0, 1, e.modify)
}

func (*connectMostDistant) modify(g *core.Graph, rng *rand.Rand) error {
	pairs, err := mostDistantPairs(g)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return ErrNoModification
	}

	rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	a, b := pairs[0][0], pairs[0][1]

	if g.Vertex(a).Degree() >= g.Degree() {
		ensureCanAddEdge(g, a, rng)
	}
	if g.Vertex(b).Degree() >= g.Degree() {
		ensureCanAddEdge(g, b, rng)
	}
	if a == b || g.Vertex(a).Degree() >= g.Degree() || g.Vertex(b).Degree() >= g.Degree() {
		return ErrNoModification
	}
	for _, n := range g.Vertex(a).Neighbors() {
		if n == b {
			return ErrNoModification
		}
	}

	g.AddEdgeUnsafe(a, b)
	return nil
}
