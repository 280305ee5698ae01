package enhancer

import (
	"context"
	"math/rand"

	"github.com/lpirl-go/graphgolf/core"
)

// Enhancer is a mutation strategy that attempts to produce a strictly
// better graph than the one it started from.
type Enhancer interface {
	// Name identifies the strategy for logging and registry enumeration.
	Name() string

	// ApplicableTo is a cheap guard: false means this enhancer has no
	// useful work to do against g (e.g. g is already complete, or this
	// enhancer's parameterization would touch fewer than two
	// vertices/edges).
	ApplicableTo(g *core.Graph) bool

	// Enhance runs modify-analyze-compare attempts against best until it
	// publishes a strictly better analyzed graph on result, the attempt
	// budget (if any) is exhausted, or ctx is cancelled. It never mutates
	// best; every attempt starts from a fresh best.Clone().
	Enhance(ctx context.Context, best *core.Graph, rng *rand.Rand, result chan<- *core.Graph)
}

// modifier is the one piece that actually differs between the five
// concrete enhancers: given a candidate graph (already a clone of best)
// and an RNG, mutate it in place (or return ErrNoModification).
type modifier func(g *core.Graph, rng *rand.Rand) error

// Factory builds a fresh Enhancer instance. The registry holds one Factory
// per enhancer the Controller should race each round; duplicate factories
// for the same strategy are permitted and simply weight that strategy
// higher in the tournament (spec.md §4.5).
type Factory func() Enhancer
