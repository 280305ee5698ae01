// File: controller.go
// Role: the tournament loop — instantiate applicable enhancers, race them
// concurrently, adopt the first strictly-better result, repeat until
// one-shot or user interrupt. Grounded on spec.md §4.6/§5: workers are
// realized as goroutines holding independent graph clones and independent
// *rand.Rand sources, racing onto one buffered, per-round result channel;
// "hard termination" of losers is realized as context cancellation, which
// enhancer.runLoop already checks at every attempt boundary.
package controller

import (
	"context"
	"math/rand"
	"time"

	"github.com/lpirl-go/graphgolf/core"
	"github.com/lpirl-go/graphgolf/edgeio"
	"github.com/lpirl-go/graphgolf/enhancer"
	"github.com/lpirl-go/graphgolf/lowerbound"
	"github.com/rs/zerolog"
)

// Run parses no configuration itself (cmd/graphgolf does that); it takes an
// already-validated Config and drives the tournament until ctx is cancelled
// (user interrupt), a round ends without a winner (see runRound) or, in
// one-shot mode, after the first adoption. On
// return it has always persisted the current best graph to an edge-list
// file, matching spec.md §4.6 step 5.
func Run(ctx context.Context, cfg Config, log zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	best, err := initialGraph(cfg)
	if err != nil {
		return err
	}

	diameterLB, asplLB, defined := lowerbound.Compute(cfg.Order, cfg.Degree)
	best.SetLowerBounds(diameterLB, asplLB, defined)

	// Random completion is not guaranteed to connect the graph (spec.md §9);
	// a loaded edge list is used as-is and any partition is the caller's
	// problem to report, not retry past. A fixed seed is stepped on each
	// retry so the rebuilt graph differs from the partitioned one.
	retryCfg := cfg
	for {
		err := best.Analyze()
		if err == nil {
			break
		}
		if cfg.EdgesPath != "" {
			return err
		}
		if retryCfg.Seed != 0 {
			retryCfg.Seed++
		}
		best, err = initialGraph(retryCfg)
		if err != nil {
			return err
		}
		best.SetLowerBounds(diameterLB, asplLB, defined)
	}
	logGraph(log, "initial graph", best, defined, diameterLB, asplLB)

	registry := enhancer.NewRegistry(diameterLB, defined)

	for round := 1; ; round++ {
		select {
		case <-ctx.Done():
			return persist(log, best)
		default:
		}

		winner := runRound(ctx, cfg, registry, best, round, log)
		if winner == nil {
			// ctx was cancelled mid-round with nobody improving on best, no
			// enhancer applies to best, or the serial enhancer gave up.
			return persist(log, best)
		}

		best = winner
		logGraph(log, "adopted graph", best, defined, diameterLB, asplLB)

		if cfg.Once {
			return persist(log, best)
		}
	}
}

// runRound instantiates one worker per applicable enhancer and returns the
// first strictly-better graph published. It returns nil if ctx is cancelled
// first, if no enhancer is applicable to best, or, in serial mode, if the
// one enhancer run returns without publishing.
func runRound(ctx context.Context, cfg Config, registry []enhancer.Factory, best *core.Graph, round int, log zerolog.Logger) *core.Graph {
	applicable := make([]enhancer.Enhancer, 0, len(registry))
	for _, factory := range registry {
		e := factory()
		if e.ApplicableTo(best) {
			applicable = append(applicable, e)
		}
	}
	if len(applicable) == 0 {
		return nil
	}

	if cfg.Serial {
		return runSerial(ctx, cfg, applicable[0], best, round)
	}
	return runConcurrent(ctx, cfg, applicable, best, round, log)
}

// runSerial runs exactly the first applicable enhancer, blocking until it
// finds an improvement or ctx is cancelled. Per spec.md §6, this is a
// debugging aid only: because the enhancer's own attempt budget is
// unbounded, it never yields to let a different strategy race it.
func runSerial(ctx context.Context, cfg Config, e enhancer.Enhancer, best *core.Graph, round int) *core.Graph {
	result := make(chan *core.Graph, 1)
	rng := workerRand(cfg, round, 0)
	e.Enhance(ctx, best, rng, result)
	select {
	case g := <-result:
		return g
	default:
		return nil
	}
}

// runConcurrent launches every applicable enhancer as its own goroutine,
// racing onto a shared per-round result channel, and returns the first
// winner. All losing goroutines are cancelled via roundCtx and their
// eventual (buffered, non-blocking) sends are simply never read.
func runConcurrent(ctx context.Context, cfg Config, workers []enhancer.Enhancer, best *core.Graph, round int, log zerolog.Logger) *core.Graph {
	roundCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	result := make(chan *core.Graph, len(workers))
	for i, e := range workers {
		go runWorker(e, roundCtx, best, workerRand(cfg, round, i), result, log)
	}

	select {
	case g := <-result:
		return g
	case <-ctx.Done():
		return nil
	}
}

// runWorker isolates one enhancer's attempt loop from the rest of the
// round: a panicking worker is simply a lost strategy for this round
// (spec.md §7's "worker failure"), not a crash of the whole search. The
// result channel never receives from a worker that panicked; the
// Controller already tolerates that silently.
func runWorker(e enhancer.Enhancer, ctx context.Context, best *core.Graph, rng *rand.Rand, result chan<- *core.Graph, log zerolog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Str("enhancer", e.Name()).Interface("panic", r).Msg("worker failed")
		}
	}()
	e.Enhance(ctx, best, rng, result)
}

// workerRand returns a fresh *rand.Rand for the worker at (round,index).
// If cfg.Seed is zero, seeding is unspecified per spec.md §5 and derived
// from wall-clock time; tests that need determinism set cfg.Seed.
func workerRand(cfg Config, round, index int) *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed + int64(round)*1000 + int64(index)))
}

// initialGraph builds the starting graph: loaded from an edge list if
// cfg.EdgesPath is set (no random completion added, per spec.md §4.6 step
// 2), otherwise a fresh graph completed via randomized edge assignment.
func initialGraph(cfg Config) (*core.Graph, error) {
	if cfg.EdgesPath != "" {
		return edgeio.Read(cfg.EdgesPath, cfg.Order, cfg.Degree)
	}

	g := core.New(cfg.Order, cfg.Degree)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g.AddAsManyRandomEdgesAsPossible(nil, rng)
	return g, nil
}

// persist writes best to its conventional output filename and logs the
// result. It is the Controller's one externally visible side effect on
// interrupt or one-shot completion.
func persist(log zerolog.Logger, best *core.Graph) error {
	name := edgeio.OutputFilename(best)
	if err := edgeio.Write(name, best); err != nil {
		return err
	}
	log.Info().Str("file", name).Msg("persisted best graph")
	return nil
}

func logGraph(log zerolog.Logger, msg string, g *core.Graph, defined bool, diameterLB int, asplLB float64) {
	event := log.Info().
		Int("order", g.Order()).
		Int("degree", g.Degree()).
		Int("diameter", g.Diameter()).
		Float64("aspl", g.ASPL()).
		Float64("mspl", g.MSPL())
	if defined {
		event = event.Int("diameter_lower_bound", diameterLB).Float64("aspl_lower_bound", asplLB).Bool("ideal", g.Ideal())
	}
	event.Msg(msg)
}
