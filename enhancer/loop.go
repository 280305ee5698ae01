package enhancer

import (
	"context"
	"errors"
	"math/rand"

	"github.com/lpirl-go/graphgolf/core"
)

// runLoop is the one attempt loop every concrete enhancer shares (spec.md
// §4.4's "common loop"): duplicate best, apply modify, analyze, and publish
// on result the first time the candidate beats best. It returns (without
// publishing) once ctx is cancelled, or — if maxAttempts > 0 — once that
// many attempts have run without success.
//
// When mutationsPerCandidate > 1, this realizes spec.md §4.4's "bounded-
// attempts variant": modify is called repeatedly against the same
// duplicated candidate (accumulating mutations) before a single Analyze,
// instead of analyzing after every individual modification. If any call in
// the chain fails, the whole candidate is discarded and the next attempt
// restarts fresh from best.
//
// A candidate whose Analyze reports core.ErrGraphPartitioned is discarded
// silently and the attempt retried, exactly as spec.md §4.4 and §7
// describe.
func runLoop(ctx context.Context, best *core.Graph, rng *rand.Rand, result chan<- *core.Graph, maxAttempts, mutationsPerCandidate int, modify modifier) {
	if mutationsPerCandidate < 1 {
		mutationsPerCandidate = 1
	}

	for attempt := 0; maxAttempts <= 0 || attempt < maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		candidate := best.Clone()

		failed := false
		for m := 0; m < mutationsPerCandidate; m++ {
			if err := modify(candidate, rng); err != nil {
				if errors.Is(err, ErrNoModification) {
					return
				}
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		if err := candidate.Analyze(); err != nil {
			// core.ErrGraphPartitioned and anything else alike: discard
			// this candidate and try again.
			continue
		}

		if candidate.Less(best) {
			select {
			case result <- candidate:
			case <-ctx.Done():
			}
			return
		}
	}
}
