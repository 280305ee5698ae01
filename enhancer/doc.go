// Package enhancer implements the mutation strategies ("enhancers") that
// race against the current best graph in the search tournament.
//
// Every enhancer shares one loop (see loop.go): duplicate the best graph,
// apply a strategy-specific modification, analyze the candidate, and
// publish it if it is strictly better. Enhancers differ only in their
// modification step; see relink_most_distant.go, connect_most_distant.go,
// relink_too_long_paths.go, replace_percent_edges.go, and
// unlink_percent_vertices.go for the five concrete strategies.
//
// Grounded on the original lib/enhancers.py (AbstractBaseEnhancer's shared
// enhance() loop and the five registered subclasses) and on
// builder/impl_random_regular.go's pattern of a deterministic-per-seed RNG
// threaded explicitly through every call rather than a package-level
// global.
package enhancer

import "errors"

// ErrNoModification is returned by a mutator's modify step when it cannot
// produce a candidate at all (e.g. the graph is already complete); the
// enhancer's Enhance then returns without publishing, exactly as the
// original returns None from modify_graph.
var ErrNoModification = errors.New("enhancer: no modification available")
