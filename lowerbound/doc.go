// Package lowerbound computes the theoretical Moore-bound lower bounds on
// diameter and average shortest path length for a regular graph of a given
// order and degree.
//
// Ported from the original implementation's _calculate_lower_bounds, which
// in turn credits http://research.nii.ac.jp/graphgolf/py/create-random.py.
// Compute is a pure function: no graph, no allocation beyond its return
// values, safe to call from any number of goroutines concurrently.
package lowerbound
