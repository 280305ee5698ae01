package lowerbound_test

import (
	"testing"

	"github.com/lpirl-go/graphgolf/lowerbound"
	"github.com/stretchr/testify/require"
)

func TestComputeUndefinedBelowMinimums(t *testing.T) {
	_, _, ok := lowerbound.Compute(1, 4)
	require.False(t, ok)
	_, _, ok = lowerbound.Compute(10, 1)
	require.False(t, ok)
}

func TestComputeOrder10Degree3(t *testing.T) {
	// Hand-derived from the Moore-bound recurrence: the r=1 sphere covers
	// 1+3=4 vertices, the r=2 sphere would cover 4+6=10 which already
	// meets order, so diameter=2 and aspl=(3 + 2*(10-4))/9 = 15/9.
	d, aspl, ok := lowerbound.Compute(10, 3)
	require.True(t, ok)
	require.Equal(t, 2, d)
	require.InDelta(t, 15.0/9.0, aspl, 1e-9)
}

func TestComputeMonotoneInOrder(t *testing.T) {
	_, aspl1, _ := lowerbound.Compute(10, 4)
	_, aspl2, _ := lowerbound.Compute(100, 4)
	require.Less(t, aspl1, aspl2, "more vertices at fixed degree cannot lower the ASPL bound")
}

func TestComputeDegenerateWhenOrderMinusOneEqualsDegree(t *testing.T) {
	// The Moore-bound recurrence's first sphere already reaches order
	// when order-1==degree (a complete graph is realizable); the formula
	// as specified degenerates to a diameter bound of 0 here, a known,
	// intentionally-preserved limitation rather than a tight bound.
	d, aspl, ok := lowerbound.Compute(5, 4)
	require.True(t, ok)
	require.Equal(t, 0, d)
	require.InDelta(t, 0.0, aspl, 1e-9)
}
