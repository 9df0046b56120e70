package spheren

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestThetaGrid_Endpoints verifies the grid spans [0, π] exactly and
// that the precomputed trig columns are mutually consistent.
func TestThetaGrid_Endpoints(t *testing.T) {
	g := newThetaGrid(gridNodes)
	require.Len(t, g.theta, gridNodes)

	assert.Equal(t, 0.0, g.theta[0])
	assert.InDelta(t, math.Pi, g.theta[gridNodes-1], 1e-15)
	for i := range g.theta {
		one := g.sine[i]*g.sine[i] + g.negCosine[i]*g.negCosine[i]
		require.InDelta(t, 1.0, one, 1e-12, "node %d", i)
	}
}

// TestAngleTables_StrictlyIncreasing: cumulative tables must increase
// strictly along the grid — a flat or decreasing segment would mean a
// broken recurrence. Above dimension 8 the true tail increments fall
// below one ULP, so strictness is only claimed where floats can carry
// it; higher dimensions are covered by the non-decreasing test.
func TestAngleTables_StrictlyIncreasing(t *testing.T) {
	g := newThetaGrid(gridNodes)
	tables := angleTables(g, 8)
	for d := 3; d <= 8; d++ {
		tp := tables[d]
		require.Len(t, tp, gridNodes, "dim %d", d)
		for i := 1; i < len(tp); i++ {
			require.Greater(t, tp[i], tp[i-1], "dim %d, node %d", d, i)
		}
	}
}

// TestAngleTables_NonDecreasingHighDim: construction pins every table
// sorted even where rounding eats the sub-ULP tail increments.
func TestAngleTables_NonDecreasingHighDim(t *testing.T) {
	g := newThetaGrid(gridNodes)
	tables := angleTables(g, 14)
	for d := 9; d <= 14; d++ {
		tp := tables[d]
		for i := 1; i < len(tp); i++ {
			require.GreaterOrEqual(t, tp[i], tp[i-1], "dim %d, node %d", d, i)
		}
	}
}

// TestAngleTables_ClosedFormDim5: the first recurrence step must
// reproduce the closed-form integral of sin³,
// ∫sin³θ dθ = −cos θ + cos³θ/3 (+ C, and here C works out to zero).
func TestAngleTables_ClosedFormDim5(t *testing.T) {
	g := newThetaGrid(gridNodes)
	tp := angleTables(g, 5)[5]
	for i, th := range g.theta {
		c := math.Cos(th)
		want := -c + c*c*c/3.0
		require.InDelta(t, want, tp[i], 1e-12, "node %d", i)
	}
}

// TestAngleTables_ClosedFormDim6: the step built on the dimension-4
// base case must reproduce ∫sin⁴θ dθ = 3θ/8 − sin 2θ/4 + sin 4θ/32.
func TestAngleTables_ClosedFormDim6(t *testing.T) {
	g := newThetaGrid(gridNodes)
	tp := angleTables(g, 6)[6]
	for i, th := range g.theta {
		want := 3.0*th/8.0 - math.Sin(2.0*th)/4.0 + math.Sin(4.0*th)/32.0
		require.InDelta(t, want, tp[i], 1e-12, "node %d", i)
	}
}

// TestAngleTables_Symmetry: sin-power densities are symmetric about
// π/2, so cumulative growth from the left end mirrors growth from the
// right end at every node.
func TestAngleTables_Symmetry(t *testing.T) {
	g := newThetaGrid(gridNodes)
	tables := angleTables(g, 8)
	last := gridNodes - 1
	for d := 3; d <= 8; d++ {
		tp := tables[d]
		for i := 0; i <= last; i++ {
			left := tp[i] - tp[0]
			right := tp[last] - tp[last-i]
			require.InDelta(t, left, right, 1e-9, "dim %d, node %d", d, i)
		}
	}
}

// TestInvert_Boundaries: exact equality with the table's first or last
// entry must return the grid endpoint, with no out-of-bounds access.
func TestInvert_Boundaries(t *testing.T) {
	g := newThetaGrid(gridNodes)
	tp := angleTables(g, 5)[5]
	last := len(tp) - 1

	assert.Equal(t, g.theta[0], invert(tp, g.theta, tp[0]))
	assert.Equal(t, g.theta[last], invert(tp, g.theta, tp[last]))
}

// TestInvert_RoundTrip: inverting a cumulative target and evaluating
// the table back at the resulting angle must recover the target.
// Forward evaluation reuses invert with the roles of the two monotone
// columns swapped (both are strictly increasing).
func TestInvert_RoundTrip(t *testing.T) {
	g := newThetaGrid(gridNodes)
	tp := angleTables(g, 7)[7]
	last := len(tp) - 1
	span := tp[last] - tp[0]

	for k := 0; k < 20; k++ {
		target := tp[0] + span*(float64(k)/20.0)
		phi := invert(tp, g.theta, target)
		back := invert(g.theta, tp, phi)
		require.InDelta(t, target, back, 1e-9, "step %d", k)
	}
}

// TestInvert_PanicsOutsideRange: a target outside the table range can
// only come from a construction bug; it must fail fast, not clamp.
func TestInvert_PanicsOutsideRange(t *testing.T) {
	g := newThetaGrid(gridNodes)
	tp := angleTables(g, 5)[5]
	last := len(tp) - 1

	assert.Panics(t, func() { invert(tp, g.theta, tp[0]-0.5) })
	assert.Panics(t, func() { invert(tp, g.theta, tp[last]+0.5) })
}
