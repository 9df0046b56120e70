// SPDX-License-Identifier: MIT

package spheren

import "math"

// gridNodes is the fixed resolution of the angle grid over [0, π].
// The reference tables use 300 nodes; the interpolation error this
// leaves is far below the discrepancy of any practical draw count, and
// tuning it further is out of scope.
const gridNodes = 300

// thetaGrid is the shared evaluation grid for all cumulative tables:
// evenly spaced angles over [0, π] with their sines and the
// antiderivative of sin (−cos) precomputed once. It is an explicit
// read-only value passed into table construction rather than an
// implicit global, so tables stay pure functions of (grid, dimension).
type thetaGrid struct {
	theta     []float64 // grid angles, theta[i] = i·π/(nodes−1)
	sine      []float64 // sin(theta)
	negCosine []float64 // −cos(theta)
}

// newThetaGrid builds a grid with the given node count (≥ 2).
func newThetaGrid(nodes int) *thetaGrid {
	g := &thetaGrid{
		theta:     make([]float64, nodes),
		sine:      make([]float64, nodes),
		negCosine: make([]float64, nodes),
	}
	step := math.Pi / float64(nodes-1)
	for i := range g.theta {
		t := float64(i) * step
		g.theta[i] = t
		g.sine[i] = math.Sin(t)
		g.negCosine[i] = -math.Cos(t)
	}

	return g
}

// defaultGrid backs every generator constructed through the public
// API. Immutable after init; safe to share across goroutines.
var defaultGrid = newThetaGrid(gridNodes)
