// SPDX-License-Identifier: MIT

package spheren

import (
	"math"
	"sort"
)

// angleTables builds the cumulative polar-measure tables for every
// output dimension 3..n over the given grid. tables[d] discretizes an
// antiderivative of sin^(d−2)θ, the marginal density of the polar
// angle on the (d−1)-sphere; only differences of its entries matter,
// so the integration constant is irrelevant.
//
// Base cases are closed-form (dimensions 3 and 4); above that the
// sin-power reduction formula
//
//	∫sinᵐθ dθ = (−cos θ·sinᵐ⁻¹θ + (m−1)·∫sinᵐ⁻²θ dθ) / m
//
// fills dimension d from dimension d−2, avoiding re-integration from
// scratch at every recursion level.
//
// Each table is strictly increasing along the grid in exact arithmetic
// (the densities are positive on (0, π)); in floats, tail increments of
// high dimensions can round to a tie, which invert's interval handling
// absorbs.
func angleTables(g *thetaGrid, n int) [][]float64 {
	nodes := len(g.theta)
	tables := make([][]float64, n+1)
	tables[3] = g.negCosine
	if n < 4 {
		return tables
	}
	tp4 := make([]float64, nodes)
	for i := range tp4 {
		tp4[i] = 0.5 * (g.theta[i] + g.sine[i]*g.negCosine[i])
	}
	tables[4] = tp4
	for d := 5; d <= n; d++ {
		m := float64(d - 3) // sin exponent of the reduction step
		prev := tables[d-2]
		tp := make([]float64, nodes)
		for i := range tp {
			tp[i] = (m*prev[i] + g.negCosine[i]*math.Pow(g.sine[i], m)) / (m + 1)
		}
		// At the tails of high dimensions the true increment drops below
		// one ULP of the running value and can round away; pin the table
		// sorted so the binary search in invert stays valid. The
		// adjustment never exceeds the rounding it repairs.
		for i := 1; i < nodes; i++ {
			if tp[i] < tp[i-1] {
				tp[i] = tp[i-1]
			}
		}
		tables[d] = tp
	}

	return tables
}

// invert solves tp(φ) = t for φ by monotone interpolation: binary
// search for the bracketing grid interval in the strictly increasing
// table, then linear interpolation within it. Exact equality with the
// first or last entry returns the grid endpoint.
//
// Draw targets are mapped into [tp[0], tp[last]] by construction, so a
// target outside that range is an internal invariant violation and
// panics; clamping it instead would skew the sampled measure.
func invert(tp, theta []float64, t float64) float64 {
	last := len(tp) - 1
	if t < tp[0] || t > tp[last] {
		panic("spheren: cumulative target outside table range")
	}
	i := sort.SearchFloat64s(tp, t) // smallest i with tp[i] >= t
	if i == 0 {
		return theta[0]
	}
	if tp[i] == t {
		return theta[i]
	}
	// Here tp[i-1] < t < tp[i], so the interval has positive width even
	// where rounding produced ties elsewhere in the table.
	w := (t - tp[i-1]) / (tp[i] - tp[i-1])

	return theta[i-1] + w*(theta[i]-theta[i-1])
}
