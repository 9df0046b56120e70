// SPDX-License-Identifier: MIT

package spheren

import (
	"math"

	"github.com/katalvlaran/lowdisc/lds"
)

// SphereN generates uniformly distributed low-discrepancy points on
// the unit (n−1)-sphere embedded in n coordinates, n ≥ 4.
//
// Each level of the recursion owns one van der Corput stream for its
// polar angle and a nested generator of one dimension less for the
// equatorial block; the nesting is an explicit either/or pair of
// fields (boxed SphereN or terminal lds.Sphere), selected once at
// construction — the original's tagged variant, without interface
// dispatch. The angle tables are built once, bottom-up, and shared
// down the chain; Reseed never touches them.
//
// At n = 4 SphereN samples the same uniform S³ measure as
// lds.Sphere3Hopf, by numeric inversion instead of the Hopf closed
// form.
type SphereN struct {
	n     int
	vdc   *lds.VdCorput
	child *SphereN    // nested generator, nil at the innermost level
	term  *lds.Sphere // terminal stage, non-nil only when n == 4
	tp    []float64   // cumulative table for sin^(n−2), monotone increasing
	theta []float64   // shared grid angles (inversion x-values)
	t0    float64     // tp[0]
	span  float64     // tp[last] − tp[0]
}

// NewSphereN returns a generator of dimension n = len(bases), one base
// per coordinate; the recursive chain is driven by the first n−1 of
// them (the terminal 3-coordinate stage consumes two streams).
// Returns ErrNotEnoughBases for fewer than four bases and
// ErrBaseTooSmall if any base is below 2.
func NewSphereN(bases []uint64) (*SphereN, error) {
	if err := checkBases(bases, 4); err != nil {
		return nil, err
	}

	return buildSphereN(defaultGrid, angleTables(defaultGrid, len(bases)), bases), nil
}

// buildSphereN assembles the chain for pre-validated bases, reusing
// the tables built once for the outermost dimension.
func buildSphereN(g *thetaGrid, tables [][]float64, bases []uint64) *SphereN {
	n := len(bases)
	s := &SphereN{n: n, theta: g.theta, tp: tables[n]}
	s.vdc, _ = lds.NewVdCorput(bases[0])
	if n == 4 {
		s.term, _ = lds.NewSphere(bases[1:3])
	} else {
		s.child = buildSphereN(g, tables, bases[1:])
	}
	s.t0 = s.tp[0]
	s.span = s.tp[len(s.tp)-1] - s.t0

	return s
}

// Dimension reports the length of the vectors Pop returns.
func (s *SphereN) Dimension() int {
	return s.n
}

// Pop returns the next point on the unit (n−1)-sphere as a freshly
// allocated n-vector.
//
// Per level: draw u, map it linearly into the table's own closed range
// [tp[0], tp[last]], invert the table to the polar angle φ, scale the
// nested (n−1)-point by sin φ and append cos φ.
func (s *SphereN) Pop() []float64 {
	ti := s.t0 + s.span*s.vdc.Pop()
	if last := s.tp[len(s.tp)-1]; ti > last {
		// u < 1 keeps ti inside the table mathematically; only the final
		// rounding of t0 + span·u can land one ULP past the last entry.
		ti = last
	}
	xi := invert(s.tp, s.theta, ti)
	sinphi, cosphi := math.Sin(xi), math.Cos(xi)

	var point []float64
	if s.child != nil {
		point = s.child.Pop()
	} else {
		p := s.term.Pop()
		point = make([]float64, 3, s.n)
		copy(point, p[:])
	}
	for i := range point {
		point[i] *= sinphi
	}

	return append(point, cosphi)
}

// Reseed rewinds every owned stream — this level's and the whole
// nested chain's — to position seed. The tables are a function of
// dimension alone and are left untouched.
func (s *SphereN) Reseed(seed uint64) {
	s.vdc.Reseed(seed)
	if s.child != nil {
		s.child.Reseed(seed)
	} else {
		s.term.Reseed(seed)
	}
}
