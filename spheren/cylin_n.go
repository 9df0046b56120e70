// SPDX-License-Identifier: MIT

package spheren

import (
	"math"

	"github.com/katalvlaran/lowdisc/lds"
)

// CylinN generates low-discrepancy points of dimension len(bases)+1 on
// the unit sphere under the CYLINDRICAL EQUAL-AREA measure: every
// recursion level maps its draw linearly to cos φ ∈ [−1, 1] — no
// table, no angle inversion, no sin-power weighting.
//
// This is a distinct sampling measure, not an approximation of
// SphereN's uniform surface measure. The two agree only on S²
// (Archimedes' theorem), where the innermost VdCorput+Circle stage
// lives; every level stacked above it skews density toward the poles
// of its axis. Keep it when the equal-area projection itself is the
// target distribution; use SphereN for uniform points.
type CylinN struct {
	vdc    *lds.VdCorput
	child  *CylinN     // nested generator, nil at the innermost level
	circle *lds.Circle // terminal stage, non-nil only at two bases
}

// NewCylinN returns a generator over the given bases, one stream per
// base; points have dimension len(bases)+1. Returns ErrNotEnoughBases
// for fewer than two bases and ErrBaseTooSmall if any base is below 2.
func NewCylinN(bases []uint64) (*CylinN, error) {
	if err := checkBases(bases, 2); err != nil {
		return nil, err
	}

	return buildCylinN(bases), nil
}

func buildCylinN(bases []uint64) *CylinN {
	c := &CylinN{}
	c.vdc, _ = lds.NewVdCorput(bases[0])
	if len(bases) == 2 {
		c.circle, _ = lds.NewCircle(bases[1])
	} else {
		c.child = buildCylinN(bases[1:])
	}

	return c
}

// Dimension reports the length of the vectors Pop returns.
func (c *CylinN) Dimension() int {
	d := 2 // terminal circle
	for n := c; n.child != nil; n = n.child {
		d++
	}

	return d + 1
}

// Pop returns the next point as a freshly allocated vector: per level,
// cos φ = 2u − 1, the nested point scaled by sin φ, cos φ appended.
func (c *CylinN) Pop() []float64 {
	cosphi := 2.0*c.vdc.Pop() - 1.0 // linear in u: the equal-area axis map
	sinphi := math.Sqrt(1.0 - cosphi*cosphi)

	var point []float64
	if c.child != nil {
		point = c.child.Pop()
	} else {
		p := c.circle.Pop()
		point = []float64{p[0], p[1]}
	}
	for i := range point {
		point[i] *= sinphi
	}

	return append(point, cosphi)
}

// Reseed rewinds every owned stream down the chain to position seed.
func (c *CylinN) Reseed(seed uint64) {
	c.vdc.Reseed(seed)
	if c.child != nil {
		c.child.Reseed(seed)
	} else {
		c.circle.Reseed(seed)
	}
}
