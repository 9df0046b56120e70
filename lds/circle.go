// SPDX-License-Identifier: MIT

package lds

import "math"

// twoPi is the full angle; [0,1) stream values scale into [0, 2π).
const twoPi = 2 * math.Pi

// Circle places a van der Corput stream on the unit circle:
// θ = u·2π, point = (sin θ, cos θ). The map [0,1) → [0,2π) is a
// measure-preserving bijection, so the angular discrepancy equals the
// discrepancy of the underlying stream.
type Circle struct {
	vdc *VdCorput
}

// NewCircle returns a unit-circle generator over the given base.
// Returns ErrBaseTooSmall if base < 2.
func NewCircle(base uint64) (*Circle, error) {
	vdc, err := NewVdCorput(base)
	if err != nil {
		return nil, err
	}

	return &Circle{vdc: vdc}, nil
}

// Pop returns the next point (sin θ, cos θ) on the unit circle.
func (c *Circle) Pop() [2]float64 {
	theta := c.vdc.Pop() * twoPi

	return [2]float64{math.Sin(theta), math.Cos(theta)}
}

// Reseed rewinds the angular stream to position seed.
func (c *Circle) Reseed(seed uint64) {
	c.vdc.Reseed(seed)
}
