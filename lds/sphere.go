// SPDX-License-Identifier: MIT

package lds

import "math"

// Sphere generates uniformly distributed points on the unit 2-sphere
// (3 coordinates) from one van der Corput stream and one Circle.
//
// Algorithm Outline:
//  1. cos φ = 2u − 1 — uniform on [−1, 1]. By Archimedes' hat-box
//     theorem the axial coordinate of a uniform sphere point is itself
//     uniform, so this alone guarantees uniform surface density.
//  2. sin φ = √(1 − cos²φ).
//  3. (s, c) from the equatorial Circle; point = (sinφ·s, sinφ·c, cosφ).
type Sphere struct {
	vdc    *VdCorput
	circle *Circle
}

// NewSphere returns a unit-2-sphere generator over bases[0] (axial
// stream) and bases[1] (equatorial circle). Returns ErrNotEnoughBases
// for fewer than two bases, ErrBaseTooSmall for a base below 2.
func NewSphere(bases []uint64) (*Sphere, error) {
	if err := checkBases(bases, 2); err != nil {
		return nil, err
	}
	vdc, _ := NewVdCorput(bases[0])
	circle, _ := NewCircle(bases[1])

	return &Sphere{vdc: vdc, circle: circle}, nil
}

// Pop returns the next point on the unit 2-sphere.
func (s *Sphere) Pop() [3]float64 {
	cosphi := 2.0*s.vdc.Pop() - 1.0 // axial coordinate, uniform on [-1, 1]
	sinphi := math.Sqrt(1.0 - cosphi*cosphi)
	sc := s.circle.Pop()

	return [3]float64{sinphi * sc[0], sinphi * sc[1], cosphi}
}

// Reseed rewinds the axial and equatorial streams to position seed.
func (s *Sphere) Reseed(seed uint64) {
	s.vdc.Reseed(seed)
	s.circle.Reseed(seed)
}

// Sphere3Hopf generates uniformly distributed points on the unit
// 3-sphere (4 coordinates) through the Hopf fibration. The fiber of
// the Hopf map has constant Jacobian, so — unlike higher dimensions —
// S³ admits this closed form with no numeric inversion. It samples the
// same uniform measure as the dimension-4 case of spheren.SphereN.
//
// Parametrization, with u0, u1, u2 from three independent streams:
//
//	φ = u0·2π, ψ = u1·2π, cos η = √u2, sin η = √(1−u2)
//	point = (cosη·cosψ, cosη·sinψ, sinη·cos(φ+ψ), sinη·sin(φ+ψ))
type Sphere3Hopf struct {
	vdc0 *VdCorput
	vdc1 *VdCorput
	vdc2 *VdCorput
}

// NewSphere3Hopf returns a unit-3-sphere generator over bases[0..2].
// Returns ErrNotEnoughBases for fewer than three bases,
// ErrBaseTooSmall for a base below 2.
func NewSphere3Hopf(bases []uint64) (*Sphere3Hopf, error) {
	if err := checkBases(bases, 3); err != nil {
		return nil, err
	}
	vdc0, _ := NewVdCorput(bases[0])
	vdc1, _ := NewVdCorput(bases[1])
	vdc2, _ := NewVdCorput(bases[2])

	return &Sphere3Hopf{vdc0: vdc0, vdc1: vdc1, vdc2: vdc2}, nil
}

// Pop returns the next point on the unit 3-sphere.
func (s *Sphere3Hopf) Pop() [4]float64 {
	phi := s.vdc0.Pop() * twoPi // fiber angle
	psy := s.vdc1.Pop() * twoPi // base angle
	vd := s.vdc2.Pop()
	cosEta := math.Sqrt(vd)
	sinEta := math.Sqrt(1.0 - vd)

	return [4]float64{
		cosEta * math.Cos(psy),
		cosEta * math.Sin(psy),
		sinEta * math.Cos(phi+psy),
		sinEta * math.Sin(phi+psy),
	}
}

// Reseed rewinds all three streams to position seed.
func (s *Sphere3Hopf) Reseed(seed uint64) {
	s.vdc0.Reseed(seed)
	s.vdc1.Reseed(seed)
	s.vdc2.Reseed(seed)
}
