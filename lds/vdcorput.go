// SPDX-License-Identifier: MIT

package lds

// VanDerCorput returns the k-th element of the van der Corput sequence
// in the given base: the digits of k in that base, mirrored across the
// radix point and read as a fraction in [0, 1).
//
// Algorithm Outline:
//  1. result = 0, denom = 1.
//  2. While k != 0: denom *= base; result += (k mod base) / denom;
//     k /= base.
//
// The sequence for base 2 starts 0.5, 0.25, 0.75, 0.125, 0.625, … for
// k = 1, 2, 3, 4, 5 — each new point splits the largest remaining gap.
//
// Precondition: base >= 2. Bases 0 and 1 make the digit loop diverge;
// the generator constructors reject them with ErrBaseTooSmall, and
// direct callers of this function carry the same obligation.
//
// Complexity: O(log_base k) time, no allocation.
func VanDerCorput(k, base uint64) float64 {
	var res float64
	denom := 1.0
	for ; k != 0; k /= base {
		denom *= float64(base)
		res += float64(k%base) / denom
	}

	return res
}

// VdCorput is the counting form of VanDerCorput: a 1-D low-discrepancy
// stream keyed by a fixed base. Pop advances an internal counter by
// exactly one and returns the counter's radix-inverse value, so the
// whole stream is a pure function of (count, base) — no other state.
//
// The zero value is not usable; construct with NewVdCorput.
// Not safe for concurrent Pop/Reseed on one instance.
type VdCorput struct {
	count uint64
	base  uint64
}

// NewVdCorput returns a van der Corput generator over the given base.
// Returns ErrBaseTooSmall if base < 2.
func NewVdCorput(base uint64) (*VdCorput, error) {
	if base < 2 {
		return nil, ErrBaseTooSmall
	}

	return &VdCorput{base: base}, nil
}

// Pop increments the counter and returns the next value in [0, 1).
func (v *VdCorput) Pop() float64 {
	v.count++

	return VanDerCorput(v.count, v.base)
}

// Reseed rewinds the stream to position seed: the next Pop returns the
// same value a fresh generator would produce on its (seed+1)-th draw.
func (v *VdCorput) Reseed(seed uint64) {
	v.count = seed
}

// Base reports the radix this stream expands in. Fixed for the
// generator's lifetime.
func (v *VdCorput) Base() uint64 {
	return v.base
}
