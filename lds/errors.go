// SPDX-License-Identifier: MIT
// Package lds: sentinel error set.
// All constructors MUST return these sentinels on invalid input and
// tests MUST check them via errors.Is. Pop/Reseed never fail: every
// argument problem is rejected once, at construction.

package lds

import "errors"

var (
	// ErrBaseTooSmall is returned when a radix base below 2 is supplied.
	// The radix-inverse expansion divides by the base; base 0 or 1 never
	// terminates, so it is rejected at construction, not at draw time.
	ErrBaseTooSmall = errors.New("lds: base must be >= 2")

	// ErrNotEnoughBases is returned when a composite generator receives
	// fewer bases than the number of independent streams it owns.
	ErrNotEnoughBases = errors.New("lds: not enough bases for requested dimension")
)

// checkBases validates that at least want bases are present and that
// every base is a valid radix. Shared by all composite constructors.
func checkBases(bases []uint64, want int) error {
	if len(bases) < want {
		return ErrNotEnoughBases
	}
	for _, b := range bases {
		if b < 2 {
			return ErrBaseTooSmall
		}
	}

	return nil
}
