// SPDX-License-Identifier: MIT
// Package spheren: sentinel error set. Constructors return these on
// invalid input; tests match them via errors.Is. Pop/Reseed never
// fail — an interpolation target outside the table range can only mean
// a broken construction invariant and panics instead of clamping,
// because silent clamping would corrupt the uniformity guarantee.

package spheren

import "errors"

var (
	// ErrBaseTooSmall is returned when a radix base below 2 is supplied.
	ErrBaseTooSmall = errors.New("spheren: base must be >= 2")

	// ErrNotEnoughBases is returned when fewer bases are supplied than
	// the requested dimension requires: at least four for SphereN
	// (one per coordinate), at least two for CylinN.
	ErrNotEnoughBases = errors.New("spheren: not enough bases for requested dimension")
)

// checkBases validates that at least want bases are present and every
// base is a valid radix.
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
