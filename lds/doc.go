// Package lds provides the base family of deterministic low-discrepancy
// sequence generators: the 1-D van der Corput sequence and its
// closed-form compositions onto the unit square, circle, 2-sphere and
// 3-sphere.
//
// What:
//
//   - VanDerCorput(k, base): the pure radix-inverse map, exposed directly.
//   - VdCorput: a counting generator over VanDerCorput; Pop advances the
//     counter by exactly one, Reseed rewinds it to any position.
//   - Halton / HaltonN: pairs (or n-tuples) of independent VdCorput
//     streams with distinct bases — low-discrepancy points in [0,1)ⁿ.
//   - Circle: one stream mapped measure-preservingly onto the unit circle.
//   - Sphere: Archimedes' equal-area map onto S² (3 coordinates).
//   - Sphere3Hopf: the Hopf-fibration map onto S³ (4 coordinates).
//
// Why:
//
//   - QMC integration: error decays near log N / N instead of 1/√N.
//   - Experimental design: maximal coverage for any prefix of the stream.
//   - Reproducibility: a point depends only on (count, bases) — reruns
//     and distributed workers agree bit-for-bit.
//
// Complexity:
//
//   - Pop: O(log_base count) time, zero allocations (fixed-size returns).
//   - Reseed: O(1) per owned stream.
//
// Errors:
//
//   - ErrBaseTooSmall: a base below 2 was supplied to a constructor.
//   - ErrNotEnoughBases: a composite generator received fewer bases
//     than its dimension requires.
//
// Construction validates once; Pop and Reseed cannot fail. Generators
// are not safe for concurrent use of a single instance — give each
// worker its own instance (they are cheap) rather than sharing one.
package lds
