// Package spheren generates deterministic low-discrepancy point
// sequences on n-spheres and n-cylinders for arbitrary dimension,
// extending the closed-form generators of package lds past S³.
//
// What:
//
//   - SphereN: uniform points on the unit (n−1)-sphere embedded in n
//     coordinates, n ≥ 4. The polar angle φ ∈ [0, π] has marginal
//     density ∝ sin^(n−2)(φ), which has no closed-form inverse above
//     n = 4; SphereN tabulates its cumulative integral on a fixed
//     300-node grid once at construction and inverts it per draw by
//     binary search + linear interpolation. The remaining n−1
//     coordinates come from a recursively nested generator of one
//     dimension less, scaled into the equator by sin φ; the recursion
//     terminates at the closed-form lds.Sphere.
//   - CylinN: the same recursive shape WITHOUT the sin-power weighting —
//     every level maps its draw linearly to cos φ ∈ [−1, 1]. That is
//     the cylindrical equal-area measure, a deliberately distinct
//     sampling measure, not an approximation of the uniform one.
//
// Table construction (once per generator, never re-integrated):
//
//	tp[3] = −cos θ                 // antiderivative of sin
//	tp[4] = (θ − sin θ · cos θ)/2  // integral of sin²
//	tp[n] = ((n−3)·tp[n−2] + (−cos θ)·sinⁿ⁻³θ) / (n−2)
//
// the classic sin-power reduction formula, evaluated elementwise over
// the shared grid. Tables are immutable after construction and safe to
// share read-only; Reseed never touches them.
//
// Complexity:
//
//   - Construction: O(n·M) table work, M = 300 grid nodes.
//   - Pop: O(n·log M) — one binary-search inversion per recursion level.
//   - Reseed: O(n).
//
// Errors:
//
//   - ErrBaseTooSmall: a base below 2 was supplied.
//   - ErrNotEnoughBases: fewer bases than the requested dimension needs
//     (SphereN needs at least four, CylinN at least two).
//
// Construction validates once; Pop and Reseed cannot fail. Instances
// are not safe for concurrent use; give each worker its own.
package spheren
