// Package lowdisc is a toolbox of deterministic low-discrepancy
// ("quasi-random") point generators over intervals, squares, circles,
// spheres and general n-spheres — built for quasi-Monte-Carlo
// integration, sampling and experimental design.
//
// 🚀 What is lowdisc?
//
//	A compact, pure-Go numerical library that brings together:
//		• Van der Corput: the 1-D radix-inverse base sequence
//		• Halton / HaltonN: 2-D and n-D low-discrepancy points in the unit cube
//		• Circle: evenly wrapping points on the unit circle
//		• Sphere: uniform points on S² via the equal-area map
//		• Sphere3Hopf: uniform points on S³ via the Hopf fibration
//		• SphereN: uniform points on any n-sphere via recursive
//		  inverse-CDF tables
//		• CylinN: cylindrical equal-area points (a distinct measure)
//
// ✨ Why choose lowdisc?
//
//   - Reproducible – every point is a pure function of a counter; no
//     entropy source, no global state
//   - Even coverage – discrepancy decays like log N / N, far below
//     random sampling's 1/√N
//   - Restartable – Reseed(s) on any generator replays the stream from
//     position s exactly
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	lds/     — base sequences & closed-form generators (1-D to 4-D)
//	spheren/ — recursive n-sphere and n-cylinder generators (tables + inversion)
//
// Quick sketch of the recursion:
//
//	SphereN(n) = polar angle from an inverse-CDF table of sin^(n-2)
//	           + SphereN(n-1) scaled into the equator
//	           … terminating at the closed-form Sphere (3 coordinates).
//
// Dive into the package docs and examples/ for runnable scenarios, from
// plain QMC integration to sampling rotations in SO(3).
//
//	go get github.com/katalvlaran/lowdisc
package lowdisc
