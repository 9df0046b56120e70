package lds_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lowdisc/lds"
)

// ExampleVanDerCorput shows the canonical base-2 prefix: each new
// value splits the largest gap left by the previous ones.
func ExampleVanDerCorput() {
	for k := uint64(1); k <= 5; k++ {
		fmt.Printf("%.3f ", lds.VanDerCorput(k, 2))
	}
	fmt.Println()
	// Output:
	// 0.500 0.250 0.750 0.125 0.625
}

// ExampleHalton draws the first three 2-D points over the coprime
// bases (2, 3) — the usual quasi-Monte-Carlo workhorse.
func ExampleHalton() {
	gen, err := lds.NewHalton([]uint64{2, 3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := 0; i < 3; i++ {
		p := gen.Pop()
		fmt.Printf("(%.4f, %.4f)\n", p[0], p[1])
	}
	// Output:
	// (0.5000, 0.3333)
	// (0.2500, 0.6667)
	// (0.7500, 0.1111)
}

// ExampleVdCorput_Reseed demonstrates that a reseeded stream replays
// exactly: reproducibility is positional, not stateful.
func ExampleVdCorput_Reseed() {
	gen, _ := lds.NewVdCorput(2)
	fmt.Printf("%.3f %.3f\n", gen.Pop(), gen.Pop())

	gen.Reseed(0) // rewind to the start
	fmt.Printf("%.3f %.3f\n", gen.Pop(), gen.Pop())
	// Output:
	// 0.500 0.250
	// 0.500 0.250
}

// ExampleSphere draws points on the unit 2-sphere; every point has
// unit norm by construction.
func ExampleSphere() {
	gen, _ := lds.NewSphere([]uint64{2, 3})
	p := gen.Pop()
	norm := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
	fmt.Printf("|p| = %.6f\n", norm)
	// Output:
	// |p| = 1.000000
}
