// SPDX-License-Identifier: MIT

package lds

// Halton generates 2-D low-discrepancy points in the unit square by
// pairing two independent van der Corput streams. The bases should be
// coprime (conventionally 2 and 3); equal or commensurate bases leave
// correlated gaps along the diagonal.
type Halton struct {
	vdc0 *VdCorput
	vdc1 *VdCorput
}

// NewHalton returns a Halton generator over bases[0] and bases[1].
// Returns ErrNotEnoughBases for fewer than two bases and
// ErrBaseTooSmall if any base is below 2.
func NewHalton(bases []uint64) (*Halton, error) {
	if err := checkBases(bases, 2); err != nil {
		return nil, err
	}
	vdc0, _ := NewVdCorput(bases[0])
	vdc1, _ := NewVdCorput(bases[1])

	return &Halton{vdc0: vdc0, vdc1: vdc1}, nil
}

// Pop returns the next point in [0,1) x [0,1).
func (h *Halton) Pop() [2]float64 {
	return [2]float64{h.vdc0.Pop(), h.vdc1.Pop()}
}

// Reseed rewinds both coordinate streams to position seed.
func (h *Halton) Reseed(seed uint64) {
	h.vdc0.Reseed(seed)
	h.vdc1.Reseed(seed)
}

// HaltonN is the n-dimensional Halton generator: one independent van
// der Corput stream per axis, all advanced in lockstep by Pop.
type HaltonN struct {
	vdcs []*VdCorput
}

// NewHaltonN returns an n-dimensional Halton generator, one base per
// axis. Returns ErrNotEnoughBases for an empty base list and
// ErrBaseTooSmall if any base is below 2.
func NewHaltonN(bases []uint64) (*HaltonN, error) {
	if err := checkBases(bases, 1); err != nil {
		return nil, err
	}
	vdcs := make([]*VdCorput, len(bases))
	for i, b := range bases {
		vdcs[i], _ = NewVdCorput(b)
	}

	return &HaltonN{vdcs: vdcs}, nil
}

// Dimension reports the length of the vectors Pop returns.
func (h *HaltonN) Dimension() int {
	return len(h.vdcs)
}

// Pop returns the next point in [0,1)^n. The slice is freshly
// allocated; the caller owns it.
func (h *HaltonN) Pop() []float64 {
	point := make([]float64, len(h.vdcs))
	for i, v := range h.vdcs {
		point[i] = v.Pop()
	}

	return point
}

// Reseed rewinds every coordinate stream to position seed.
func (h *HaltonN) Reseed(seed uint64) {
	for _, v := range h.vdcs {
		v.Reseed(seed)
	}
}
