// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// PartialInverseResult carries the outcome of PartialInverse. Singular==true
// means the reduced system could not be solved (zero determinant); callers
// must treat this as a fatal linear-algebra singularity in the partial
// inversion context.
type PartialInverseResult struct {
	A        Tensor2S
	B        Tensor2S
	Singular bool
}

// PartialInverse implements the key fourth-order primitive:
// given a fourth-order tensor C (e.g. a compliance), a target tensor A with
// XX, YY, XY, YZ, ZX known (ZZ unknown) and a constraint tensor B with ZZ
// known (the rest unknown), it populates the remaining components so that
// A = C·B, using adaptive 2x2/3x3/5x5 reduction:
//
//  1. horizontal-symmetric reduction removes YZ, ZX from the coupled system
//     when C has no YZ/ZX off-diagonal coupling (their partial inverse is
//     the reciprocal 1/C_ii,ii);
//  2. orthotropic reduction additionally removes XY under the same test.
func PartialInverse(c Tensor4, aKnown Tensor2S, bZZ float64) PartialInverseResult {
	all := [5]Tensor2SComponent{XX, YY, XY, YZ, ZX}

	horiz := c.IsHorizontalSymmetric()
	ortho := c.IsOrthotropic()

	removed := map[Tensor2SComponent]bool{}
	if horiz {
		removed[YZ] = true
		removed[ZX] = true
	}
	if ortho {
		removed[XY] = true
	}

	var active []Tensor2SComponent
	for _, comp := range all {
		if !removed[comp] {
			active = append(active, comp)
		}
	}

	var b Tensor2S
	b.Set(ZZ, bZZ)

	// decoupled components: B_c = A_c / C[c][c]
	for comp := range removed {
		ccc := c.Get(comp, comp)
		if ccc == 0 {
			return PartialInverseResult{Singular: true}
		}
		b.Set(comp, aKnown.Get(comp)/ccc)
	}

	if len(active) > 0 {
		idx := make([]int, len(active))
		for i, comp := range active {
			idx[i] = int(comp)
		}
		var m [6][6]float64
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				m[i][j] = c.C[i][j]
			}
		}
		inv, ok := invertSubmatrix(m, idx)
		if !ok {
			return PartialInverseResult{Singular: true}
		}
		// A' = A - C_p,ZZ * B_ZZ for each active p
		aPrime := make([]float64, len(active))
		for i, comp := range active {
			aPrime[i] = aKnown.Get(comp) - c.Get(comp, ZZ)*bZZ
		}
		for i, comp := range active {
			var s float64
			for j := range active {
				s += inv[i][j] * aPrime[j]
			}
			b.Set(comp, s)
		}
	}

	a := aKnown
	// A.ZZ = sum_q C[ZZ][q] * B[q] over all six components of B, since A = C·B
	var azz float64
	for _, q := range Tensor2SComponents {
		azz += c.Get(ZZ, q) * b.Get(q)
	}
	a.Set(ZZ, azz)

	return PartialInverseResult{A: a, B: b}
}

// invertSubmatrix computes the inverse of the square submatrix of m selected
// by idx (same row and column index list) via gosl/la's tolerant general
// inverse, the same routine shp and msolid reach for whenever a Jacobian or
// constitutive matrix must be inverted with a singularity tolerance rather
// than an exact zero-determinant test (shp's iso-parametric Jacobian
// inverse, msolid's principal-strain update).
func invertSubmatrix(m [6][6]float64, idx []int) (inv [][]float64, ok bool) {
	n := len(idx)
	a := la.NewMatrix(n, n)
	for i, ri := range idx {
		for j, cj := range idx {
			a.Set(i, j, m[ri][cj])
		}
	}
	ai := la.NewMatrix(n, n)
	if err := la.MatInvG(ai, a, 1e-10); err != nil {
		return nil, false
	}
	inv = make([][]float64, n)
	for i := 0; i < n; i++ {
		inv[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			inv[i][j] = ai.Get(i, j)
		}
	}
	return inv, true
}

// Inverse returns the full inverse of a fourth-order tensor, when it exists,
// via gosl/la's general matrix inverse over the full 6x6 representation
// (used when no component is known in advance, e.g. building an effective
// compliance from a stiffness) — the unconstrained counterpart of
// invertSubmatrix's reduced-system solve.
func (c Tensor4) Inverse() (inv Tensor4, ok bool) {
	a := la.NewMatrix(6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			a.Set(i, j, c.C[i][j])
		}
	}
	ai := la.NewMatrix(6, 6)
	if err := la.MatInvG(ai, a, 1e-10); err != nil {
		return Tensor4{}, false
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			inv.C[i][j] = ai.Get(i, j)
		}
	}
	return inv, true
}

// MustPartialInverse panics on a singular partial inversion; used by callers
// that have already established (by construction) the system is regular.
func MustPartialInverse(c Tensor4, aKnown Tensor2S, bZZ float64) (Tensor2S, Tensor2S) {
	r := PartialInverse(c, aKnown, bZZ)
	if r.Singular {
		chk.Panic("tsr: partial inverse is singular")
	}
	return r.A, r.B
}
