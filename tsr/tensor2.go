// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Tensor2SComponent indexes the six independent components of a symmetric
// second-order tensor
type Tensor2SComponent int

// component codes, in storage order
const (
	XX Tensor2SComponent = iota
	YY
	ZZ
	XY
	YZ
	ZX
	nTensor2SComponents
)

// Tensor2SComponents lists all six components in storage order; used by
// callers that must iterate generically (e.g. the partial-inverse routine)
var Tensor2SComponents = [6]Tensor2SComponent{XX, YY, ZZ, XY, YZ, ZX}

// Tensor2S is a symmetric second-order tensor stored as a fixed 6-float
// array (value type, copied on pass). This replaces the dictionary-keyed
// container of the original source with an enum-indexed contiguous array.
type Tensor2S struct {
	C [6]float64 // [XX, YY, ZZ, XY, YZ, ZX]
}

// NewTensor2S builds a tensor from its six independent components
func NewTensor2S(xx, yy, zz, xy, yz, zx float64) Tensor2S {
	return Tensor2S{C: [6]float64{xx, yy, zz, xy, yz, zx}}
}

// Get returns the component named by c
func (t Tensor2S) Get(c Tensor2SComponent) float64 { return t.C[c] }

// Set assigns the component named by c
func (t *Tensor2S) Set(c Tensor2SComponent, v float64) { t.C[c] = v }

// matrixIndex maps a matrix-style (i,j) pair (0=X,1=Y,2=Z) onto the
// corresponding Tensor2SComponent; XY maps YX onto XY, etc.
func matrixIndex(i, j int) Tensor2SComponent {
	if i > j {
		i, j = j, i
	}
	switch {
	case i == 0 && j == 0:
		return XX
	case i == 1 && j == 1:
		return YY
	case i == 2 && j == 2:
		return ZZ
	case i == 0 && j == 1:
		return XY
	case i == 1 && j == 2:
		return YZ
	case i == 0 && j == 2:
		return ZX
	}
	chk.Panic("tsr: invalid matrix index (%d,%d)", i, j)
	return XX
}

// At returns the (i,j) matrix-style entry (i,j in [0,2])
func (t Tensor2S) At(i, j int) float64 { return t.C[matrixIndex(i, j)] }

// SetAt assigns the (i,j) matrix-style entry (i,j in [0,2])
func (t *Tensor2S) SetAt(i, j int, v float64) { t.C[matrixIndex(i, j)] = v }

// Add returns a+b
func (a Tensor2S) Add(b Tensor2S) (r Tensor2S) {
	for i := range r.C {
		r.C[i] = a.C[i] + b.C[i]
	}
	return
}

// Sub returns a-b
func (a Tensor2S) Sub(b Tensor2S) (r Tensor2S) {
	for i := range r.C {
		r.C[i] = a.C[i] - b.C[i]
	}
	return
}

// Neg returns -a
func (a Tensor2S) Neg() (r Tensor2S) {
	for i := range r.C {
		r.C[i] = -a.C[i]
	}
	return
}

// Scale returns s*a
func (a Tensor2S) Scale(s float64) (r Tensor2S) {
	for i := range r.C {
		r.C[i] = s * a.C[i]
	}
	return
}

// Div returns a/s
func (a Tensor2S) Div(s float64) (r Tensor2S) {
	return a.Scale(1.0 / s)
}

// Mul returns the SYMMETRIC PART of the matrix product a*b. This is a
// deliberate modelling choice (see DESIGN.md Open Question 1):
// unsymmetric products are never required by any caller in this module, so
// Tensor2S*Tensor2S silently discards the antisymmetric part rather than
// returning a general (non-symmetric) matrix.
func (a Tensor2S) Mul(b Tensor2S) (r Tensor2S) {
	var m [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += a.At(i, k) * b.At(k, j)
			}
			m[i][j] = s
		}
	}
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			r.SetAt(i, j, 0.5*(m[i][j]+m[j][i]))
		}
	}
	return
}

// Trace returns XX+YY+ZZ
func (t Tensor2S) Trace() float64 { return t.C[XX] + t.C[YY] + t.C[ZZ] }

// I1 is the first invariant (trace)
func (t Tensor2S) I1() float64 { return t.Trace() }

// I2 is the second invariant of the symmetric 3x3 matrix
func (t Tensor2S) I2() float64 {
	return t.C[XX]*t.C[YY] + t.C[YY]*t.C[ZZ] + t.C[ZZ]*t.C[XX] -
		t.C[XY]*t.C[XY] - t.C[YZ]*t.C[YZ] - t.C[ZX]*t.C[ZX]
}

// Det returns the determinant via the standard cofactor formula
func (t Tensor2S) Det() float64 {
	return t.C[XX]*(t.C[YY]*t.C[ZZ]-t.C[YZ]*t.C[YZ]) -
		t.C[XY]*(t.C[XY]*t.C[ZZ]-t.C[YZ]*t.C[ZX]) +
		t.C[ZX]*(t.C[XY]*t.C[YZ]-t.C[YY]*t.C[ZX])
}

// Inverse returns t^-1 and ok=false (with a zero-value tensor) when Det()==0
func (t Tensor2S) Inverse() (inv Tensor2S, ok bool) {
	d := t.Det()
	if d == 0 {
		return Tensor2S{}, false
	}
	id := 1.0 / d
	inv.C[XX] = (t.C[YY]*t.C[ZZ] - t.C[YZ]*t.C[YZ]) * id
	inv.C[YY] = (t.C[XX]*t.C[ZZ] - t.C[ZX]*t.C[ZX]) * id
	inv.C[ZZ] = (t.C[XX]*t.C[YY] - t.C[XY]*t.C[XY]) * id
	inv.C[XY] = (t.C[ZX]*t.C[YZ] - t.C[XY]*t.C[ZZ]) * id
	inv.C[YZ] = (t.C[XY]*t.C[ZX] - t.C[XX]*t.C[YZ]) * id
	inv.C[ZX] = (t.C[XY]*t.C[YZ] - t.C[YY]*t.C[ZX]) * id
	return inv, true
}

// OuterProductSym returns the "one dimension higher" symmetric outer product
// a ⊗ a of a Tensor2S with itself, yielding a Tensor4_2Sx2S.
func (a Tensor2S) OuterProductSym() (r Tensor4) {
	for _, p := range Tensor2SComponents {
		for _, q := range Tensor2SComponents {
			r.Set(p, q, a.Get(p)*a.Get(q))
		}
	}
	return
}

// Dot returns the scalar double-contraction a:b = sum_ij a_ij b_ij
func (a Tensor2S) Dot(b Tensor2S) float64 {
	s := a.C[XX]*b.C[XX] + a.C[YY]*b.C[YY] + a.C[ZZ]*b.C[ZZ]
	s += 2 * (a.C[XY]*b.C[XY] + a.C[YZ]*b.C[YZ] + a.C[ZX]*b.C[ZX])
	return s
}

// GetMinimumHorizontalAzimuth returns the azimuth of the minimum horizontal
// principal stress/strain direction, (π + atan2(2·XY, YY−XX)) / 2. Returns
// NaN in the isotropic case (YY==XX && XY==0); callers must substitute zero
// explicitly, e.g. via AzimuthOrZero (see DESIGN.md Open Question 4).
func (t Tensor2S) GetMinimumHorizontalAzimuth() float64 {
	if t.C[YY] == t.C[XX] && t.C[XY] == 0 {
		return math.NaN()
	}
	return (math.Pi + math.Atan2(2*t.C[XY], t.C[YY]-t.C[XX])) / 2
}

// AzimuthOrZero forwards GetMinimumHorizontalAzimuth, substituting 0 for the
// isotropic NaN case before the value reaches a trigonometric function.
func AzimuthOrZero(t Tensor2S) float64 {
	a := t.GetMinimumHorizontalAzimuth()
	if math.IsNaN(a) {
		return 0
	}
	return a
}
