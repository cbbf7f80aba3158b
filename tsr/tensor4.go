// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

// Tensor4 is a fourth-order "two-symmetric-indices" tensor: a 6x6 matrix
// relating two Tensor2S quantities (e.g. strain -> stress), indexed by two
// Tensor2SComponent values. Stored as a fixed contiguous array, value type.
type Tensor4 struct {
	C [6][6]float64 // indexed [row][col], row/col in Tensor2SComponents order
}

// Get returns the (p,q) entry
func (t Tensor4) Get(p, q Tensor2SComponent) float64 { return t.C[p][q] }

// Set assigns the (p,q) entry
func (t *Tensor4) Set(p, q Tensor2SComponent, v float64) { t.C[p][q] = v }

// Add returns a+b
func (a Tensor4) Add(b Tensor4) (r Tensor4) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			r.C[i][j] = a.C[i][j] + b.C[i][j]
		}
	}
	return
}

// Sub returns a-b
func (a Tensor4) Sub(b Tensor4) (r Tensor4) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			r.C[i][j] = a.C[i][j] - b.C[i][j]
		}
	}
	return
}

// Scale returns s*a
func (a Tensor4) Scale(s float64) (r Tensor4) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			r.C[i][j] = s * a.C[i][j]
		}
	}
	return
}

// Dot returns the Tensor2S b = A:a (standard fourth-order contraction)
func (a Tensor4) Dot(x Tensor2S) (r Tensor2S) {
	for _, p := range Tensor2SComponents {
		var s float64
		for _, q := range Tensor2SComponents {
			s += a.Get(p, q) * x.Get(q)
		}
		r.Set(p, s)
	}
	return
}

// IsotropicStiffness builds the isotropic stiffness tensor (stress = C *
// strain) from Young's modulus E and Poisson's ratio ν, used as the
// reference result checked against IsotropicCompliance by round-trip inversion.
func IsotropicStiffness(E, nu float64) (c Tensor4) {
	lam := E * nu / ((1 + nu) * (1 - 2*nu))
	mu := E / (2 * (1 + nu))
	for _, p := range [3]Tensor2SComponent{XX, YY, ZZ} {
		for _, q := range [3]Tensor2SComponent{XX, YY, ZZ} {
			v := lam
			if p == q {
				v += 2 * mu
			}
			c.Set(p, q, v)
		}
	}
	c.Set(XY, XY, mu)
	c.Set(YZ, YZ, mu)
	c.Set(ZX, ZX, mu)
	return
}

// IsotropicCompliance builds the isotropic compliance tensor (strain = S *
// stress) from E and ν.
func IsotropicCompliance(E, nu float64) (s Tensor4) {
	for _, p := range [3]Tensor2SComponent{XX, YY, ZZ} {
		for _, q := range [3]Tensor2SComponent{XX, YY, ZZ} {
			v := -nu / E
			if p == q {
				v = 1.0 / E
			}
			s.Set(p, q, v)
		}
	}
	g := 2 * (1 + nu) / E
	s.Set(XY, XY, g)
	s.Set(YZ, YZ, g)
	s.Set(ZX, ZX, g)
	return
}

// IsHorizontalSymmetric reports whether the YZ and ZX rows/columns are
// entirely decoupled from the other components (all relevant off-diagonal
// entries zero by float-equality), the first reducibility test of the
// partial-inverse algorithm.
func (t Tensor4) IsHorizontalSymmetric() bool {
	coupled := [2]Tensor2SComponent{YZ, ZX}
	for _, c := range coupled {
		for _, o := range Tensor2SComponents {
			if o == c {
				continue
			}
			if t.Get(c, o) != 0 || t.Get(o, c) != 0 {
				return false
			}
		}
	}
	return true
}

// IsOrthotropic reports whether, in addition to IsHorizontalSymmetric, the
// XY row/column is also decoupled from the remaining (XX,YY,ZZ) block.
func (t Tensor4) IsOrthotropic() bool {
	if !t.IsHorizontalSymmetric() {
		return false
	}
	for _, o := range Tensor2SComponents {
		if o == XY {
			continue
		}
		if t.Get(XY, o) != 0 || t.Get(o, XY) != 0 {
			return false
		}
	}
	return true
}
