// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import "math"

// Eigen holds the eigenvalues (ascending) and corresponding unit
// eigenvectors of a symmetric second-order tensor
type Eigen struct {
	Val [3]float64
	Vec [3]VectorXYZ
}

// Eigenvalues solves the characteristic cubic of t by Cardano's method after
// the trace-shift α = I1/3, returning the three roots in ascending order.
// γ = sqrt(-4c/3); roots are located at θ, θ+2π/3, θ-2π/3 on the depressed
// cubic.
func (t Tensor2S) Eigenvalues() [3]float64 {
	alpha := t.I1() / 3.0
	shifted := t.Sub(NewTensor2S(alpha, alpha, alpha, 0, 0, 0))
	// depressed cubic: λ^3 + pλ + q = 0 for the shifted tensor's char. poly
	p := shifted.I2()
	q := -shifted.Det()
	// c is the coefficient of λ in λ^3 + cλ + q (γ = sqrt(-4c/3)); here c == p
	c := p
	gamma := math.Sqrt(math.Max(0, -4.0*c/3.0))
	var theta float64
	if gamma == 0 {
		theta = 0
	} else {
		arg := 4.0 * q / (gamma * gamma * gamma)
		arg = math.Max(-1, math.Min(1, arg))
		theta = math.Asin(arg) / 3.0
	}
	roots := [3]float64{
		alpha + gamma*math.Sin(theta),
		alpha + gamma*math.Sin(theta+2*math.Pi/3),
		alpha + gamma*math.Sin(theta-2*math.Pi/3),
	}
	// sort ascending
	if roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	if roots[1] > roots[2] {
		roots[1], roots[2] = roots[2], roots[1]
	}
	if roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	return roots
}

// EigenDecomp computes eigenvalues (ascending) and unit eigenvectors. For
// each eigenvalue, (T - λI) v = 0 is solved by choosing, among the three
// diagonal entries of the shifted tensor, the one with smallest absolute
// value as the "solved-for" index — this avoids the near-singular 2x2
// sub-problem that arises from picking an arbitrary index.
func (t Tensor2S) EigenDecomp() Eigen {
	var e Eigen
	e.Val = t.Eigenvalues()
	for k, lam := range e.Val {
		e.Vec[k] = eigenvectorFor(t, lam)
	}
	return e
}

// eigenvectorFor returns the unit eigenvector of t for eigenvalue lam
func eigenvectorFor(t Tensor2S, lam float64) VectorXYZ {
	s := t.Sub(NewTensor2S(lam, lam, lam, 0, 0, 0)) // T - λI, singular (rank ≤2)
	// pick the diagonal entry of s with the smallest absolute value as the
	// "solved-for" index
	diag := [3]float64{s.At(0, 0), s.At(1, 1), s.At(2, 2)}
	solved := 0
	for i := 1; i < 3; i++ {
		if math.Abs(diag[i]) < math.Abs(diag[solved]) {
			solved = i
		}
	}
	other := [2]int{}
	n := 0
	for i := 0; i < 3; i++ {
		if i != solved {
			other[n] = i
			n++
		}
	}
	i, j := other[0], other[1]
	// solve the 2x2 system in (v_i, v_j) with v_solved expressed in terms of
	// them via the solved row, by instead fixing the 2x2 minor in rows i,j
	// and columns i,j, setting v_solved implicitly from the third equation.
	a11, a12 := s.At(i, i), s.At(i, j)
	a21, a22 := s.At(j, i), s.At(j, j)
	var vi, vj, vk float64
	det2 := a11*a22 - a12*a21
	if math.Abs(det2) > 1e-300 {
		// rows i,j are independent in (v_i,v_j): set v_solved = 1 and solve
		// rows i,j for (v_i, v_j) using the coupling terms to the solved index
		bi := -s.At(i, solved)
		bj := -s.At(j, solved)
		vi = (bi*a22 - a12*bj) / det2
		vj = (a11*bj - bi*a21) / det2
		vk = 1
	} else {
		// degenerate (repeated eigenvalue / isotropic block): fall back to a
		// simple orthogonal construction
		vi, vj, vk = 1, 0, 0
	}
	var v VectorXYZ
	v.V[i] = vi
	v.V[j] = vj
	v.V[solved] = vk
	return v.Unit()
}
