// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tsr implements the 3D tensor algebra kernel shared by every other
// package: plain vectors, symmetric second-order tensors and fourth-order
// "two-symmetric-indices" tensors, with value semantics throughout.
package tsr

import "math"

// VectorComponent indexes a 3-vector
type VectorComponent int

// vector component codes
const (
	X VectorComponent = iota
	Y
	Z
)

// VectorXYZ is a plain 3-component vector in the global (X east, Y north, Z up) frame
type VectorXYZ struct {
	V [3]float64
}

// NewVectorXYZ builds a vector from its three components
func NewVectorXYZ(x, y, z float64) VectorXYZ {
	return VectorXYZ{V: [3]float64{x, y, z}}
}

// Add returns a+b
func (a VectorXYZ) Add(b VectorXYZ) VectorXYZ {
	return VectorXYZ{V: [3]float64{a.V[0] + b.V[0], a.V[1] + b.V[1], a.V[2] + b.V[2]}}
}

// Sub returns a-b
func (a VectorXYZ) Sub(b VectorXYZ) VectorXYZ {
	return VectorXYZ{V: [3]float64{a.V[0] - b.V[0], a.V[1] - b.V[1], a.V[2] - b.V[2]}}
}

// Scale returns s*a
func (a VectorXYZ) Scale(s float64) VectorXYZ {
	return VectorXYZ{V: [3]float64{s * a.V[0], s * a.V[1], s * a.V[2]}}
}

// Dot returns a.b
func (a VectorXYZ) Dot(b VectorXYZ) float64 {
	return a.V[0]*b.V[0] + a.V[1]*b.V[1] + a.V[2]*b.V[2]
}

// Norm returns |a|
func (a VectorXYZ) Norm() float64 {
	return math.Sqrt(a.Dot(a))
}

// Unit returns a/|a|; returns the zero vector if |a|==0
func (a VectorXYZ) Unit() VectorXYZ {
	n := a.Norm()
	if n == 0 {
		return VectorXYZ{}
	}
	return a.Scale(1.0 / n)
}

// Cross returns a×b, using the permutation-parity (Levi-Civita) definition:
// an even permutation of (X,Y,Z) contributes +1, an odd permutation -1, and
// any repeated index contributes 0. This is the only self-consistent
// definition of epsilon_ijk; see DESIGN.md Open Question 2.
func (a VectorXYZ) Cross(b VectorXYZ) VectorXYZ {
	return VectorXYZ{V: [3]float64{
		epsilonContract(1, 2, a, b),
		epsilonContract(2, 0, a, b),
		epsilonContract(0, 1, a, b),
	}}
}

// epsilonContract computes sum_jk epsilon_ijk a_j b_k for the component i
// implied by (j,k), using the explicit 2-term antisymmetric form.
func epsilonContract(j, k int, a, b VectorXYZ) float64 {
	return a.V[j]*b.V[k] - a.V[k]*b.V[j]
}

// epsilon returns the Levi-Civita symbol for the given index triple via the
// permutation-parity of (i,j,k) relative to (0,1,2): 0 if any two indices
// repeat, +1 for an even permutation, -1 for an odd one.
func epsilon(i, j, k int) float64 {
	if i == j || j == k || i == k {
		return 0
	}
	// parity by counting inversions of (i,j,k)
	inv := 0
	idx := [3]int{i, j, k}
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 3; b++ {
			if idx[a] > idx[b] {
				inv++
			}
		}
	}
	if inv%2 == 0 {
		return 1
	}
	return -1
}
