// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

// submatrixDeterminant computes the determinant of the square submatrix of m
// formed by the given row and column index lists, by recursive Laplace
// (cofactor) expansion along the first column. Sizes 1, 2 and 3 use closed
// forms; anything larger recurses. Implemented as an ordered switch, not
// an if/else-if chain (see DESIGN.md Open Question 3).
func submatrixDeterminant(m [6][6]float64, rows, cols []int) float64 {
	n := len(rows)
	switch n {
	case 0:
		return 1
	case 1:
		return m[rows[0]][cols[0]]
	case 2:
		return m[rows[0]][cols[0]]*m[rows[1]][cols[1]] - m[rows[0]][cols[1]]*m[rows[1]][cols[0]]
	case 3:
		r0, r1, r2 := rows[0], rows[1], rows[2]
		c0, c1, c2 := cols[0], cols[1], cols[2]
		return m[r0][c0]*(m[r1][c1]*m[r2][c2]-m[r1][c2]*m[r2][c1]) -
			m[r0][c1]*(m[r1][c0]*m[r2][c2]-m[r1][c2]*m[r2][c0]) +
			m[r0][c2]*(m[r1][c0]*m[r2][c1]-m[r1][c1]*m[r2][c0])
	default:
		var det float64
		sign := 1.0
		for i, r := range rows {
			subRows := remove(rows, i)
			subCols := cols[1:]
			cof := m[r][cols[0]] * submatrixDeterminant(m, subRows, subCols)
			det += sign * cof
			sign = -sign
		}
		return det
	}
}

// remove returns a copy of s with the element at index i removed
func remove(s []int, i int) []int {
	r := make([]int, 0, len(s)-1)
	r = append(r, s[:i]...)
	r = append(r, s[i+1:]...)
	return r
}

// determinant6 returns the determinant of the full 6x6 matrix
func determinant6(m [6][6]float64) float64 {
	return submatrixDeterminant(m, []int{0, 1, 2, 3, 4, 5}, []int{0, 1, 2, 3, 4, 5})
}
