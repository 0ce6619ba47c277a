// SPDX-License-Identifier: MIT
// Package linsys: LU factorization with partial pivoting (PA = LU).

package linsys

import "math"

// permutation records the row order chosen by pivoting: row i of PA is
// row perm[i] of A.
type permutation [2]int

// identityPerm is the permutation of an unpivoted factorization.
var identityPerm = permutation{0, 1}

// paluFactors holds a packed 2×2 factorization PA = LU.
// lu[0] is the first row of U, lu[1][0] is the multiplier L21 and
// lu[1][1] is U11. L has a unit diagonal that is not stored.
type paluFactors struct {
	lu   [2][2]float64
	perm permutation
}

// factorPALU factors a with row partial pivoting.
// Implementation:
//   - Stage 1: Copy a into the working buffer; start from the identity permutation.
//   - Stage 2: Swap rows when |a10| > |a00| so the larger entry becomes the pivot.
//   - Stage 3: L21 = a10 / a00 and U11 = a11 − L21·a01, stored in place.
//
// Behavior highlights:
//   - Ties keep the original order (strict comparison).
//   - No zero-pivot guard. A zero first column yields L21 = 0/0 = NaN.
//
// Complexity:
//   - Time O(1), Space O(1).
func factorPALU(a Matrix2x2) paluFactors {
	f := paluFactors{lu: a, perm: identityPerm}

	// Partial pivoting on column 0
	if math.Abs(f.lu[1][0]) > math.Abs(f.lu[0][0]) {
		f.lu[0], f.lu[1] = f.lu[1], f.lu[0]
		f.perm[0], f.perm[1] = f.perm[1], f.perm[0]
	}

	// Elimination; explicit rounding keeps a11 − L21·a01 unfused
	l21 := f.lu[1][0] / f.lu[0][0]
	f.lu[1][0] = l21
	f.lu[1][1] = f.lu[1][1] - float64(l21*f.lu[0][1])

	return f
}

// solve applies the stored factors to b: permute, forward substitution with
// unit-diagonal L, then back substitution with U.
func (f paluFactors) solve(b Vector2) Vector2 {
	var (
		bp     Vector2 // P·b
		y0, y1 float64 // L·y = P·b
		x      Vector2 // U·x = y
	)
	bp = Vector2{b[f.perm[0]], b[f.perm[1]]}

	l21 := f.lu[1][0]
	y0 = bp[0]
	y1 = bp[1] - float64(l21*y0)

	x[1] = y1 / f.lu[1][1]
	x[0] = (y0 - float64(f.lu[0][1]*x[1])) / f.lu[0][0]

	return x
}

// SolvePALU solves a·x = b by LU factorization with partial pivoting.
// Implementation:
//   - Stage 1: Factor PA = LU, pivoting on the larger |entry| of column 0.
//   - Stage 2: Solve L·y = P·b forward, then U·x = y backward.
//
// Behavior highlights:
//   - Pure: a and b are copied by value and never modified.
//   - In exact arithmetic the result is the true solution for non-singular a.
//
// Inputs:
//   - a: any 2×2 matrix, singular or not.
//   - b: right-hand side.
//
// Returns:
//   - Vector2: the computed solution.
//
// Errors:
//   - None. If both entries of column 0 are zero the pivot division is 0/0 and
//     the result holds NaN; a zero U11 yields ±Inf or NaN. Callers that need a
//     usable answer must check x.IsFinite().
//
// Complexity:
//   - Time O(1), Space O(1).
func SolvePALU(a Matrix2x2, b Vector2) Vector2 {
	return factorPALU(a).solve(b)
}
