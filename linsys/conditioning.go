// SPDX-License-Identifier: MIT
// Package linsys: conditioning diagnostics.
//
// These helpers only describe a system; the solvers never consult them.

package linsys

import "math"

// Det returns the determinant a00·a11 − a01·a10.
func Det(a Matrix2x2) float64 {
	return float64(a[0][0]*a[1][1]) - float64(a[0][1]*a[1][0])
}

// norm1 is the maximum absolute column sum.
func norm1(a Matrix2x2) float64 {
	c0 := math.Abs(a[0][0]) + math.Abs(a[1][0])
	c1 := math.Abs(a[0][1]) + math.Abs(a[1][1])

	return math.Max(c0, c1)
}

// Cond1 returns the 1-norm condition number κ₁(A) = ‖A‖₁·‖A⁻¹‖₁.
// A⁻¹ is formed through the adjugate, so ‖A⁻¹‖₁ = ‖adj A‖₁ / |det A|.
// Singular matrices (det == 0) report +Inf.
//
// Complexity: O(1).
func Cond1(a Matrix2x2) float64 {
	det := Det(a)
	if det == 0 {
		return math.Inf(1)
	}
	adj := Matrix2x2{
		{a[1][1], -a[0][1]},
		{-a[1][0], a[0][0]},
	}

	return norm1(a) * norm1(adj) / math.Abs(det)
}
