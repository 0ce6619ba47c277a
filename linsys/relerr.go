// SPDX-License-Identifier: MIT
// Package linsys: accuracy metrics.

package linsys

import "math"

// exactNorm is ‖ExactSolution‖₂ = √2.
var exactNorm = math.Sqrt(1.0*1.0 + 1.0*1.0)

// RelativeError returns ‖x − x*‖₂ / ‖x*‖₂ with x* = ExactSolution = (−1, −1).
// The denominator is the fixed constant √2, so the function is total:
// RelativeError(ExactSolution) == 0 and RelativeError(Vector2{}) == 1.
// Non-finite components propagate into the result.
func RelativeError(x Vector2) float64 {
	d0 := x[0] + 1.0
	d1 := x[1] + 1.0

	return math.Sqrt(float64(d0*d0)+float64(d1*d1)) / exactNorm
}

// RelativeErrorTo generalizes RelativeError to an arbitrary exact solution.
// A zero exact vector has no relative scale: the result is 0 when x is also
// zero and +Inf otherwise.
func RelativeErrorTo(x, exact Vector2) float64 {
	den := exact.Norm()
	num := x.Sub(exact).Norm()
	if den == ZeroNorm {
		if num == ZeroNorm {
			return 0
		}

		return math.Inf(1)
	}

	return num / den
}

// Residual returns ‖a·x − b‖₂, the backward error of a computed solution.
func Residual(a Matrix2x2, x, b Vector2) float64 {
	return a.MulVec(x).Sub(b).Norm()
}
