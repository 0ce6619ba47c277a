// Package linsys solves 2×2 linear systems Ax = b with two direct methods
// and measures how far each answer lands from a known exact solution.
//
// 🚀 What is inside?
//
//	• SolvePALU      – LU factorization with partial pivoting, then
//	                   forward/back substitution.
//	• SolveQR        – classical Gram–Schmidt QR, then back substitution
//	                   against R.
//	• RelativeError  – ‖x − x*‖₂ / ‖x*‖₂ with x* = (−1, −1).
//
// ✨ Failure postures:
//
// The two solvers fail in opposite ways and both behaviours are part of the
// contract:
//
//   - SolvePALU never returns an error. A first column that is zero after
//     pivoting divides by zero and the result carries ±Inf or NaN. Check it
//     with Vector2.IsFinite.
//   - SolveQR returns ErrNullFirstColumn when the first column is exactly
//     (0, 0). A second column that is numerically dependent on the first
//     (residual norm ≤ DependencyTol) is absorbed: x₁ is forced to 0 and a
//     finite x₀ is still returned.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/condlab/linsys"
//
//	a := linsys.Matrix2x2{{2, 1}, {1, 3}}
//	b := linsys.Vector2{3, 5}
//
//	xLU := linsys.SolvePALU(a, b)
//	xQR, err := linsys.SolveQR(a, b)
//	if err != nil {
//	  // errors.Is(err, linsys.ErrNullFirstColumn)
//	}
//
// Every function is pure: fixed-size value types in, value types out, no
// shared state. Calls are safe from any number of goroutines.
//
// Performance:
//
//   - Time:   O(1) per call
//   - Memory: stack only
package linsys
