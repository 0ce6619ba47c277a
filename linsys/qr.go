// SPDX-License-Identifier: MIT
// Package linsys: QR factorization by classical Gram–Schmidt (A = QR).

package linsys

import "math"

// DependencyTol is the threshold on R11 = ‖a1 − (q0·a1)q0‖₂ below which the
// second column is treated as linearly dependent on the first. It gates both
// the normalization of q1 and the back substitution for x1. Reference
// outputs are calibrated against this exact value.
const DependencyTol = 1e-12

// ZeroNorm is the exact first-column norm that aborts SolveQR.
const ZeroNorm = 0.0

// qrFactors holds a 2×2 Gram–Schmidt factorization.
//
//	Q = [q0 q1],  R = | r00 r01 |
//	                  |  0  r11 |
//
// When degenerate is true, q1 is the zero vector and Q is not orthonormal.
type qrFactors struct {
	q0, q1     Vector2
	r00, r01   float64
	r11        float64
	degenerate bool
}

// factorQR orthogonalizes the columns of a.
// Implementation:
//   - Stage 1: r00 = ‖a0‖₂; abort with ok=false when it is exactly ZeroNorm.
//   - Stage 2: q0 = a0/r00, r01 = q0·a1.
//   - Stage 3: u = a1 − r01·q0, r11 = ‖u‖₂; q1 = u/r11 if r11 > DependencyTol, else (0,0).
//
// Complexity:
//   - Time O(1), Space O(1).
func factorQR(a Matrix2x2) (qrFactors, bool) {
	var f qrFactors
	a0, a1 := a.Col(0), a.Col(1)

	f.r00 = a0.Norm()
	if f.r00 == ZeroNorm {
		return qrFactors{}, false
	}
	f.q0 = Vector2{a0[0] / f.r00, a0[1] / f.r00}

	// Projection coefficient and orthogonal remainder
	f.r01 = f.q0.Dot(a1)
	u := Vector2{
		a1[0] - float64(f.r01*f.q0[0]),
		a1[1] - float64(f.r01*f.q0[1]),
	}
	f.r11 = u.Norm()

	if f.r11 > DependencyTol {
		f.q1 = Vector2{u[0] / f.r11, u[1] / f.r11}
	} else {
		f.degenerate = true // q1 stays (0,0)
	}

	return f, true
}

// solve computes y = Qᵀb and back-substitutes R·x = y.
func (f qrFactors) solve(b Vector2) Vector2 {
	y0 := f.q0.Dot(b)
	y1 := f.q1.Dot(b)

	var x1 float64
	if math.Abs(f.r11) > DependencyTol {
		x1 = y1 / f.r11
	}
	x0 := (y0 - float64(f.r01*x1)) / f.r00

	return Vector2{x0, x1}
}

// SolveQR solves a·x = b through a = QR with Q built by Gram–Schmidt.
// Implementation:
//   - Stage 1: Factor a; fail when the first column is exactly (0,0).
//   - Stage 2: Project b onto the (possibly degenerate) basis, y = Qᵀb.
//   - Stage 3: Back substitution against R with the DependencyTol guard on R11.
//
// Behavior highlights:
//   - Matches SolvePALU on well-conditioned input.
//   - Numerically dependent columns (R11 ≤ DependencyTol) return x1 = 0 and a
//     finite x0 instead of NaN: robustness is traded for accuracy.
//
// Inputs:
//   - a: any 2×2 matrix.
//   - b: right-hand side.
//
// Returns:
//   - Vector2: the computed solution, or the zero vector on failure.
//   - error  : nil on success.
//
// Errors:
//   - ErrNullFirstColumn (wrapped with "QR: ") when ‖A[:,0]‖₂ == 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func SolveQR(a Matrix2x2, b Vector2) (Vector2, error) {
	f, ok := factorQR(a)
	if !ok {
		return Vector2{}, linsysErrorf(opQR, ErrNullFirstColumn)
	}

	return f.solve(b), nil
}
