// SPDX-License-Identifier: MIT
// Package linsys: fixed-size value types for 2×2 systems.

package linsys

import "math"

// Matrix2x2 is a row-major 2×2 coefficient matrix: m[row][col].
// Singular and near-singular matrices are valid values.
type Matrix2x2 [2][2]float64

// Vector2 is a two-component real vector, used both for right-hand sides
// and for solutions.
type Vector2 [2]float64

// ExactSolution is the known solution (−1, −1) of every reference system.
var ExactSolution = Vector2{-1, -1}

// Col returns column j of m. It panics if j is not 0 or 1.
func (m Matrix2x2) Col(j int) Vector2 {
	return Vector2{m[0][j], m[1][j]}
}

// MulVec returns the product m·x.
func (m Matrix2x2) MulVec(x Vector2) Vector2 {
	return Vector2{
		float64(m[0][0]*x[0]) + float64(m[0][1]*x[1]),
		float64(m[1][0]*x[0]) + float64(m[1][1]*x[1]),
	}
}

// IsFinite reports whether all four entries are finite.
func (m Matrix2x2) IsFinite() bool {
	return Vector2(m[0]).isFinite() && Vector2(m[1]).isFinite()
}

// Dot returns the inner product v·w.
func (v Vector2) Dot(w Vector2) float64 {
	return float64(v[0]*w[0]) + float64(v[1]*w[1])
}

// Norm returns the Euclidean norm ‖v‖₂ computed as √(v·v).
// No overflow scaling is applied; inputs of the size handled here never need it.
func (v Vector2) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Sub returns v − w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{v[0] - w[0], v[1] - w[1]}
}

// Scale returns s·v.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{s * v[0], s * v[1]}
}

// IsFinite reports whether neither component is NaN or ±Inf.
func (v Vector2) IsFinite() bool {
	return v.isFinite()
}

func (v Vector2) isFinite() bool {
	return !math.IsNaN(v[0]) && !math.IsInf(v[0], 0) &&
		!math.IsNaN(v[1]) && !math.IsInf(v[1], 0)
}
