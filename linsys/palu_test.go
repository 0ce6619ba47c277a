// SPDX-License-Identifier: MIT

package linsys_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/condlab/linsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolvePALU_WellConditioned checks the analytic solution of a κ≈3 system.
func TestSolvePALU_WellConditioned(t *testing.T) {
	// 2x + y = 3, x + 3y = 5  →  x = 0.8, y = 1.4
	x := linsys.SolvePALU(wellConditioned, linsys.Vector2{3, 5})
	requireVectorInDelta(t, linsys.Vector2{0.8, 1.4}, x, 1e-9)
}

// TestSolvePALU_Identity returns b unchanged.
func TestSolvePALU_Identity(t *testing.T) {
	b := linsys.Vector2{-7.25, 3.5}
	x := linsys.SolvePALU(linsys.Matrix2x2{{1, 0}, {0, 1}}, b)
	assert.Equal(t, b, x)
}

// TestSolvePALU_ZeroTopPivot needs the row swap to avoid dividing by a00 = 0.
func TestSolvePALU_ZeroTopPivot(t *testing.T) {
	a := linsys.Matrix2x2{{0, 1}, {1, 0}}
	x := linsys.SolvePALU(a, linsys.Vector2{2, 3})
	require.True(t, x.IsFinite())
	assert.Equal(t, linsys.Vector2{3, 2}, x)
}

// TestSolvePALU_DoesNotMutateInputs guards the value semantics of the API.
func TestSolvePALU_DoesNotMutateInputs(t *testing.T) {
	a := linsys.Matrix2x2{{1, 2}, {3, 4}}
	b := linsys.Vector2{5, 6}
	aCopy, bCopy := a, b

	_ = linsys.SolvePALU(a, b)
	assert.Equal(t, aCopy, a)
	assert.Equal(t, bCopy, b)
}

// TestSolvePALU_NullFirstColumn_PropagatesNaN: no error path, NaN flows out.
func TestSolvePALU_NullFirstColumn_PropagatesNaN(t *testing.T) {
	x := linsys.SolvePALU(linsys.Matrix2x2{{0, 1}, {0, 2}}, linsys.Vector2{1, 2})
	assert.False(t, x.IsFinite(), "zero first column must yield non-finite components")
	assert.True(t, math.IsNaN(x[0]), "x0 = %v", x[0])
	assert.True(t, math.IsNaN(x[1]), "x1 = %v", x[1])
}

// TestSolvePALU_ZeroU11_PropagatesInf: an exactly singular U yields ±Inf.
func TestSolvePALU_ZeroU11_PropagatesInf(t *testing.T) {
	// Tie |a10| == |a00| keeps row order; L21 = 1, U11 = 1 − 1 = 0.
	x := linsys.SolvePALU(linsys.Matrix2x2{{1, 1}, {1, 1}}, linsys.Vector2{1, 2})
	assert.False(t, x.IsFinite())
	assert.True(t, math.IsInf(x[1], 1), "x1 = %v", x[1])
	assert.True(t, math.IsInf(x[0], -1), "x0 = %v", x[0])
}

func TestFactorPALU_PivotsOnLargerEntry(t *testing.T) {
	a := linsys.Matrix2x2{{1, 2}, {3, 4}}
	f := linsys.FactorPALU_TestOnly(a)

	require.Equal(t, [2]int{1, 0}, f.Perm)
	assert.InDelta(t, 1.0/3.0, f.L21, 1e-15)
	assert.Equal(t, [2]float64{3, 4}, f.U[0])
	assert.InDelta(t, 2.0/3.0, f.U[1][1], 1e-15)
	assert.LessOrEqual(t, math.Abs(f.L21), 1.0, "partial pivoting bounds |L21| by 1")
}

func TestFactorPALU_TieKeepsOrder(t *testing.T) {
	f := linsys.FactorPALU_TestOnly(linsys.Matrix2x2{{1, 2}, {-1, 3}})
	assert.Equal(t, [2]int{0, 1}, f.Perm)
	assert.Equal(t, -1.0, f.L21)
	assert.Equal(t, 5.0, f.U[1][1])
}

// TestFactorPALU_Reconstruction checks P·A = L·U on several shapes.
func TestFactorPALU_Reconstruction(t *testing.T) {
	for name, a := range map[string]linsys.Matrix2x2{
		"no-swap":    {{4, 3}, {6, 3}},
		"swap":       {{0.5, -2}, {7, 1.25}},
		"negative":   {{-3, 1}, {2, -8}},
		"well-cond":  wellConditioned,
		"near-sing":  {{1, 1}, {1, 1 + 1e-10}},
		"lower-only": {{1, 0}, {5, 1}},
	} {
		a := a
		t.Run(name, func(t *testing.T) {
			f := linsys.FactorPALU_TestOnly(a)
			pa := linsys.Matrix2x2{a[f.Perm[0]], a[f.Perm[1]]}
			l := linsys.Matrix2x2{{1, 0}, {f.L21, 1}}
			requireMatrixInDelta(t, pa, mulMat(l, f.U), 1e-12)
		})
	}
}
