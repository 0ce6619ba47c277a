// SPDX-License-Identifier: MIT
// Package linsys_test contains shared fixtures and property checks.

package linsys_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/condlab/linsys"
	"github.com/stretchr/testify/require"
)

// machEps is the float64 unit roundoff 2⁻⁵².
const machEps = 0x1p-52

// wellConditioned is symmetric positive definite with κ₁ = 3.2.
var wellConditioned = linsys.Matrix2x2{{2, 1}, {1, 3}}

// mulMat returns a·b.
func mulMat(a, b linsys.Matrix2x2) linsys.Matrix2x2 {
	var (
		out     linsys.Matrix2x2
		i, j, k int
	)
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			for k = 0; k < 2; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// requireMatrixInDelta compares two matrices entry by entry.
func requireMatrixInDelta(t *testing.T, want, got linsys.Matrix2x2, delta float64) {
	t.Helper()
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			require.InDeltaf(t, want[i][j], got[i][j], delta, "entry [%d,%d]", i, j)
		}
	}
}

// requireVectorInDelta compares two vectors component by component.
func requireVectorInDelta(t *testing.T, want, got linsys.Vector2, delta float64) {
	t.Helper()
	require.InDeltaf(t, want[0], got[0], delta, "component 0")
	require.InDeltaf(t, want[1], got[1], delta, "component 1")
}

// agreementTol bounds |x_PALU − x_QR| for a system with condition number cond.
func agreementTol(cond float64, x linsys.Vector2) float64 {
	scale := math.Max(1, math.Max(math.Abs(x[0]), math.Abs(x[1])))

	return 64 * machEps * cond * scale
}
