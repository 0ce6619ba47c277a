// SPDX-License-Identifier: MIT

package linsys

// Test bridge for the unexported factorizations. Compiled only with tests,
// visible to package linsys_test.

// PALUFactors is a read-only snapshot of a PA = LU factorization.
type PALUFactors struct {
	L21  float64
	U    Matrix2x2 // U[1][0] is always 0
	Perm [2]int
}

// FactorPALU_TestOnly forwards to factorPALU.
func FactorPALU_TestOnly(a Matrix2x2) PALUFactors {
	f := factorPALU(a)

	return PALUFactors{
		L21:  f.lu[1][0],
		U:    Matrix2x2{f.lu[0], {0, f.lu[1][1]}},
		Perm: f.perm,
	}
}

// QRFactors is a read-only snapshot of a Gram–Schmidt factorization.
type QRFactors struct {
	Q          Matrix2x2 // columns q0, q1
	R          Matrix2x2 // R[1][0] is always 0
	Degenerate bool
}

// FactorQR_TestOnly forwards to factorQR.
func FactorQR_TestOnly(a Matrix2x2) (QRFactors, bool) {
	f, ok := factorQR(a)
	if !ok {
		return QRFactors{}, false
	}

	return QRFactors{
		Q: Matrix2x2{
			{f.q0[0], f.q1[0]},
			{f.q0[1], f.q1[1]},
		},
		R:          Matrix2x2{{f.r00, f.r01}, {0, f.r11}},
		Degenerate: f.degenerate,
	}, true
}
