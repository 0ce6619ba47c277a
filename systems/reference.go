package systems

import "github.com/katalvlaran/condlab/linsys"

// Reference returns the three built-in systems, ordered by increasing
// condition number. All have exact solution (−1, −1).
//
//   - Sistema 1: κ₁ ≈ 4.9, columns well separated.
//   - Sistema 2: κ₁ ≈ 3.0e3, columns a few hundredths of a radian apart.
//   - Sistema 3: κ₁ ≈ 3.0e9, columns nearly parallel.
//
// A fresh slice is returned on every call.
func Reference() []System {
	return []System{
		{
			Name: "Sistema 1",
			A: linsys.Matrix2x2{
				{5.547001962252291e-01, -3.770900990025203e-02},
				{8.320502943378437e-01, -9.992887623566787e-01},
			},
			B:     linsys.Vector2{-5.169911863249772e-01, 1.672384680188350e-01},
			Exact: linsys.ExactSolution,
		},
		{
			Name: "Sistema 2",
			A: linsys.Matrix2x2{
				{5.547001962252291e-01, -5.540607316466765e-01},
				{8.320502943378437e-01, -8.324762492991313e-01},
			},
			B:     linsys.Vector2{-6.394645785530173e-04, 4.259549612877223e-04},
			Exact: linsys.ExactSolution,
		},
		{
			Name: "Sistema 3",
			A: linsys.Matrix2x2{
				{5.547001962252291e-01, -5.547001955851905e-01},
				{8.320502943378437e-01, -8.320502947645361e-01},
			},
			B:     linsys.Vector2{-6.400391328043042e-10, 4.266924591433963e-10},
			Exact: linsys.ExactSolution,
		},
	}
}
