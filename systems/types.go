package systems

import "github.com/katalvlaran/condlab/linsys"

// System is one Ax = b problem with a known exact solution.
type System struct {
	Name  string
	A     linsys.Matrix2x2
	B     linsys.Vector2
	Exact linsys.Vector2
}
