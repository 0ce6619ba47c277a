package report

import (
	"github.com/katalvlaran/condlab/linsys"
	"github.com/katalvlaran/condlab/systems"
)

// Result is the outcome of both solvers on one system.
type Result struct {
	Name string
	Cond float64 // κ₁(A)

	PALU    linsys.Vector2 // may hold ±Inf/NaN
	PALUErr float64

	QR     linsys.Vector2 // zero vector when QRFail != nil
	QRErr  float64
	QRFail error
}

// Evaluate solves one system with both methods.
func Evaluate(s systems.System) Result {
	r := Result{
		Name: s.Name,
		Cond: linsys.Cond1(s.A),
	}

	r.PALU = linsys.SolvePALU(s.A, s.B)
	r.PALUErr = linsys.RelativeErrorTo(r.PALU, s.Exact)

	r.QR, r.QRFail = linsys.SolveQR(s.A, s.B)
	if r.QRFail == nil {
		r.QRErr = linsys.RelativeErrorTo(r.QR, s.Exact)
	}

	return r
}

// Run evaluates every system in order.
func Run(ss []systems.System) []Result {
	out := make([]Result, len(ss))
	for i, s := range ss {
		out[i] = Evaluate(s)
	}

	return out
}
