// Package condlab is a small laboratory for watching conditioning at work
// on 2×2 linear systems Ax = b.
//
// 🚀 What is condlab?
//
//	Two direct solvers run side by side on the same systems:
//		• PALU – LU with partial pivoting, forward/back substitution
//		• QR   – Gram–Schmidt orthogonalization, back substitution against R
//	and each answer is scored by its relative error against the exact
//	solution (−1, −1).
//
// The built-in systems have coefficient columns that get closer and closer
// to parallel, so κ(A) climbs from ≈5 to ≈3·10⁹ and the digits each method
// can recover shrink accordingly.
//
// Under the hood:
//
//	linsys/            — the solvers, the error metric, conditioning helpers
//	systems/           — reference systems and a versioned JSON loader
//	report/            — runs both solvers and renders the comparison
//	internal/platform/ — floating-point capability probe
//	internal/watch/    — file watcher for the CLI's -watch mode
//	cmd/condlab/       — command-line entry point
//
//	go install github.com/katalvlaran/condlab/cmd/condlab@latest
package condlab
