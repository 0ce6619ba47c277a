// Package report drives the solvers over a set of systems and renders the
// comparison as plain text.
//
// Run is pure: it evaluates SolvePALU and SolveQR independently for each
// system and records their relative errors. Reporter.Write renders the
// results with fixed 15-decimal formatting and routes QR failures to the
// diagnostic logger instead of the output stream.
package report
