// SPDX-License-Identifier: MIT
// Package linsys: sentinel error set.
//
// Only SolveQR and the ingestion validators return errors. SolvePALU has no
// error path on purpose: degenerate input shows up as ±Inf/NaN components.
// Match sentinels with errors.Is; operation wrappers add an "<Op>: " prefix.

package linsys

import (
	"errors"
	"fmt"
)

var (
	// ErrNullFirstColumn is returned by SolveQR when ‖A[:,0]‖₂ is exactly zero.
	// No solution is computed in that case.
	ErrNullFirstColumn = errors.New("linsys: null first column in QR decomposition")

	// ErrNaNInf signals a NaN or ±Inf entry in a matrix or right-hand side
	// at ingestion time.
	ErrNaNInf = errors.New("linsys: NaN or Inf encountered")
)

// Operation tags used as error prefixes.
const (
	opQR       = "QR"
	opValidate = "ValidateSystem"
)

// linsysErrorf wraps err with an operation tag, keeping errors.Is working.
// Call only with a non-nil err.
func linsysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
