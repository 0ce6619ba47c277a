// SPDX-License-Identifier: MIT
// Package linsys: ingestion checks.
//
// The solvers themselves never validate: non-finite or singular input is a
// scenario to observe, not to reject. ValidateSystem is for callers that load
// systems from outside the program and want to fail fast on malformed data.

package linsys

import "fmt"

// ValidateSystem checks that every entry of a and b is finite.
//
// Errors:
//   - ErrNaNInf (wrapped with the offending location).
//
// Complexity: O(1).
func ValidateSystem(a Matrix2x2, b Vector2) error {
	var i int
	for i = 0; i < 2; i++ {
		if !Vector2(a[i]).isFinite() {
			return linsysErrorf(opValidate, fmt.Errorf("A row %d: %w", i, ErrNaNInf))
		}
	}
	if !b.isFinite() {
		return linsysErrorf(opValidate, fmt.Errorf("b: %w", ErrNaNInf))
	}

	return nil
}
