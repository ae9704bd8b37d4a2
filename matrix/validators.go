// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the few argument checks the
//    fixed-size matrices need (index bounds, exponent sign).
//  - Return sentinels wrapped with a validator tag so call sites can add an
//    operation tag on top and errors.Is still matches.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on the failure path.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateIndex ensures 0 ≤ i < n.
//
// Returns ErrOutOfRange (wrapped) otherwise.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d, n=%d)", i, n), ErrOutOfRange)
	}

	return nil
}

// ValidateExponent ensures k ≥ 0.
//
// Returns ErrNegativeExponent (wrapped) otherwise.
// Complexity: O(1).
func ValidateExponent(k int) error {
	if k < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateExponent(%d)", k), ErrNegativeExponent)
	}

	return nil
}
