// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package plus the single wrapping helper. Operations return these sentinels
// (optionally wrapped with an operation tag) and tests match them via
// errors.Is. No operation panics on a user-triggered error condition; panics
// are reserved for invalid Option constructor arguments (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Operations
// wrap with matrixErrorf(opX, ErrY) so the surface reads "Op: matrix: ...",
// and callers still use errors.Is.

var (
	// ErrOutOfRange indicates that a column or row index is outside [0, N).
	// Public indexers (Col/Row/At) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSingular is returned by Invert2/Invert3/Invert4 when the determinant
	// is zero within the configured tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNegativeExponent is returned by Pow for k < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")
)

// Operation name constants for unified error wrapping.
const (
	opCol    = "Col"
	opRow    = "Row"
	opAt     = "At"
	opInvert = "Invert"
	opPow    = "Pow"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
