// SPDX-License-Identifier: MIT

// Package scalar defines the numeric capability set shared by the vector,
// quaternion and matrix packages.
//
// Purpose:
//   - Declare the type constraints (Number for ring-only code, Float for code
//     that divides or takes square roots).
//   - Provide literal casting, absolute value and tolerance ("fuzzy") equality
//     as plain generic functions so every higher layer uses one definition.
//
// Determinism:
//   - All helpers are pure and allocation-free.
package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultEpsilon is the absolute tolerance used by FuzzyEq.
// For integer types any non-zero difference is ≥ 1, so FuzzyEq reduces to ==.
const DefaultEpsilon = 1e-6

// Number is any built-in integer or floating-point type.
// Ring operations (+, -, *) and comparisons are available on every Number.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the subset of Number with a meaningful division.
type Float interface {
	constraints.Float
}

// Cast converts v between numeric types using Go conversion rules.
func Cast[U Number, T Number](v T) U {
	return U(v)
}

// Zero returns the additive identity of T.
func Zero[T Number]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Number]() T { return 1 }

// Abs returns |x|. Unsigned types are returned unchanged.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// FuzzyEq reports whether a and b differ by less than DefaultEpsilon.
func FuzzyEq[T Number](a, b T) bool {
	return FuzzyEqEps(a, b, DefaultEpsilon)
}

// FuzzyEqEps reports whether |a-b| < eps, evaluated in float64.
// eps == 0 degrades to exact equality so that callers can opt into strict
// comparison through the same code path.
//
// Notes:
//   - NaN never compares equal, even to itself.
//   - The difference is taken in float64 to avoid unsigned wrap-around.
func FuzzyEqEps[T Number](a, b T, eps float64) bool {
	fa, fb := float64(a), float64(b)
	if eps == 0 {
		return fa == fb
	}

	return math.Abs(fa-fb) < eps
}
