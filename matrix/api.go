// SPDX-License-Identifier: MIT

// Package matrix: capability interfaces.
// Each concrete dimension implements the same small set of orthogonal
// interfaces; compile-time assertions at the bottom keep them honest.
//
// Notes:
//   - Division-requiring operations (inverse) are not part of Square: Go
//     methods cannot narrow the receiver's constraint, so they live in the
//     Float-constrained functions Invert2/Invert3/Invert4.
//   - Det and IsInvertible only need ring arithmetic and stay on Square.
package matrix

import (
	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
)

// Shape is the shape/indexing capability of a matrix whose columns and rows
// are vectors of type V.
type Shape[V any] interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int
	// Cols returns the number of columns. Complexity: O(1).
	Cols() int
	// IsColMajor reports the storage convention (always true here).
	IsColMajor() bool
	// IsSquare reports Rows() == Cols().
	IsSquare() bool
	// Col returns column i or ErrOutOfRange.
	Col(i int) (V, error)
	// Row returns row i, synthesized from component i of every column,
	// or ErrOutOfRange. Complexity: O(N).
	Row(i int) (V, error)
}

// Numeric adds the linear-map operations that need only ring arithmetic.
type Numeric[T scalar.Number, V any, M any] interface {
	Shape[V]
	// Neg returns the component-wise negation.
	Neg() M
	// MulT returns the matrix scaled by k.
	MulT(k T) M
	// MulV returns the matrix-vector product.
	MulV(v V) V
}

// Square adds the square-matrix algebra, the structural predicates and the
// two equality notions.
type Square[T scalar.Number, V any, M any] interface {
	Numeric[T, V, M]

	AddM(o M) M
	SubM(o M) M
	MulM(o M) M
	Det() T
	Trace() T
	Transpose() M
	Diagonal() V

	IsIdentity(opts ...Option) bool
	IsSymmetric(opts ...Option) bool
	IsDiagonal(opts ...Option) bool
	IsRotated(opts ...Option) bool
	IsInvertible(opts ...Option) bool

	ExactEqual(o M) bool
	FuzzyEqual(o M, opts ...Option) bool
	Equal(o M) bool
}

// Widen2 is implemented by 2×2 matrices.
type Widen2[T scalar.Number] interface {
	ToMat3() Mat3[T]
	ToMat4() Mat4[T]
}

// Widen3 is implemented by 3×3 matrices.
type Widen3[T scalar.Number] interface {
	ToMat4() Mat4[T]
}

// Compile-time conformance.
var (
	_ Square[float64, vector.Vec2[float64], Mat2[float64]] = Mat2[float64]{}
	_ Square[float32, vector.Vec3[float32], Mat3[float32]] = Mat3[float32]{}
	_ Square[float64, vector.Vec4[float64], Mat4[float64]] = Mat4[float64]{}
	_ Square[int, vector.Vec4[int], Mat4[int]]             = Mat4[int]{}
	_ Widen2[float64]                                      = Mat2[float64]{}
	_ Widen3[int]                                          = Mat3[int]{}
)
