// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
)

// Mat2 is a 2×2 column-major matrix.
// The zero value is the zero matrix.
type Mat2[T scalar.Number] struct {
	c [2]vector.Vec2[T] // columns
}

// NewMat2 builds a Mat2 from its components in column-major order.
func NewMat2[T scalar.Number](c0r0, c0r1, c1r0, c1r1 T) Mat2[T] {
	return Mat2FromCols(vector.New2(c0r0, c0r1), vector.New2(c1r0, c1r1))
}

// Mat2FromCols builds a Mat2 from two column vectors.
func Mat2FromCols[T scalar.Number](c0, c1 vector.Vec2[T]) Mat2[T] {
	return Mat2[T]{c: [2]vector.Vec2[T]{c0, c1}}
}

// Mat2FromValue returns value on the diagonal and zero elsewhere.
func Mat2FromValue[T scalar.Number](value T) Mat2[T] {
	return NewMat2(value, 0, 0, value)
}

// Mat2Zero returns the zero matrix.
func Mat2Zero[T scalar.Number]() Mat2[T] { return Mat2[T]{} }

// Mat2Identity returns the identity matrix.
func Mat2Identity[T scalar.Number]() Mat2[T] { return Mat2FromValue[T](1) }

func (m Mat2[T]) identity() Mat2[T] { return Mat2Identity[T]() }

// ---------- Shape ----------

// Rows returns 2.
func (m Mat2[T]) Rows() int { return 2 }

// Cols returns 2.
func (m Mat2[T]) Cols() int { return 2 }

// IsColMajor returns true.
func (m Mat2[T]) IsColMajor() bool { return true }

// IsSquare returns true.
func (m Mat2[T]) IsSquare() bool { return true }

// Col returns column i, or ErrOutOfRange for i outside [0,2).
func (m Mat2[T]) Col(i int) (vector.Vec2[T], error) {
	if err := ValidateIndex(i, 2); err != nil {
		return vector.Vec2[T]{}, matrixErrorf(opCol, err)
	}

	return m.c[i], nil
}

// Row returns row i, or ErrOutOfRange for i outside [0,2).
func (m Mat2[T]) Row(i int) (vector.Vec2[T], error) {
	if err := ValidateIndex(i, 2); err != nil {
		return vector.Vec2[T]{}, matrixErrorf(opRow, err)
	}

	return m.row(i), nil
}

// At returns the element in column col, row row.
func (m Mat2[T]) At(col, row int) (T, error) {
	if err := ValidateIndex(col, 2); err != nil {
		return 0, matrixErrorf(opAt, err)
	}
	if err := ValidateIndex(row, 2); err != nil {
		return 0, matrixErrorf(opAt, err)
	}

	return m.c[col][row], nil
}

// Columns returns a copy of the column array.
func (m Mat2[T]) Columns() [2]vector.Vec2[T] { return m.c }

// row is the unchecked row accessor used by the kernels.
func (m Mat2[T]) row(i int) vector.Vec2[T] {
	return vector.New2(m.c[0][i], m.c[1][i])
}

// ---------- Numeric ----------

// Neg returns -m.
func (m Mat2[T]) Neg() Mat2[T] {
	return Mat2FromCols(m.c[0].Neg(), m.c[1].Neg())
}

// MulT returns m scaled by k.
func (m Mat2[T]) MulT(k T) Mat2[T] {
	return Mat2FromCols(m.c[0].MulT(k), m.c[1].MulT(k))
}

// MulV returns m·v.
func (m Mat2[T]) MulV(v vector.Vec2[T]) vector.Vec2[T] {
	return vector.New2(m.row(0).Dot(v), m.row(1).Dot(v))
}

// ---------- Square ----------

// AddM returns m + o.
func (m Mat2[T]) AddM(o Mat2[T]) Mat2[T] {
	return Mat2FromCols(m.c[0].Add(o.c[0]), m.c[1].Add(o.c[1]))
}

// SubM returns m - o.
func (m Mat2[T]) SubM(o Mat2[T]) Mat2[T] {
	return Mat2FromCols(m.c[0].Sub(o.c[0]), m.c[1].Sub(o.c[1]))
}

// MulM returns the matrix product m·o.
func (m Mat2[T]) MulM(o Mat2[T]) Mat2[T] {
	r0, r1 := m.row(0), m.row(1)
	return NewMat2(
		r0.Dot(o.c[0]), r1.Dot(o.c[0]),
		r0.Dot(o.c[1]), r1.Dot(o.c[1]),
	)
}

// Det returns a00·a11 − a10·a01.
func (m Mat2[T]) Det() T {
	return m.c[0][0]*m.c[1][1] - m.c[1][0]*m.c[0][1]
}

// Trace returns the sum of the diagonal.
func (m Mat2[T]) Trace() T { return m.c[0][0] + m.c[1][1] }

// Diagonal returns the diagonal entries.
func (m Mat2[T]) Diagonal() vector.Vec2[T] { return vector.New2(m.c[0][0], m.c[1][1]) }

// Transpose returns mᵀ.
func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2FromCols(m.row(0), m.row(1))
}

// IsIdentity reports whether m fuzzy-equals the identity.
func (m Mat2[T]) IsIdentity(opts ...Option) bool {
	return m.FuzzyEqual(Mat2Identity[T](), opts...)
}

// IsSymmetric reports whether a01 fuzzy-equals a10.
func (m Mat2[T]) IsSymmetric(opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	return scalar.FuzzyEqEps(m.c[0][1], m.c[1][0], eps)
}

// IsDiagonal reports whether both off-diagonal entries fuzzy-equal zero.
func (m Mat2[T]) IsDiagonal(opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	return scalar.FuzzyEqEps(m.c[0][1], 0, eps) &&
		scalar.FuzzyEqEps(m.c[1][0], 0, eps)
}

// IsRotated reports whether m is NOT the identity.
// Any non-identity matrix qualifies, including a pure scale or shear.
func (m Mat2[T]) IsRotated(opts ...Option) bool {
	return !m.IsIdentity(opts...)
}

// IsInvertible reports whether Det does not fuzzy-equal zero.
func (m Mat2[T]) IsInvertible(opts ...Option) bool {
	return !scalar.FuzzyEqEps(m.Det(), 0, gatherOptions(opts...).eps)
}

// ---------- Equality ----------

// ExactEqual reports component-wise == with no tolerance.
func (m Mat2[T]) ExactEqual(o Mat2[T]) bool { return m == o }

// FuzzyEqual reports whether every component pair is within the tolerance.
func (m Mat2[T]) FuzzyEqual(o Mat2[T], opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	return m.c[0].FuzzyEqual(o.c[0], eps) &&
		m.c[1].FuzzyEqual(o.c[1], eps)
}

// Equal is the general equality operator; it is FuzzyEqual with defaults.
func (m Mat2[T]) Equal(o Mat2[T]) bool { return m.FuzzyEqual(o) }

// ---------- Widening ----------

// ToMat3 embeds m in the top-left block of a 3×3 identity.
func (m Mat2[T]) ToMat3() Mat3[T] { return Mat3FromMat2(m) }

// ToMat4 embeds m in the top-left block of a 4×4 identity.
func (m Mat2[T]) ToMat4() Mat4[T] { return Mat4FromMat2(m) }

// String renders m row by row.
func (m Mat2[T]) String() string {
	return formatSquare("Mat2", 2, func(c, r int) T { return m.c[c][r] })
}
