// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
)

// Mat3 is a 3×3 column-major matrix.
// The zero value is the zero matrix.
type Mat3[T scalar.Number] struct {
	c [3]vector.Vec3[T] // columns
}

// NewMat3 builds a Mat3 from its components in column-major order.
func NewMat3[T scalar.Number](
	c0r0, c0r1, c0r2,
	c1r0, c1r1, c1r2,
	c2r0, c2r1, c2r2 T,
) Mat3[T] {
	return Mat3FromCols(
		vector.New3(c0r0, c0r1, c0r2),
		vector.New3(c1r0, c1r1, c1r2),
		vector.New3(c2r0, c2r1, c2r2),
	)
}

// Mat3FromCols builds a Mat3 from three column vectors.
func Mat3FromCols[T scalar.Number](c0, c1, c2 vector.Vec3[T]) Mat3[T] {
	return Mat3[T]{c: [3]vector.Vec3[T]{c0, c1, c2}}
}

// Mat3FromValue returns value on the diagonal and zero elsewhere.
func Mat3FromValue[T scalar.Number](value T) Mat3[T] {
	return NewMat3(
		value, 0, 0,
		0, value, 0,
		0, 0, value,
	)
}

// Mat3FromMat2 embeds m in the top-left block of a 3×3 identity.
func Mat3FromMat2[T scalar.Number](m Mat2[T]) Mat3[T] {
	return NewMat3(
		m.c[0][0], m.c[0][1], 0,
		m.c[1][0], m.c[1][1], 0,
		0, 0, 1,
	)
}

// Mat3Zero returns the zero matrix.
func Mat3Zero[T scalar.Number]() Mat3[T] { return Mat3[T]{} }

// Mat3Identity returns the identity matrix.
func Mat3Identity[T scalar.Number]() Mat3[T] { return Mat3FromValue[T](1) }

func (m Mat3[T]) identity() Mat3[T] { return Mat3Identity[T]() }

// ---------- Shape ----------

// Rows returns 3.
func (m Mat3[T]) Rows() int { return 3 }

// Cols returns 3.
func (m Mat3[T]) Cols() int { return 3 }

// IsColMajor returns true.
func (m Mat3[T]) IsColMajor() bool { return true }

// IsSquare returns true.
func (m Mat3[T]) IsSquare() bool { return true }

// Col returns column i, or ErrOutOfRange for i outside [0,3).
func (m Mat3[T]) Col(i int) (vector.Vec3[T], error) {
	if err := ValidateIndex(i, 3); err != nil {
		return vector.Vec3[T]{}, matrixErrorf(opCol, err)
	}

	return m.c[i], nil
}

// Row returns row i, or ErrOutOfRange for i outside [0,3).
func (m Mat3[T]) Row(i int) (vector.Vec3[T], error) {
	if err := ValidateIndex(i, 3); err != nil {
		return vector.Vec3[T]{}, matrixErrorf(opRow, err)
	}

	return m.row(i), nil
}

// At returns the element in column col, row row.
func (m Mat3[T]) At(col, row int) (T, error) {
	if err := ValidateIndex(col, 3); err != nil {
		return 0, matrixErrorf(opAt, err)
	}
	if err := ValidateIndex(row, 3); err != nil {
		return 0, matrixErrorf(opAt, err)
	}

	return m.c[col][row], nil
}

// Columns returns a copy of the column array.
func (m Mat3[T]) Columns() [3]vector.Vec3[T] { return m.c }

func (m Mat3[T]) row(i int) vector.Vec3[T] {
	return vector.New3(m.c[0][i], m.c[1][i], m.c[2][i])
}

// ---------- Numeric ----------

// Neg returns -m.
func (m Mat3[T]) Neg() Mat3[T] {
	return Mat3FromCols(m.c[0].Neg(), m.c[1].Neg(), m.c[2].Neg())
}

// MulT returns m scaled by k.
func (m Mat3[T]) MulT(k T) Mat3[T] {
	return Mat3FromCols(m.c[0].MulT(k), m.c[1].MulT(k), m.c[2].MulT(k))
}

// MulV returns m·v.
func (m Mat3[T]) MulV(v vector.Vec3[T]) vector.Vec3[T] {
	return vector.New3(m.row(0).Dot(v), m.row(1).Dot(v), m.row(2).Dot(v))
}

// ---------- Square ----------

// AddM returns m + o.
func (m Mat3[T]) AddM(o Mat3[T]) Mat3[T] {
	return Mat3FromCols(m.c[0].Add(o.c[0]), m.c[1].Add(o.c[1]), m.c[2].Add(o.c[2]))
}

// SubM returns m - o.
func (m Mat3[T]) SubM(o Mat3[T]) Mat3[T] {
	return Mat3FromCols(m.c[0].Sub(o.c[0]), m.c[1].Sub(o.c[1]), m.c[2].Sub(o.c[2]))
}

// MulM returns the matrix product m·o.
// Column j of the result is (row(0)·o_j, row(1)·o_j, row(2)·o_j).
func (m Mat3[T]) MulM(o Mat3[T]) Mat3[T] {
	r0, r1, r2 := m.row(0), m.row(1), m.row(2)
	var out Mat3[T]
	for j := 0; j < 3; j++ {
		out.c[j] = vector.New3(r0.Dot(o.c[j]), r1.Dot(o.c[j]), r2.Dot(o.c[j]))
	}

	return out
}

// Det returns the scalar triple product col0 · (col1 × col2).
func (m Mat3[T]) Det() T {
	return m.c[0].Dot(m.c[1].Cross(m.c[2]))
}

// Trace returns the sum of the diagonal.
func (m Mat3[T]) Trace() T { return m.c[0][0] + m.c[1][1] + m.c[2][2] }

// Diagonal returns the diagonal entries.
func (m Mat3[T]) Diagonal() vector.Vec3[T] {
	return vector.New3(m.c[0][0], m.c[1][1], m.c[2][2])
}

// Transpose returns mᵀ.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3FromCols(m.row(0), m.row(1), m.row(2))
}

// IsIdentity reports whether m fuzzy-equals the identity.
func (m Mat3[T]) IsIdentity(opts ...Option) bool {
	return m.FuzzyEqual(Mat3Identity[T](), opts...)
}

// IsSymmetric reports whether every off-diagonal pair (i,j),(j,i) is
// fuzzy-equal.
func (m Mat3[T]) IsSymmetric(opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	return scalar.FuzzyEqEps(m.c[0][1], m.c[1][0], eps) &&
		scalar.FuzzyEqEps(m.c[0][2], m.c[2][0], eps) &&
		scalar.FuzzyEqEps(m.c[1][2], m.c[2][1], eps)
}

// IsDiagonal reports whether every off-diagonal entry fuzzy-equals zero.
func (m Mat3[T]) IsDiagonal(opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			if c != r && !scalar.FuzzyEqEps(m.c[c][r], 0, eps) {
				return false
			}
		}
	}

	return true
}

// IsRotated reports whether m is NOT the identity.
func (m Mat3[T]) IsRotated(opts ...Option) bool {
	return !m.IsIdentity(opts...)
}

// IsInvertible reports whether Det does not fuzzy-equal zero.
func (m Mat3[T]) IsInvertible(opts ...Option) bool {
	return !scalar.FuzzyEqEps(m.Det(), 0, gatherOptions(opts...).eps)
}

// ---------- Equality ----------

// ExactEqual reports component-wise == with no tolerance.
func (m Mat3[T]) ExactEqual(o Mat3[T]) bool { return m == o }

// FuzzyEqual reports whether every component pair is within the tolerance.
func (m Mat3[T]) FuzzyEqual(o Mat3[T], opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	return m.c[0].FuzzyEqual(o.c[0], eps) &&
		m.c[1].FuzzyEqual(o.c[1], eps) &&
		m.c[2].FuzzyEqual(o.c[2], eps)
}

// Equal is FuzzyEqual with default options.
func (m Mat3[T]) Equal(o Mat3[T]) bool { return m.FuzzyEqual(o) }

// ---------- Widening ----------

// ToMat4 embeds m in the top-left block of a 4×4 identity.
func (m Mat3[T]) ToMat4() Mat4[T] { return Mat4FromMat3(m) }

// String renders m row by row.
func (m Mat3[T]) String() string {
	return formatSquare("Mat3", 3, func(c, r int) T { return m.c[c][r] })
}
