// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
)

// Mat4 is a 4×4 column-major matrix, typically a homogeneous transform.
// The zero value is the zero matrix.
type Mat4[T scalar.Number] struct {
	c [4]vector.Vec4[T] // columns
}

// NewMat4 builds a Mat4 from its components in column-major order.
func NewMat4[T scalar.Number](
	c0r0, c0r1, c0r2, c0r3,
	c1r0, c1r1, c1r2, c1r3,
	c2r0, c2r1, c2r2, c2r3,
	c3r0, c3r1, c3r2, c3r3 T,
) Mat4[T] {
	return Mat4FromCols(
		vector.New4(c0r0, c0r1, c0r2, c0r3),
		vector.New4(c1r0, c1r1, c1r2, c1r3),
		vector.New4(c2r0, c2r1, c2r2, c2r3),
		vector.New4(c3r0, c3r1, c3r2, c3r3),
	)
}

// Mat4FromCols builds a Mat4 from four column vectors.
func Mat4FromCols[T scalar.Number](c0, c1, c2, c3 vector.Vec4[T]) Mat4[T] {
	return Mat4[T]{c: [4]vector.Vec4[T]{c0, c1, c2, c3}}
}

// Mat4FromValue returns value on the diagonal and zero elsewhere.
func Mat4FromValue[T scalar.Number](value T) Mat4[T] {
	return NewMat4(
		value, 0, 0, 0,
		0, value, 0, 0,
		0, 0, value, 0,
		0, 0, 0, value,
	)
}

// Mat4FromMat2 embeds m in the top-left block of a 4×4 identity.
func Mat4FromMat2[T scalar.Number](m Mat2[T]) Mat4[T] {
	return NewMat4(
		m.c[0][0], m.c[0][1], 0, 0,
		m.c[1][0], m.c[1][1], 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Mat4FromMat3 embeds m in the top-left block of a 4×4 identity.
// This is the homogeneous form of a linear 3D transform.
func Mat4FromMat3[T scalar.Number](m Mat3[T]) Mat4[T] {
	return NewMat4(
		m.c[0][0], m.c[0][1], m.c[0][2], 0,
		m.c[1][0], m.c[1][1], m.c[1][2], 0,
		m.c[2][0], m.c[2][1], m.c[2][2], 0,
		0, 0, 0, 1,
	)
}

// Mat4Zero returns the zero matrix.
func Mat4Zero[T scalar.Number]() Mat4[T] { return Mat4[T]{} }

// Mat4Identity returns the identity matrix.
func Mat4Identity[T scalar.Number]() Mat4[T] { return Mat4FromValue[T](1) }

func (m Mat4[T]) identity() Mat4[T] { return Mat4Identity[T]() }

// ---------- Shape ----------

// Rows returns 4.
func (m Mat4[T]) Rows() int { return 4 }

// Cols returns 4.
func (m Mat4[T]) Cols() int { return 4 }

// IsColMajor returns true.
func (m Mat4[T]) IsColMajor() bool { return true }

// IsSquare returns true.
func (m Mat4[T]) IsSquare() bool { return true }

// Col returns column i, or ErrOutOfRange for i outside [0,4).
func (m Mat4[T]) Col(i int) (vector.Vec4[T], error) {
	if err := ValidateIndex(i, 4); err != nil {
		return vector.Vec4[T]{}, matrixErrorf(opCol, err)
	}

	return m.c[i], nil
}

// Row returns row i, or ErrOutOfRange for i outside [0,4).
func (m Mat4[T]) Row(i int) (vector.Vec4[T], error) {
	if err := ValidateIndex(i, 4); err != nil {
		return vector.Vec4[T]{}, matrixErrorf(opRow, err)
	}

	return m.row(i), nil
}

// At returns the element in column col, row row.
func (m Mat4[T]) At(col, row int) (T, error) {
	if err := ValidateIndex(col, 4); err != nil {
		return 0, matrixErrorf(opAt, err)
	}
	if err := ValidateIndex(row, 4); err != nil {
		return 0, matrixErrorf(opAt, err)
	}

	return m.c[col][row], nil
}

// Columns returns a copy of the column array.
func (m Mat4[T]) Columns() [4]vector.Vec4[T] { return m.c }

func (m Mat4[T]) row(i int) vector.Vec4[T] {
	return vector.New4(m.c[0][i], m.c[1][i], m.c[2][i], m.c[3][i])
}

// ---------- Numeric ----------

// Neg returns -m.
func (m Mat4[T]) Neg() Mat4[T] {
	return Mat4FromCols(m.c[0].Neg(), m.c[1].Neg(), m.c[2].Neg(), m.c[3].Neg())
}

// MulT returns m scaled by k.
func (m Mat4[T]) MulT(k T) Mat4[T] {
	return Mat4FromCols(m.c[0].MulT(k), m.c[1].MulT(k), m.c[2].MulT(k), m.c[3].MulT(k))
}

// MulV returns m·v.
func (m Mat4[T]) MulV(v vector.Vec4[T]) vector.Vec4[T] {
	return vector.New4(m.row(0).Dot(v), m.row(1).Dot(v), m.row(2).Dot(v), m.row(3).Dot(v))
}

// ---------- Square ----------

// AddM returns m + o.
func (m Mat4[T]) AddM(o Mat4[T]) Mat4[T] {
	return Mat4FromCols(
		m.c[0].Add(o.c[0]), m.c[1].Add(o.c[1]),
		m.c[2].Add(o.c[2]), m.c[3].Add(o.c[3]),
	)
}

// SubM returns m - o.
func (m Mat4[T]) SubM(o Mat4[T]) Mat4[T] {
	return Mat4FromCols(
		m.c[0].Sub(o.c[0]), m.c[1].Sub(o.c[1]),
		m.c[2].Sub(o.c[2]), m.c[3].Sub(o.c[3]),
	)
}

// MulM returns the matrix product m·o.
//
// Implementation:
//   - Rows of m are materialized once; column j of the result is the four
//     dot products row(i)·o_j.
//
// Complexity:
//   - Time O(64) multiply-adds, no heap allocation.
func (m Mat4[T]) MulM(o Mat4[T]) Mat4[T] {
	rows := [4]vector.Vec4[T]{m.row(0), m.row(1), m.row(2), m.row(3)}
	var out Mat4[T]
	for j := 0; j < 4; j++ {
		out.c[j] = vector.New4(
			rows[0].Dot(o.c[j]), rows[1].Dot(o.c[j]),
			rows[2].Dot(o.c[j]), rows[3].Dot(o.c[j]),
		)
	}

	return out
}

// Det returns the determinant by Laplace expansion along the first row.
//
// Implementation:
//   - For each column c, the 3×3 minor drops column c and row 0; its
//     determinant comes from Mat3.Det.
//   - Cofactor signs alternate + − + −.
//
// Complexity:
//   - Time O(1): four 3×3 triple products.
func (m Mat4[T]) Det() T {
	return m.c[0][0]*m.minor0(0).Det() -
		m.c[1][0]*m.minor0(1).Det() +
		m.c[2][0]*m.minor0(2).Det() -
		m.c[3][0]*m.minor0(3).Det()
}

// minor0 returns the 3×3 submatrix without column skip and row 0.
func (m Mat4[T]) minor0(skip int) Mat3[T] {
	var out Mat3[T]
	k := 0
	for c := 0; c < 4; c++ {
		if c == skip {
			continue
		}
		out.c[k] = vector.New3(m.c[c][1], m.c[c][2], m.c[c][3])
		k++
	}

	return out
}

// Trace returns the sum of the diagonal.
func (m Mat4[T]) Trace() T { return m.c[0][0] + m.c[1][1] + m.c[2][2] + m.c[3][3] }

// Diagonal returns the diagonal entries.
func (m Mat4[T]) Diagonal() vector.Vec4[T] {
	return vector.New4(m.c[0][0], m.c[1][1], m.c[2][2], m.c[3][3])
}

// Transpose returns mᵀ.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4FromCols(m.row(0), m.row(1), m.row(2), m.row(3))
}

// IsIdentity reports whether m fuzzy-equals the identity.
func (m Mat4[T]) IsIdentity(opts ...Option) bool {
	return m.FuzzyEqual(Mat4Identity[T](), opts...)
}

// IsSymmetric reports whether every off-diagonal pair (i,j),(j,i) is
// fuzzy-equal.
func (m Mat4[T]) IsSymmetric(opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	for c := 0; c < 4; c++ {
		for r := c + 1; r < 4; r++ {
			if !scalar.FuzzyEqEps(m.c[c][r], m.c[r][c], eps) {
				return false
			}
		}
	}

	return true
}

// IsDiagonal reports whether every off-diagonal entry fuzzy-equals zero.
func (m Mat4[T]) IsDiagonal(opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if c != r && !scalar.FuzzyEqEps(m.c[c][r], 0, eps) {
				return false
			}
		}
	}

	return true
}

// IsRotated reports whether m is NOT the identity.
func (m Mat4[T]) IsRotated(opts ...Option) bool {
	return !m.IsIdentity(opts...)
}

// IsInvertible reports whether Det does not fuzzy-equal zero.
func (m Mat4[T]) IsInvertible(opts ...Option) bool {
	return !scalar.FuzzyEqEps(m.Det(), 0, gatherOptions(opts...).eps)
}

// ---------- Equality ----------

// ExactEqual reports component-wise == with no tolerance.
func (m Mat4[T]) ExactEqual(o Mat4[T]) bool { return m == o }

// FuzzyEqual reports whether every component pair is within the tolerance.
func (m Mat4[T]) FuzzyEqual(o Mat4[T], opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	for i := 0; i < 4; i++ {
		if !m.c[i].FuzzyEqual(o.c[i], eps) {
			return false
		}
	}

	return true
}

// Equal is FuzzyEqual with default options.
func (m Mat4[T]) Equal(o Mat4[T]) bool { return m.FuzzyEqual(o) }

// String renders m row by row.
func (m Mat4[T]) String() string {
	return formatSquare("Mat4", 4, func(c, r int) T { return m.c[c][r] })
}
