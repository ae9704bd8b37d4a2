// SPDX-License-Identifier: MIT
// Package matrix: inverse kernels.
//
// Purpose:
//   - Provide the division-requiring half of the square-matrix algebra.
//     Every function is constrained to scalar.Float, so integer matrices can
//     use Det/IsInvertible but cannot call a truncating inverse by accident.
//
// Contract shared by Invert2/Invert3/Invert4:
//   - The determinant is compared to zero under the resolved tolerance first.
//     A singular input returns ErrSingular (wrapped with "Invert") and the
//     zero matrix; no elimination is attempted.
//   - m.IsInvertible(opts...) is true iff InvertN(m, opts...) returns nil error.
//   - Inputs are never mutated; results are fresh values.

package matrix

import (
	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
)

// Invert2 returns m⁻¹ via the closed-form adjugate / determinant.
//
// Errors:
//   - ErrSingular when Det fuzzy-equals zero.
//
// Complexity:
//   - Time O(1), Space O(1).
func Invert2[T scalar.Float](m Mat2[T], opts ...Option) (Mat2[T], error) {
	if !m.IsInvertible(opts...) {
		return Mat2[T]{}, matrixErrorf(opInvert, ErrSingular)
	}

	d := m.Det()
	return NewMat2(
		m.c[1][1]/d, -m.c[0][1]/d,
		-m.c[1][0]/d, m.c[0][0]/d,
	), nil
}

// Invert3 returns m⁻¹ via the cofactor identity.
//
// Implementation:
//   - The cofactor matrix has columns (c1×c2, c2×c0, c0×c1); dividing by the
//     determinant and transposing yields the inverse.
//
// Errors:
//   - ErrSingular when Det fuzzy-equals zero.
//
// Complexity:
//   - Time O(1): three cross products, one transpose.
func Invert3[T scalar.Float](m Mat3[T], opts ...Option) (Mat3[T], error) {
	if !m.IsInvertible(opts...) {
		return Mat3[T]{}, matrixErrorf(opInvert, ErrSingular)
	}

	d := m.Det()
	return Mat3FromCols(
		m.c[1].Cross(m.c[2]).DivT(d),
		m.c[2].Cross(m.c[0]).DivT(d),
		m.c[0].Cross(m.c[1]).DivT(d),
	).Transpose(), nil
}

// Invert4 returns m⁻¹ by Gauss-Jordan elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: Reject singular input via the determinant (Laplace expansion).
//   - Stage 2: Run gaussJordan4 on algorithm-local row buffers.
//
// Behavior highlights:
//   - Partial pivoting: within column j only rows j..3 are candidates.
//   - Ties keep the first maximum found scanning low→high, so results are
//     deterministic.
//
// Errors:
//   - ErrSingular when Det fuzzy-equals zero.
//
// Complexity:
//   - Time O(N³) with N = 4, Space O(N²) on the stack.
func Invert4[T scalar.Float](m Mat4[T], opts ...Option) (Mat4[T], error) {
	if !m.IsInvertible(opts...) {
		return Mat4[T]{}, matrixErrorf(opInvert, ErrSingular)
	}

	return gaussJordan4(m), nil
}

// gaussJordan4 reduces [A | I] to [I | A⁻¹] in place on two row-major
// buffers and converts the right half back to a column-major Mat4.
// Precondition: A is non-singular.
func gaussJordan4[T scalar.Float](m Mat4[T]) Mat4[T] {
	const n = 4
	var (
		a, inv [n][n]T // a[r][c] = element in row r, column c
		i, j   int     // row / pivot column iterators
		c, i1  int
		p, f   T
	)
	for i = 0; i < n; i++ {
		for c = 0; c < n; c++ {
			a[i][c] = m.c[c][i]
		}
		inv[i][i] = 1
	}

	for j = 0; j < n; j++ {
		// Largest |a[i][j]| among rows j..n-1 becomes the pivot row.
		i1 = j
		for i = j + 1; i < n; i++ {
			if scalar.Abs(a[i][j]) > scalar.Abs(a[i1][j]) {
				i1 = i
			}
		}

		// Swap rows i1 and j in both buffers.
		a[i1], a[j] = a[j], a[i1]
		inv[i1], inv[j] = inv[j], inv[i1]

		// Unit diagonal.
		p = a[j][j]
		for c = 0; c < n; c++ {
			a[j][c] /= p
			inv[j][c] /= p
		}

		// Eliminate column j from every other row, mirroring into inv.
		for i = 0; i < n; i++ {
			if i == j {
				continue
			}
			f = a[i][j]
			for c = 0; c < n; c++ {
				a[i][c] -= f * a[j][c]
				inv[i][c] -= f * inv[j][c]
			}
		}
	}

	var out Mat4[T]
	for c = 0; c < n; c++ {
		out.c[c] = vector.New4(inv[0][c], inv[1][c], inv[2][c], inv[3][c])
	}

	return out
}
