// Package matrix provides fixed-size 2×2, 3×3 and 4×4 column-major matrices
// over any scalar.Number.
//
// The package provides:
//
//   - Value types Mat2, Mat3 and Mat4, each an array of column vectors from
//     the vector package. Every operation returns a new value.
//   - A small capability hierarchy (Shape → Numeric → Square, plus Widen2 and
//     Widen3) that all three dimensions implement, so algorithms such as Pow
//     are written once.
//   - Determinants (direct, triple product, Laplace expansion) and inverses
//     (adjugate for 2×2 and 3×3, Gauss-Jordan with partial pivoting for 4×4).
//     Inverses require a float scalar and are exposed as Invert2/3/4.
//   - Exact and tolerance-based equality. Equal is the tolerance-based one.
//   - Mat3.ToQuat, Shoemake's conversion of a rotation matrix to a quaternion.
//
// Elements are addressed as (column, row). Constructors take components in
// column-major order: NewMat2(c0r0, c0r1, c1r0, c1r1).
package matrix
