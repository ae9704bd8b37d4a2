// SPDX-License-Identifier: MIT

// Package quat provides the quaternion value produced by the matrix
// package's rotation bridge (Mat3.ToQuat).
package quat

import "github.com/katalvlaran/lvlgeom/scalar"

// Quat is a quaternion w + xi + yj + zk.
type Quat[T scalar.Number] struct {
	W, X, Y, Z T
}

// New builds a quaternion from its scalar part w and vector part (x, y, z),
// in that order.
func New[T scalar.Number](w, x, y, z T) Quat[T] {
	return Quat[T]{W: w, X: x, Y: y, Z: z}
}

// Identity returns the multiplicative identity (1, 0, 0, 0).
func Identity[T scalar.Number]() Quat[T] {
	return New[T](1, 0, 0, 0)
}

// Dot returns the four-component dot product of q and o.
func (q Quat[T]) Dot(o Quat[T]) T {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

// ExactEqual reports component-wise ==.
func (q Quat[T]) ExactEqual(o Quat[T]) bool { return q == o }

// FuzzyEqual reports whether every component pair is within eps.
func (q Quat[T]) FuzzyEqual(o Quat[T], eps float64) bool {
	return scalar.FuzzyEqEps(q.W, o.W, eps) &&
		scalar.FuzzyEqEps(q.X, o.X, eps) &&
		scalar.FuzzyEqEps(q.Y, o.Y, eps) &&
		scalar.FuzzyEqEps(q.Z, o.Z, eps)
}
