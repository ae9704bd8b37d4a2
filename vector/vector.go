// SPDX-License-Identifier: MIT

// Package vector provides the fixed-size column vectors consumed by the
// matrix package: Vec2, Vec3 and Vec4 over any scalar.Number.
//
// Vectors are plain arrays, so components are read with v[i] and an index
// outside the array panics at run time (or fails to compile for constants).
// Every method returns a new value; receivers are never mutated.
package vector

import "github.com/katalvlaran/lvlgeom/scalar"

// Vec2 is a 2-component vector.
type Vec2[T scalar.Number] [2]T

// Vec3 is a 3-component vector.
type Vec3[T scalar.Number] [3]T

// Vec4 is a 4-component vector.
type Vec4[T scalar.Number] [4]T

// New2 builds a Vec2 from its components.
func New2[T scalar.Number](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// New3 builds a Vec3 from its components.
func New3[T scalar.Number](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// New4 builds a Vec4 from its components.
func New4[T scalar.Number](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// ---------- Vec2 ----------

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + o[0], v[1] + o[1]} }

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - o[0], v[1] - o[1]} }

// MulT returns v scaled by k.
func (v Vec2[T]) MulT(k T) Vec2[T] { return Vec2[T]{v[0] * k, v[1] * k} }

// DivT returns v divided component-wise by k.
func (v Vec2[T]) DivT(k T) Vec2[T] { return Vec2[T]{v[0] / k, v[1] / k} }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v[0], -v[1]} }

// Dot returns v · o.
func (v Vec2[T]) Dot(o Vec2[T]) T { return v[0]*o[0] + v[1]*o[1] }

// ExactEqual reports component-wise ==.
func (v Vec2[T]) ExactEqual(o Vec2[T]) bool { return v == o }

// FuzzyEqual reports whether every component pair is within eps.
func (v Vec2[T]) FuzzyEqual(o Vec2[T], eps float64) bool {
	return scalar.FuzzyEqEps(v[0], o[0], eps) &&
		scalar.FuzzyEqEps(v[1], o[1], eps)
}

// ---------- Vec3 ----------

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// MulT returns v scaled by k.
func (v Vec3[T]) MulT(k T) Vec3[T] { return Vec3[T]{v[0] * k, v[1] * k, v[2] * k} }

// DivT returns v divided component-wise by k.
func (v Vec3[T]) DivT(k T) Vec3[T] { return Vec3[T]{v[0] / k, v[1] / k, v[2] / k} }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v[0], -v[1], -v[2]} }

// Dot returns v · o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

// Cross returns v × o (right-handed).
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// ExactEqual reports component-wise ==.
func (v Vec3[T]) ExactEqual(o Vec3[T]) bool { return v == o }

// FuzzyEqual reports whether every component pair is within eps.
func (v Vec3[T]) FuzzyEqual(o Vec3[T], eps float64) bool {
	return scalar.FuzzyEqEps(v[0], o[0], eps) &&
		scalar.FuzzyEqEps(v[1], o[1], eps) &&
		scalar.FuzzyEqEps(v[2], o[2], eps)
}

// ---------- Vec4 ----------

// Add returns v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Sub returns v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// MulT returns v scaled by k.
func (v Vec4[T]) MulT(k T) Vec4[T] {
	return Vec4[T]{v[0] * k, v[1] * k, v[2] * k, v[3] * k}
}

// DivT returns v divided component-wise by k.
func (v Vec4[T]) DivT(k T) Vec4[T] {
	return Vec4[T]{v[0] / k, v[1] / k, v[2] / k, v[3] / k}
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v[0], -v[1], -v[2], -v[3]} }

// Dot returns v · o.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}

// ExactEqual reports component-wise ==.
func (v Vec4[T]) ExactEqual(o Vec4[T]) bool { return v == o }

// FuzzyEqual reports whether every component pair is within eps.
func (v Vec4[T]) FuzzyEqual(o Vec4[T], eps float64) bool {
	return scalar.FuzzyEqEps(v[0], o[0], eps) &&
		scalar.FuzzyEqEps(v[1], o[1], eps) &&
		scalar.FuzzyEqEps(v[2], o[2], eps) &&
		scalar.FuzzyEqEps(v[3], o[3], eps)
}
