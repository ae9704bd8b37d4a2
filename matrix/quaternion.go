// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/lvlgeom/quat"
)

// ToQuat converts a rotation matrix into a quaternion (w, x, y, z) using
// Shoemake's branch-selecting method.
//
// Implementation:
//   - All arithmetic runs in float64; components are cast back to T.
//   - trace ≥ 0 takes the w-dominant branch; otherwise the largest diagonal
//     entry picks one of three symmetric branches, which keeps the square
//     root argument non-negative.
//
// Notes:
//   - No orthonormality check is made. The result is a unit quaternion only
//     when m is a proper rotation.
//   - Integer T truncates the components.
func (m Mat3[T]) ToQuat() quat.Quat[T] {
	a := func(c, r int) float64 { return float64(m.c[c][r]) }

	var s, w, x, y, z float64
	trace := a(0, 0) + a(1, 1) + a(2, 2)

	switch {
	case trace >= 0:
		s = math.Sqrt(trace + 1)
		w = 0.5 * s
		s = 0.5 / s
		x = (a(1, 2) - a(2, 1)) * s
		y = (a(2, 0) - a(0, 2)) * s
		z = (a(0, 1) - a(1, 0)) * s
	case a(0, 0) > a(1, 1) && a(0, 0) > a(2, 2):
		s = math.Sqrt(1 + a(0, 0) - a(1, 1) - a(2, 2))
		w = 0.5 * s
		s = 0.5 / s
		x = (a(0, 1) - a(1, 0)) * s
		y = (a(2, 0) - a(0, 2)) * s
		z = (a(1, 2) - a(2, 1)) * s
	case a(1, 1) > a(2, 2):
		s = math.Sqrt(1 + a(1, 1) - a(0, 0) - a(2, 2))
		w = 0.5 * s
		s = 0.5 / s
		x = (a(0, 1) - a(1, 0)) * s
		y = (a(1, 2) - a(2, 1)) * s
		z = (a(2, 0) - a(0, 2)) * s
	default:
		s = math.Sqrt(1 + a(2, 2) - a(0, 0) - a(1, 1))
		w = 0.5 * s
		s = 0.5 / s
		x = (a(2, 0) - a(0, 2)) * s
		y = (a(1, 2) - a(2, 1)) * s
		z = (a(0, 1) - a(1, 0)) * s
	}

	return quat.New(T(w), T(x), T(y), T(z))
}
