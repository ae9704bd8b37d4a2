// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide deterministic fixtures (seeded RNG, rotations) and the
//     generic law checker shared by the Mat2/Mat3/Mat4 property tests.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlgeom/matrix"
	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/stretchr/testify/require"
)

// seed keeps every generated fixture reproducible.
const seed = 20240517

// trials is the number of random matrices per property test.
const trials = 200

// newRand returns a deterministic generator.
func newRand() *rand.Rand { return rand.New(rand.NewSource(seed)) }

// uniform returns a value in [-10, 10).
func uniform(r *rand.Rand) float64 { return r.Float64()*20 - 10 }

// randMat2 returns a random matrix; dominant adds 40 to the diagonal so the
// result is well conditioned.
func randMat2(r *rand.Rand, dominant bool) matrix.Mat2[float64] {
	m := matrix.NewMat2(uniform(r), uniform(r), uniform(r), uniform(r))
	if dominant {
		m = m.AddM(matrix.Mat2FromValue(40.0))
	}

	return m
}

func randMat3(r *rand.Rand, dominant bool) matrix.Mat3[float64] {
	var v [9]float64
	for i := range v {
		v[i] = uniform(r)
	}
	m := matrix.NewMat3(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8])
	if dominant {
		m = m.AddM(matrix.Mat3FromValue(40.0))
	}

	return m
}

func randMat4(r *rand.Rand, dominant bool) matrix.Mat4[float64] {
	var v [16]float64
	for i := range v {
		v[i] = uniform(r)
	}
	m := matrix.NewMat4(
		v[0], v[1], v[2], v[3],
		v[4], v[5], v[6], v[7],
		v[8], v[9], v[10], v[11],
		v[12], v[13], v[14], v[15],
	)
	if dominant {
		m = m.AddM(matrix.Mat4FromValue(40.0))
	}

	return m
}

// rotZ returns a column-major rotation by theta radians about +Z.
func rotZ(theta float64) matrix.Mat3[float64] {
	s, c := math.Sincos(theta)
	return matrix.NewMat3(
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	)
}

// rotX returns a column-major rotation by theta radians about +X.
func rotX(theta float64) matrix.Mat3[float64] {
	s, c := math.Sincos(theta)
	return matrix.NewMat3(
		1, 0, 0,
		0, c, s,
		0, -s, c,
	)
}

// relDelta scales an absolute tolerance by the magnitude of want.
func relDelta(want float64) float64 {
	return 1e-9 * math.Max(1, math.Abs(want))
}

// checkSquareLaws asserts the algebraic laws every dimension must obey.
// n is the dimension; invert is the matching InvertN.
func checkSquareLaws[T scalar.Float, V any, M matrix.Square[T, V, M]](
	t *testing.T,
	a, id M,
	k T,
	n int,
	invert func(M, ...matrix.Option) (M, error),
) {
	t.Helper()

	// Identity is neutral on both sides.
	require.True(t, a.MulM(id).Equal(a), "A·I != A: %v", a)
	require.True(t, id.MulM(a).Equal(a), "I·A != A: %v", a)

	// Double transpose is the identity map, exactly.
	require.True(t, a.Transpose().Transpose().ExactEqual(a))

	// det(kA) = kⁿ det(A).
	kn := T(1)
	for i := 0; i < n; i++ {
		kn *= k
	}
	want := float64(kn * a.Det())
	require.InDelta(t, want, float64(a.MulT(k).Det()), relDelta(want))

	// Invertibility predicate agrees with the inverse.
	inv, err := invert(a)
	require.Equal(t, a.IsInvertible(), err == nil)
	if err != nil {
		require.ErrorIs(t, err, matrix.ErrSingular)
		return
	}
	require.True(t, inv.MulM(a).IsIdentity(), "A⁻¹·A != I: %v", inv.MulM(a))
	require.True(t, a.MulM(inv).IsIdentity(), "A·A⁻¹ != I: %v", a.MulM(inv))
}
