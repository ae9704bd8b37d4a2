// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlgeom/matrix"
	"github.com/katalvlaran/lvlgeom/quat"
	"github.com/katalvlaran/lvlgeom/scalar"
	"github.com/katalvlaran/lvlgeom/vector"
	"github.com/stretchr/testify/require"
)

// b3 has rows (2,0,1), (1,3,2), (1,1,2); det = 6.
var b3 = matrix.NewMat3(
	2.0, 1.0, 1.0,
	0.0, 3.0, 1.0,
	1.0, 2.0, 2.0,
)

func TestMat3_ShapeAndIndexing(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, b3.Rows())
	require.Equal(t, 3, b3.Cols())
	require.True(t, b3.IsColMajor())
	require.True(t, b3.IsSquare())

	c2, err := b3.Col(2)
	require.NoError(t, err)
	require.Equal(t, vector.New3(1.0, 2.0, 2.0), c2)
	r1, err := b3.Row(1)
	require.NoError(t, err)
	require.Equal(t, vector.New3(1.0, 3.0, 2.0), r1)
	v, err := b3.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = b3.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = b3.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = b3.At(1, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestMat3_DetIsTripleProduct(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 6.0, b3.Det(), 1e-12)
	require.Equal(t, 1, matrix.Mat3Identity[int]().Det())
	// swapping two columns flips the sign
	cols := b3.Columns()
	swapped := matrix.Mat3FromCols(cols[1], cols[0], cols[2])
	require.InDelta(t, -6.0, swapped.Det(), 1e-12)
}

func TestMat3_Inverse(t *testing.T) {
	t.Parallel()

	inv, err := matrix.Invert3(b3)
	require.NoError(t, err)

	want := matrix.NewMat3(
		2.0/3, 0, -1.0/3,
		1.0/6, 0.5, -1.0/3,
		-0.5, -0.5, 1,
	)
	require.True(t, inv.Equal(want), "got %v", inv)
	require.True(t, b3.MulM(inv).IsIdentity())
}

func TestMat3_SingularHasNoInverse(t *testing.T) {
	t.Parallel()

	c := vector.New3(1.0, 2.0, 3.0)
	m := matrix.Mat3FromCols(c, vector.New3(0.0, 1.0, 0.0), c)
	require.InDelta(t, 0.0, m.Det(), 1e-12)
	require.False(t, m.IsInvertible())
	_, err := matrix.Invert3(m)
	require.ErrorIs(t, err, matrix.ErrSingular)

	// a row of zeros
	z := matrix.NewMat3(1.0, 0.0, 2.0, 3.0, 0.0, 4.0, 5.0, 0.0, 6.0)
	require.False(t, z.IsInvertible())
	_, err = matrix.Invert3(z)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestMat3_NumericOps(t *testing.T) {
	t.Parallel()

	m := matrix.NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	// rows are (1,4,7), (2,5,8), (3,6,9)
	require.Equal(t, vector.New3(12, 15, 18), m.MulV(vector.New3(1, 1, 1)))
	require.True(t, m.Transpose().ExactEqual(matrix.NewMat3(1, 4, 7, 2, 5, 8, 3, 6, 9)))
	require.True(t, m.Neg().AddM(m).ExactEqual(matrix.Mat3Zero[int]()))
	require.True(t, m.MulT(2).SubM(m).ExactEqual(m))
	require.True(t, m.MulM(matrix.Mat3Identity[int]()).ExactEqual(m))
	require.Equal(t, 15, m.Trace())
	require.Equal(t, vector.New3(1, 5, 9), m.Diagonal())
}

func TestMat3_Predicates(t *testing.T) {
	t.Parallel()

	sym := matrix.NewMat3[float64](1, 2, 3, 2, 4, 5, 3, 5, 6)
	require.True(t, sym.IsSymmetric())
	require.False(t, sym.IsDiagonal())
	require.True(t, sym.IsRotated())

	diag := matrix.Mat3FromValue(3.0)
	require.True(t, diag.IsDiagonal())
	require.True(t, diag.IsSymmetric())
	require.False(t, diag.IsIdentity())
	// literal behaviour: any non-identity matrix reports IsRotated
	require.True(t, diag.IsRotated())

	require.False(t, b3.IsSymmetric())
	require.True(t, rotZ(0.3).IsRotated())
	require.False(t, matrix.Mat3Identity[float64]().IsRotated())
}

func TestMat3_ToMat4(t *testing.T) {
	t.Parallel()

	m := matrix.NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.True(t, m.ToMat4().ExactEqual(matrix.NewMat4(
		1, 2, 3, 0,
		4, 5, 6, 0,
		7, 8, 9, 0,
		0, 0, 0, 1,
	)))
	require.True(t, matrix.Mat3FromMat2(matrix.NewMat2(1, 2, 3, 4)).ToMat4().ExactEqual(
		matrix.Mat4FromMat2(matrix.NewMat2(1, 2, 3, 4))))
}

func TestMat3_ToQuat(t *testing.T) {
	t.Parallel()

	// s' = 0.5 / sqrt(3.5) for the three non-trace branches below.
	s := 0.5 / math.Sqrt(3.5)
	w := 0.5 * math.Sqrt(3.5)

	tests := []struct {
		name string
		m    matrix.Mat3[float64]
		want quat.Quat[float64]
	}{
		{
			name: "identity",
			m:    matrix.Mat3Identity[float64](),
			want: quat.Identity[float64](),
		},
		{
			name: "trace branch: +90deg about Z",
			m:    rotZ(math.Pi / 2),
			want: quat.New(math.Sqrt2/2, 0, 0, math.Sqrt2/2),
		},
		{
			name: "trace branch: +60deg about X",
			m:    rotX(math.Pi / 3),
			want: quat.New(math.Cos(math.Pi/6), math.Sin(math.Pi/6), 0, 0),
		},
		{
			name: "a00 dominant",
			m:    matrix.NewMat3(0.5, 0.2, 0.1, 0.4, -1, 0.3, 0.6, 0.7, -1),
			want: quat.New(w, -0.2*s, 0.5*s, -0.4*s),
		},
		{
			name: "a11 dominant",
			m:    matrix.NewMat3(-1, 0.2, 0.1, 0.4, 0.5, 0.3, 0.6, 0.7, -1),
			want: quat.New(w, -0.2*s, -0.4*s, 0.5*s),
		},
		{
			name: "a22 dominant",
			m:    matrix.NewMat3(-1, 0.2, 0.1, 0.4, -1, 0.3, 0.6, 0.7, 0.5),
			want: quat.New(w, 0.5*s, -0.4*s, -0.2*s),
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.m.ToQuat()
			require.True(t, got.FuzzyEqual(tc.want, scalar.DefaultEpsilon), "got %+v want %+v", got, tc.want)
		})
	}
}

func TestMat3_ToQuat_Float32(t *testing.T) {
	t.Parallel()

	q := matrix.Mat3Identity[float32]().ToQuat()
	require.True(t, q.ExactEqual(quat.New[float32](1, 0, 0, 0)))
}
