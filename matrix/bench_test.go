// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the fixed-size kernels,
// using deterministic random fill.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlgeom/matrix"
	"github.com/katalvlaran/lvlgeom/quat"
)

// sinks to defeat dead-code elimination
var (
	sink2 matrix.Mat2[float64]
	sink3 matrix.Mat3[float64]
	sink4 matrix.Mat4[float64]
	sinkF float64
	sinkQ quat.Quat[float64]
)

func BenchmarkMulM(b *testing.B) {
	r := newRand()
	a2, c2 := randMat2(r, false), randMat2(r, false)
	a3, c3 := randMat3(r, false), randMat3(r, false)
	a4, c4 := randMat4(r, false), randMat4(r, false)
	b.ReportAllocs()

	b.Run("Mat2", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink2 = a2.MulM(c2)
		}
	})
	b.Run("Mat3", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink3 = a3.MulM(c3)
		}
	})
	b.Run("Mat4", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink4 = a4.MulM(c4)
		}
	})
}

func BenchmarkDet(b *testing.B) {
	r := newRand()
	a3, a4 := randMat3(r, false), randMat4(r, false)
	b.ReportAllocs()

	b.Run("Mat3", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF = a3.Det()
		}
	})
	b.Run("Mat4", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF = a4.Det()
		}
	})
}

func BenchmarkInvert(b *testing.B) {
	r := newRand()
	a2, a3, a4 := randMat2(r, true), randMat3(r, true), randMat4(r, true)
	b.ReportAllocs()

	b.Run("Mat2", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			m, err := matrix.Invert2(a2)
			if err != nil {
				b.Fatal(err)
			}
			sink2 = m
		}
	})
	b.Run("Mat3", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			m, err := matrix.Invert3(a3)
			if err != nil {
				b.Fatal(err)
			}
			sink3 = m
		}
	})
	b.Run("Mat4", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			m, err := matrix.Invert4(a4)
			if err != nil {
				b.Fatal(err)
			}
			sink4 = m
		}
	})
}

func BenchmarkToQuat(b *testing.B) {
	rot := rotZ(0.3).MulM(rotX(1.1))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkQ = rot.ToQuat()
	}
}
