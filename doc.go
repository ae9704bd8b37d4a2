// Package lvlgeom is a small, allocation-free toolkit of fixed-size linear
// algebra for 2D and 3D geometry: column-major 2×2, 3×3 and 4×4 matrices
// generic over any integer or floating-point scalar.
//
// 🚀 What is inside?
//
//	scalar/  Number/Float constraints, casts and tolerance comparison
//	vector/  Vec2, Vec3, Vec4 value types (dot, cross, scaling)
//	quat/    Quat (w, x, y, z) value type
//	matrix/  Mat2, Mat3, Mat4: arithmetic, determinants, inverses,
//	         predicates, widening, exact & fuzzy equality, Mat3→Quat
//
// ✨ Design notes
//
//   - Matrices are comparable values; copying one copies all its elements.
//   - Storage is column-major: NewMat2(a, b, c, d) has columns (a, b), (c, d).
//   - Division-free operations work for every scalar. Inverses are free
//     functions (Invert2/3/4) restricted to floating-point scalars and report
//     singular input as matrix.ErrSingular.
//   - Tolerance defaults to 1e-6 and is tunable per call with
//     matrix.WithEpsilon.
//
// Quick example:
//
//	m := matrix.NewMat2(1.0, 2, 3, 4)
//	inv, err := matrix.Invert2(m)
//	if err != nil {
//		// matrix.ErrSingular
//	}
//	_ = m.MulM(inv).IsIdentity() // true
//
// A runnable slog-instrumented walkthrough lives in
// examples/transform_pipeline.
//
//	go get github.com/katalvlaran/lvlgeom/matrix
package lvlgeom
