// SPDX-License-Identifier: MIT

package matrix

// multiplier is satisfied by Mat2, Mat3 and Mat4 of any scalar.
type multiplier[M any] interface {
	MulM(o M) M
	identity() M
}

// Pow returns m raised to the k-th power by binary exponentiation.
// Pow(m, 0) is the identity.
//
// Errors:
//   - ErrNegativeExponent for k < 0; use Invert2/3/4 first for negative powers.
//
// Complexity:
//   - O(log k) matrix products.
func Pow[M multiplier[M]](m M, k int) (M, error) {
	if err := ValidateExponent(k); err != nil {
		var zero M
		return zero, matrixErrorf(opPow, err)
	}

	result := m.identity()
	base := m
	for k > 0 {
		if k&1 == 1 {
			result = result.MulM(base)
		}
		base = base.MulM(base)
		k >>= 1
	}

	return result, nil
}
