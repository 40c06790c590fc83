// Package modexp implements modular exponentiation over fixed-width
// machine integers.
package modexp

import "golang.org/x/exp/constraints"

// ModExp returns base^exponent mod modulus for non-negative inputs of any
// fixed-width integer type.
//
// A modulus of 1 yields 0 and an exponent of 0 yields 1. The exponent is
// consumed by square-and-multiply, so the cost is O(log exponent)
// multiplications instead of the O(exponent) of the naive accumulation
// loop; the result is identical for every valid input.
//
// Intermediate products are reduced after every multiplication but never
// widened: the caller must pick a type T in which (modulus-1)*(modulus-1)
// is representable, otherwise the result is undefined.
func ModExp[T constraints.Integer](base, exponent, modulus T) T {
	if modulus == 1 {
		return 0
	}

	result := T(1)
	base %= modulus
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result * base % modulus
		}
		exponent >>= 1
		base = base * base % modulus
	}

	return result
}
