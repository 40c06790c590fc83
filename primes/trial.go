package primes

import "math"

// maxRoot is the largest value whose square is representable in a uint64;
// floor(sqrt(n)) never exceeds it for any uint64 n.
const maxRoot = 1<<32 - 1

// IsPrime reports whether n is prime, by trial division against every
// integer up to and including the integer square root of n. Deterministic,
// O(sqrt(n)) divisions.
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}

	for d, limit := uint64(2), isqrt(n); d <= limit; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// isqrt returns floor(sqrt(n)) exactly. math.Sqrt alone is not enough: once
// n outgrows float64's exact-integer range the truncated root can land on
// either side of the true value, so the estimate is corrected by squaring
// back in integer arithmetic.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	if r > maxRoot {
		r = maxRoot
	}
	for r > 0 && r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
