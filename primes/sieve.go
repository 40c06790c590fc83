// Package primes provides prime generation and primality testing over
// machine integers: a sieve of Eratosthenes, deterministic trial division
// and a probabilistic Fermat test.
package primes

import "github.com/bits-and-blooms/bitset"

// Sieve returns every prime <= upto in ascending order, using the sieve of
// Eratosthenes. Sieve(0) and Sieve(1) return an empty slice.
//
// Runs in O(upto log log upto) time with one bit of scratch per candidate.
func Sieve(upto uint) []uint {
	if upto < 2 {
		return []uint{}
	}

	// A set bit marks a composite. Bits are only ever set during marking,
	// never cleared again.
	composite := bitset.New(upto + 1)
	for p := uint(2); p*p <= upto; p++ {
		if composite.Test(p) {
			continue
		}
		// Multiples below p*p were already marked by a smaller prime factor.
		for m := p * p; m <= upto; m += p {
			composite.Set(m)
		}
	}

	primes := make([]uint, 0, upto-1-composite.Count())
	for v := uint(2); v <= upto; v++ {
		if !composite.Test(v) {
			primes = append(primes, v)
		}
	}

	return primes
}

// FirstN returns the first n primes in ascending order. FirstN(n) for
// n <= 0 returns an empty slice.
func FirstN(n int) []uint {
	if n <= 0 {
		return []uint{}
	}

	// Overestimate the n-th prime (p_n < n(ln n + ln ln n) for n >= 6) and
	// widen the sieve until it yields enough.
	limit := uint(n) * 20
	if n > 100 {
		limit = uint(n) * 15
	}

	result := Sieve(limit)
	for len(result) < n {
		limit *= 2
		result = Sieve(limit)
	}

	return result[:n:n]
}
