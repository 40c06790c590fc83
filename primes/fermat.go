package primes

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/primekit/numtheory/modexp"
)

// FermatTester runs the Fermat primality test with an explicit witness
// source. A single tester is not safe for concurrent use; give each
// goroutine its own.
type FermatTester struct {
	rnd *rand.Rand
}

// NewFermatTester returns a tester drawing witnesses from src. A nil src is
// replaced by a PCG seeded from crypto/rand, so independently constructed
// testers never share state.
func NewFermatTester(src rand.Source) *FermatTester {
	if src == nil {
		src = rand.NewPCG(cryptoSeed())
	}
	return &FermatTester{rnd: rand.New(src)}
}

// Test reports whether n is probably prime after the given number of trial
// rounds. Each round draws a uniform witness a in [2, n-2] and checks
// a^(n-1) = 1 (mod n); any failing witness proves n composite and ends the
// test early. The test is one-sided: a prime is never rejected, but a
// composite can pass every round (Carmichael numbers pass for every
// coprime witness regardless of the round budget).
//
// Witness exponentiation goes through modexp.ModExp on uint64, so n must
// not exceed 1<<32 or the intermediate products overflow.
func (t *FermatTester) Test(n uint64, rounds int) bool {
	if n < 2 {
		return false
	}
	// 2 and 3 leave no room for a witness in [2, n-2].
	if n < 4 {
		return true
	}

	for range rounds {
		a := 2 + t.rnd.Uint64N(n-3)
		if modexp.ModExp(a, n-1, n) != 1 {
			return false
		}
	}

	return true
}

// Fermat runs Test on a fresh default-seeded tester.
func Fermat(n uint64, rounds int) bool {
	return NewFermatTester(nil).Test(n, rounds)
}

func cryptoSeed() (uint64, uint64) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("primes: read rng seed: %v", err))
	}
	return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])
}
