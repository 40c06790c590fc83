package modexp

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModExpVectors(t *testing.T) {
	assert.Equal(t, int32(445), ModExp[int32](4, 13, 497))
	assert.Equal(t, uint64(445), ModExp[uint64](4, 13, 497))
	assert.Equal(t, 8, ModExp(5, 3, 13))
	assert.Equal(t, uint16(8), ModExp[uint16](5, 3, 13))
}

func TestModExpZeroExponent(t *testing.T) {
	assert.Equal(t, uint64(1), ModExp[uint64](10, 0, 7))
	assert.Equal(t, int8(1), ModExp[int8](5, 0, 11))

	// The modulus-1 rule wins over the exponent-0 rule.
	assert.Equal(t, uint64(0), ModExp[uint64](10, 0, 1))
}

func TestModExpModulusOne(t *testing.T) {
	assert.Equal(t, 0, ModExp(123, 456, 1))
	assert.Equal(t, uint32(0), ModExp[uint32](0, 0, 1))
}

func TestModExpBaseAboveModulus(t *testing.T) {
	// 500 = 3 (mod 497), so both forms must agree.
	assert.Equal(t, ModExp[uint64](3, 13, 497), ModExp[uint64](500, 13, 497))
}

func TestModExpMatchesBigInt(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		base := rnd.Uint64N(1 << 16)
		exponent := rnd.Uint64N(1 << 16)
		modulus := 1 + rnd.Uint64N(1<<16-1)

		want := new(big.Int).Exp(
			new(big.Int).SetUint64(base),
			new(big.Int).SetUint64(exponent),
			new(big.Int).SetUint64(modulus),
		)
		require.True(t, want.IsUint64())
		require.Equal(t, want.Uint64(), ModExp(base, exponent, modulus),
			"base=%d exponent=%d modulus=%d", base, exponent, modulus)
	}
}
