package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIsXor(t *testing.T) {
	assert.Equal(t, byte(0x99), Add(0x53, 0xca))
	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(0), Add(byte(i), byte(i)), "a+a should be 0 for %d", i)
	}
}

func TestAddCommutative(t *testing.T) {
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 11 {
			assert.Equal(t, Add(byte(a), byte(b)), Add(byte(b), byte(a)))
		}
	}
}

func TestMulIdentityAndZero(t *testing.T) {
	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(i), Mul(byte(i), 1), "a*1 should be a for %d", i)
		assert.Equal(t, byte(0), Mul(byte(i), 0), "a*0 should be 0 for %d", i)
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	for a := 1; a < 256; a += 13 {
		for b := 0; b < 256; b += 17 {
			for c := 0; c < 256; c += 19 {
				lhs := Mul(byte(a), Add(byte(b), byte(c)))
				rhs := Add(Mul(byte(a), byte(b)), Mul(byte(a), byte(c)))
				require.Equal(t, rhs, lhs, "a*(b+c) != a*b+a*c for %d,%d,%d", a, b, c)
			}
		}
	}
}

func TestInverse(t *testing.T) {
	for i := 1; i < 256; i++ {
		inv := Inv(byte(i))
		assert.Equal(t, byte(1), Mul(byte(i), inv), "%d * %d != 1", i, inv)
	}
}

func TestPow(t *testing.T) {
	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(1), Pow(byte(i), 0), "a^0 should be 1 for %d", i)
	}
	for i := 1; i < 256; i++ {
		assert.Equal(t, byte(i), Pow(byte(i), 1), "a^1 should be a for %d", i)
	}
}

func TestPowMatchesRepeatedMul(t *testing.T) {
	for a := 1; a < 256; a += 23 {
		x := byte(1)
		for j := 0; j < 8; j++ {
			require.Equal(t, x, Pow(byte(a), j), "Pow mismatch at a=%d j=%d", a, j)
			x = Mul(x, byte(a))
		}
	}
}

func TestMulCommutative(t *testing.T) {
	for a := 0; a < 256; a += 5 {
		for b := 0; b < 256; b += 9 {
			assert.Equal(t, Mul(byte(a), byte(b)), Mul(byte(b), byte(a)))
		}
	}
}
