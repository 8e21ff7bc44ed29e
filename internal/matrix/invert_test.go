package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumshare/quorumshare/internal/gf256"
)

func mulMatrices(a, b Matrix) Matrix {
	k := len(a)
	out := New(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			var acc byte
			for m := 0; m < k; m++ {
				acc = gf256.Add(acc, gf256.Mul(a[i][m], b[m][j]))
			}
			out[i][j] = acc
		}
	}
	return out
}

func TestInvertVandermondeIsIdentity(t *testing.T) {
	for k := 1; k <= 16; k++ {
		xs := make([]byte, k)
		for i := range xs {
			xs[i] = byte(i + 1)
		}
		v := Vandermonde(xs)
		inv := Invert(v)
		product := mulMatrices(v, inv)
		require.Equal(t, Identity(k), product, "V * V^-1 != I for k=%d", k)
	}
}

func TestInvertHandlesNonSequentialXValues(t *testing.T) {
	xs := []byte{5, 200, 3, 77}
	v := Vandermonde(xs)
	inv := Invert(v)
	product := mulMatrices(v, inv)
	assert.Equal(t, Identity(len(xs)), product)
}

func TestInvertRequiresRowSwapOnZeroPivot(t *testing.T) {
	// A matrix whose (0,0) entry is zero but which is still invertible:
	// a naive non-pivoting Gauss-Jordan would divide by zero here.
	m := Matrix{
		{0, 1},
		{1, 1},
	}
	inv := Invert(m)
	product := mulMatrices(m, inv)
	assert.Equal(t, Identity(2), product)
}
