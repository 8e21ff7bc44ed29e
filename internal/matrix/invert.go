// Package matrix implements Gauss-Jordan inversion of square matrices over
// GF(2^8), used to decode Rabin-dispersed chunks from a Vandermonde system.
package matrix

import "github.com/quorumshare/quorumshare/internal/gf256"

// Matrix is a square matrix of GF(2^8) elements, stored row-major.
type Matrix [][]byte

// New allocates a k x k zero matrix.
func New(k int) Matrix {
	m := make(Matrix, k)
	for i := range m {
		m[i] = make([]byte, k)
	}
	return m
}

// Identity returns the k x k identity matrix over GF(2^8).
func Identity(k int) Matrix {
	m := New(k)
	for i := 0; i < k; i++ {
		m[i][i] = 1
	}
	return m
}

// Vandermonde builds the k x k matrix V[i][j] = xs[i]^j for the given
// distinct, non-zero x-values. This is the matrix that must be inverted to
// decode a Rabin-dispersed chunk.
func Vandermonde(xs []byte) Matrix {
	k := len(xs)
	m := New(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			m[i][j] = gf256.Pow(xs[i], j)
		}
	}
	return m
}

// Invert computes m^-1 via Gauss-Jordan elimination carried out
// simultaneously on a copy of m and the identity matrix. m is assumed
// invertible (true for any Vandermonde matrix built from distinct non-zero
// x-values); Invert does not itself validate that precondition beyond what
// the row-swap search below guarantees.
//
// Unlike a naive in-order pivot, this always searches for a non-zero pivot
// below the diagonal and swaps rows when the diagonal entry is zero. A
// Vandermonde matrix from distinct non-zero x-values is invertible, but an
// in-order pivot can still land on a zero diagonal entry partway through
// elimination; skipping the row swap there is a correctness bug, not an
// optimization.
func Invert(src Matrix) Matrix {
	k := len(src)
	work := New(k)
	for i := range src {
		copy(work[i], src[i])
	}
	inv := Identity(k)

	for i := 0; i < k; i++ {
		if work[i][i] == 0 {
			swapRow := -1
			for j := i + 1; j < k; j++ {
				if work[j][i] != 0 {
					swapRow = j
					break
				}
			}
			if swapRow < 0 {
				panic("matrix: no non-zero pivot found; matrix is not invertible")
			}
			work[i], work[swapRow] = work[swapRow], work[i]
			inv[i], inv[swapRow] = inv[swapRow], inv[i]
		}

		s := gf256.Inv(work[i][i])
		scaleRow(work[i], s)
		scaleRow(inv[i], s)

		for j := 0; j < k; j++ {
			if j == i {
				continue
			}
			c := work[j][i]
			if c == 0 {
				continue
			}
			addScaledRow(work[j], work[i], c)
			addScaledRow(inv[j], inv[i], c)
		}
	}

	return inv
}

func scaleRow(row []byte, s byte) {
	for i := range row {
		row[i] = gf256.Mul(row[i], s)
	}
}

// addScaledRow computes dst ^= c*src elementwise (GF(2^8) "subtraction" is
// XOR, same as addition).
func addScaledRow(dst, src []byte, c byte) {
	for i := range dst {
		dst[i] = gf256.Add(dst[i], gf256.Mul(c, src[i]))
	}
}
