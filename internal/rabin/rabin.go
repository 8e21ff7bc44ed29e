// Package rabin implements Rabin Information Dispersal: space-efficient
// erasure coding where each share is about 1/k the size of the secret, but
// any k shares fully reveal it (no confidentiality).
package rabin

import (
	"fmt"

	"github.com/quorumshare/quorumshare/internal/gf256"
	"github.com/quorumshare/quorumshare/internal/matrix"
	"github.com/quorumshare/quorumshare/internal/share"
)

// Sharer implements (k, n)-threshold Rabin Information Dispersal.
type Sharer struct {
	k, n int
}

// New constructs a Sharer for threshold k out of n shares. Returns
// share.ErrInvalidParameters unless 1 <= k <= n <= 255.
func New(k, n int) (*Sharer, error) {
	if err := share.ValidateParams(k, n); err != nil {
		return nil, err
	}
	return &Sharer{k: k, n: n}, nil
}

// Share chunks secret into ceil(len(secret)/k) groups of k bytes each
// (the final group conceptually zero-padded) and, for each x in
// 1..n, evaluates the per-chunk polynomial (coefficients = the chunk's k
// bytes) at x via Horner's method, appending one byte per chunk to that
// share's body.
func (s *Sharer) Share(secret []byte) ([]share.RabinShare, error) {
	if err := share.ValidateParams(s.k, s.n); err != nil {
		return nil, err
	}

	numChunks := (len(secret) + s.k - 1) / s.k
	shares := make([]share.RabinShare, s.n)
	for i := range shares {
		shares[i] = share.RabinShare{
			ID:     byte(i + 1),
			Length: uint64(len(secret)),
			Body:   make([]byte, numChunks),
		}
	}

	for chunkIdx := 0; chunkIdx < numChunks; chunkIdx++ {
		start := chunkIdx * s.k
		end := start + s.k
		if end > len(secret) {
			end = len(secret)
		}
		chunk := secret[start:end] // may be shorter than k on the final chunk

		for i := range shares {
			shares[i].Body[chunkIdx] = evaluateChunk(chunk, shares[i].ID)
		}
	}

	return shares, nil
}

// evaluateChunk evaluates the polynomial whose coefficients are chunk's
// bytes (chunk[0] = constant term) at x, via Horner's method, treating any
// missing trailing coefficients (a short final chunk) as zero.
func evaluateChunk(chunk []byte, x byte) byte {
	var out byte
	for i := len(chunk) - 1; i >= 0; i-- {
		out = gf256.Add(gf256.Mul(out, x), chunk[i])
	}
	return out
}

// Reconstruct recovers secret from at least k Rabin shares. Only the
// first k shares given are used; extras are ignored. It builds the
// Vandermonde matrix for the k shares' ids, inverts it, and for each chunk
// multiplies the inverse by the column of share bytes at that chunk index
// to recover the k original bytes, before truncating the full
// reconstructed buffer to the stored Length in one final step (never
// truncating mid-loop, so a short final chunk is never accidentally
// dropped before its bytes are recovered).
func (s *Sharer) Reconstruct(shares []share.RabinShare) ([]byte, error) {
	if err := share.ValidateParams(s.k, s.n); err != nil {
		return nil, err
	}
	if len(shares) < s.k {
		return nil, share.ErrInsufficientShares
	}
	used := shares[:s.k]
	if err := validateShares(used); err != nil {
		return nil, err
	}

	ids := make([]byte, s.k)
	for i, sh := range used {
		ids[i] = sh.ID
	}
	decoder := matrix.Invert(matrix.Vandermonde(ids))

	numChunks := len(used[0].Body)
	length := int(used[0].Length)
	out := make([]byte, numChunks*s.k)

	for chunkIdx := 0; chunkIdx < numChunks; chunkIdx++ {
		for row := 0; row < s.k; row++ {
			var acc byte
			for col := 0; col < s.k; col++ {
				acc = gf256.Add(acc, gf256.Mul(decoder[row][col], used[col].Body[chunkIdx]))
			}
			out[chunkIdx*s.k+row] = acc
		}
	}

	if length > len(out) {
		length = len(out)
	}
	return out[:length], nil
}

func validateShares(shares []share.RabinShare) error {
	ids := make([]byte, len(shares))
	wantLen := len(shares[0].Body)
	wantLength := shares[0].Length
	for i, sh := range shares {
		ids[i] = sh.ID
		if len(sh.Body) != wantLen {
			return fmt.Errorf("%w: share %d has body length %d, want %d", share.ErrInconsistentShares, sh.ID, len(sh.Body), wantLen)
		}
		if sh.Length != wantLength {
			return fmt.Errorf("%w: share %d has length %d, want %d", share.ErrInconsistentShares, sh.ID, sh.Length, wantLength)
		}
	}
	return share.CheckIDs(ids)
}
