// Package shamir implements Shamir's Secret Sharing over GF(2^8): each
// share is the same size as the secret, and fewer than k shares reveal
// perfect information-theoretic nothing about it.
package shamir

import (
	"fmt"

	"github.com/quorumshare/quorumshare/internal/gf256"
	"github.com/quorumshare/quorumshare/internal/rng"
	"github.com/quorumshare/quorumshare/internal/share"
)

// Sharer implements (k, n)-threshold Shamir Secret Sharing.
type Sharer struct {
	k, n int
	src  rng.Source
}

// New constructs a Sharer for the given threshold k and share count n.
// Returns share.ErrInvalidParameters unless 1 <= k <= n <= 255. src
// supplies the random polynomial coefficients; pass rng.CryptoSource{} for
// production use.
func New(k, n int, src rng.Source) (*Sharer, error) {
	if err := share.ValidateParams(k, n); err != nil {
		return nil, err
	}
	return &Sharer{k: k, n: n, src: src}, nil
}

// Share splits secret into n shares, k of which are required to
// reconstruct it. For each secret byte, a fresh degree-(k-1) polynomial is
// drawn with that byte as its constant term; share i's body holds the
// polynomial evaluated at x = i+1.
func (s *Sharer) Share(secret []byte) ([]share.ShamirShare, error) {
	if err := share.ValidateParams(s.k, s.n); err != nil {
		return nil, err
	}

	shares := make([]share.ShamirShare, s.n)
	for i := range shares {
		shares[i] = share.ShamirShare{ID: byte(i + 1), Body: make([]byte, len(secret))}
	}

	coeffs := make([]byte, s.k)
	for byteIdx, b := range secret {
		coeffs[0] = b
		if s.k > 1 {
			if err := s.src.Fill(coeffs[1:]); err != nil {
				return nil, err
			}
		}
		for i := range shares {
			x := shares[i].ID
			shares[i].Body[byteIdx] = evaluate(coeffs, x)
		}
	}

	return shares, nil
}

// Reconstruct recovers the secret from at least k shares using Lagrange
// interpolation at x = 0, one byte position at a time. Extra shares beyond
// k are all used (unlike Rabin/Krawczyk, which only need the first k);
// using more than k shares here is harmless since every share agrees on
// the same polynomial evaluations.
func (s *Sharer) Reconstruct(shares []share.ShamirShare) ([]byte, error) {
	if err := share.ValidateParams(s.k, s.n); err != nil {
		return nil, err
	}
	if len(shares) < s.k {
		return nil, share.ErrInsufficientShares
	}
	if err := validateShares(shares); err != nil {
		return nil, err
	}

	bodyLen := len(shares[0].Body)
	secret := make([]byte, bodyLen)
	ids := make([]byte, len(shares))
	for i, sh := range shares {
		ids[i] = sh.ID
	}

	for byteIdx := 0; byteIdx < bodyLen; byteIdx++ {
		var acc byte
		for j := range shares {
			acc = gf256.Add(acc, gf256.Mul(shares[j].Body[byteIdx], lagrangeBasisAtZero(ids, j)))
		}
		secret[byteIdx] = acc
	}

	return secret, nil
}

// evaluate computes the Horner evaluation of the polynomial with
// coefficients coeffs (constant term first) at x, over GF(2^8).
func evaluate(coeffs []byte, x byte) byte {
	degree := len(coeffs) - 1
	out := coeffs[degree]
	for i := degree - 1; i >= 0; i-- {
		out = gf256.Add(gf256.Mul(out, x), coeffs[i])
	}
	return out
}

// lagrangeBasisAtZero computes the j-th Lagrange basis polynomial,
// evaluated at x=0, for the node set ids: product over m != j of
// ids[m] / (ids[m] XOR ids[j]).
func lagrangeBasisAtZero(ids []byte, j int) byte {
	basis := byte(1)
	for m := range ids {
		if m == j {
			continue
		}
		num := ids[m]
		den := gf256.Add(ids[m], ids[j])
		basis = gf256.Mul(basis, gf256.Div(num, den))
	}
	return basis
}

func validateShares(shares []share.ShamirShare) error {
	ids := make([]byte, len(shares))
	wantLen := len(shares[0].Body)
	for i, sh := range shares {
		ids[i] = sh.ID
		if len(sh.Body) != wantLen {
			return fmt.Errorf("%w: share %d has body length %d, want %d", share.ErrInconsistentShares, sh.ID, len(sh.Body), wantLen)
		}
	}
	return share.CheckIDs(ids)
}
