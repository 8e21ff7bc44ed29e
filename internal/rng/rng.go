// Package rng provides the randomness source contract used by Shamir and
// Krawczyk sharing, plus the "tee" abstraction needed by the Shamir
// streaming variant.
package rng

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/quorumshare/quorumshare/internal/share"
)

// Source is a uniform byte source. Quality must be cryptographic for
// Shamir and Krawczyk; passing a non-cryptographic Source silently weakens
// the security of both.
type Source interface {
	// Fill fills buf with uniform random bytes, returning
	// share.ErrRngFailure wrapped with the underlying cause on failure.
	Fill(buf []byte) error
}

// CryptoSource is a Source backed by crypto/rand, the reference
// instantiation for production use.
type CryptoSource struct{}

// Fill implements Source using crypto/rand.Read.
func (CryptoSource) Fill(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return fmt.Errorf("%w: %v", share.ErrRngFailure, err)
	}
	return nil
}
