// Package krawczyk implements Krawczyk Secret Sharing: encrypt the secret
// with a random key/nonce, disperse the ciphertext with Rabin IDA, and
// share the key/nonce with Shamir SSS. This trades Shamir's
// information-theoretic secrecy over the whole secret for computational
// secrecy over the bulk payload plus information-theoretic secrecy over
// just the 44-byte key+nonce, at Rabin's compact per-share storage cost.
package krawczyk

import (
	"github.com/quorumshare/quorumshare/internal/rabin"
	"github.com/quorumshare/quorumshare/internal/rng"
	"github.com/quorumshare/quorumshare/internal/shamir"
	"github.com/quorumshare/quorumshare/internal/share"
	"github.com/quorumshare/quorumshare/internal/streamcipher"
)

// Sharer implements (k, n)-threshold Krawczyk Secret Sharing.
type Sharer struct {
	k, n  int
	src   rng.Source
	rabin *rabin.Sharer
	sham  *shamir.Sharer
}

// New constructs a Sharer for threshold k out of n shares. src supplies
// the 44-byte key+nonce block; pass rng.CryptoSource{} for production use.
func New(k, n int, src rng.Source) (*Sharer, error) {
	if err := share.ValidateParams(k, n); err != nil {
		return nil, err
	}
	r, err := rabin.New(k, n)
	if err != nil {
		return nil, err
	}
	s, err := shamir.New(k, n, src)
	if err != nil {
		return nil, err
	}
	return &Sharer{k: k, n: n, src: src, rabin: r, sham: s}, nil
}

// Share draws a fresh 44-byte key+nonce block, encrypts a copy of secret
// with streamcipher.ChaCha20 under it, disperses the ciphertext with
// Rabin IDA, shares the key+nonce block with Shamir SSS, and pairs each
// Rabin share with the corresponding Shamir share's body (both indexed by
// the same id 1..n, an invariant both sub-sharers guarantee).
func (s *Sharer) Share(secret []byte) ([]share.KrawczykShare, error) {
	if err := share.ValidateParams(s.k, s.n); err != nil {
		return nil, err
	}

	keyNonce := make([]byte, share.KeyLen)
	if err := s.src.Fill(keyNonce); err != nil {
		return nil, err
	}

	cipher, err := streamcipher.New(keyNonce[:streamcipher.KeyLen], keyNonce[streamcipher.KeyLen:])
	if err != nil {
		return nil, err
	}

	ciphertext := append([]byte(nil), secret...)
	cipher.Encrypt(ciphertext)

	rabinShares, err := s.rabin.Share(ciphertext)
	if err != nil {
		return nil, err
	}
	keyShares, err := s.sham.Share(keyNonce)
	if err != nil {
		return nil, err
	}

	out := make([]share.KrawczykShare, s.n)
	for i := range out {
		out[i] = share.KrawczykShare{
			ID:     rabinShares[i].ID,
			Length: uint64(len(secret)),
			Body:   rabinShares[i].Body,
		}
		copy(out[i].Key[:], keyShares[i].Body)
	}
	return out, nil
}

// Reconstruct recovers secret from at least k Krawczyk shares: it
// reconstructs the key+nonce block from the shares' Shamir-key views,
// reconstructs the ciphertext from their Rabin-body views, and decrypts
// the ciphertext in place with the recovered key+nonce.
func (s *Sharer) Reconstruct(shares []share.KrawczykShare) ([]byte, error) {
	if err := share.ValidateParams(s.k, s.n); err != nil {
		return nil, err
	}
	if len(shares) < s.k {
		return nil, share.ErrInsufficientShares
	}

	// Like Rabin alone, Krawczyk reconstruction uses only the first k
	// shares given; extras are ignored rather than fed to the sub-sharers.
	used := shares[:s.k]
	keyViews := make([]share.ShamirShare, len(used))
	rabinViews := make([]share.RabinShare, len(used))
	for i, sh := range used {
		keyViews[i] = share.ShamirShare{ID: sh.ID, Body: sh.Key[:]}
		rabinViews[i] = share.RabinShare{ID: sh.ID, Length: sh.Length, Body: sh.Body}
	}

	keyNonce, err := s.sham.Reconstruct(keyViews)
	if err != nil {
		return nil, err
	}
	ciphertext, err := s.rabin.Reconstruct(rabinViews)
	if err != nil {
		return nil, err
	}

	cipher, err := streamcipher.New(keyNonce[:streamcipher.KeyLen], keyNonce[streamcipher.KeyLen:])
	if err != nil {
		return nil, err
	}
	cipher.Decrypt(ciphertext)

	return ciphertext, nil
}
