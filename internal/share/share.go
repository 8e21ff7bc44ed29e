// Package share defines the typed share records and error taxonomy shared
// by the Rabin, Shamir, and Krawczyk sharers.
package share

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors returned by Share/Reconstruct across all three schemes.
// Callers should use errors.Is against these, never string matching.
var (
	// ErrInvalidParameters is returned when (k, n) are out of range: n=0,
	// k=0, k>n, or n>255.
	ErrInvalidParameters = errors.New("sharing: invalid parameters")

	// ErrInsufficientShares is returned when Reconstruct is given fewer
	// than k shares.
	ErrInsufficientShares = errors.New("sharing: insufficient shares")

	// ErrInconsistentShares is returned when the supplied shares cannot
	// possibly have come from a single Share call: mismatched body
	// lengths, duplicate or zero ids, or missing length metadata.
	ErrInconsistentShares = errors.New("sharing: inconsistent shares")

	// ErrRngFailure is returned when the configured randomness source
	// fails to fill a buffer.
	ErrRngFailure = errors.New("sharing: rng failure")

	// ErrCipherFailure is returned when cipher construction fails; with a
	// correctly sized key and nonce this should be unreachable.
	ErrCipherFailure = errors.New("sharing: cipher failure")
)

// ShamirShare is one share produced by Shamir Secret Sharing. Body has the
// same length as the original secret.
type ShamirShare struct {
	ID   byte   `json:"id"`
	Body []byte `json:"body"`
}

// RabinShare is one share produced by Rabin Information Dispersal. Body has
// length ceil(Length/k); Length is the original secret length, needed
// because the final chunk may be conceptually zero-padded.
type RabinShare struct {
	ID     byte   `json:"id"`
	Length uint64 `json:"length"`
	Body   []byte `json:"body"`
}

// KeyLen is the size of the Shamir-shared key+nonce block carried by every
// KrawczykShare: 32 bytes of stream-cipher key followed by 12 bytes of
// nonce.
const KeyLen = 44

// KrawczykShare is one share produced by Krawczyk Secret Sharing: a Rabin
// share of the ciphertext plus a Shamir share of the key+nonce.
type KrawczykShare struct {
	ID     byte         `json:"id"`
	Length uint64       `json:"length"`
	Key    [KeyLen]byte `json:"key"`
	Body   []byte       `json:"body"`
}

// krawczykShareWire is KrawczykShare's on-the-wire shape: Key travels as a
// slice so encoding/json base64-encodes it like Body, instead of emitting a
// 44-element array of numbers for the fixed-size array field.
type krawczykShareWire struct {
	ID     byte   `json:"id"`
	Length uint64 `json:"length"`
	Key    []byte `json:"key"`
	Body   []byte `json:"body"`
}

// MarshalJSON encodes the fixed-size Key as a base64 string like Body,
// rather than letting encoding/json's default array-of-numbers rendering
// for [KeyLen]byte bloat the share file.
func (s KrawczykShare) MarshalJSON() ([]byte, error) {
	return json.Marshal(krawczykShareWire{ID: s.ID, Length: s.Length, Key: s.Key[:], Body: s.Body})
}

// UnmarshalJSON decodes a share produced by MarshalJSON, rejecting any Key
// whose decoded length is not exactly KeyLen.
func (s *KrawczykShare) UnmarshalJSON(data []byte) error {
	var w krawczykShareWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if len(w.Key) != KeyLen {
		return fmt.Errorf("%w: key must be %d bytes, got %d", ErrInconsistentShares, KeyLen, len(w.Key))
	}
	s.ID, s.Length, s.Body = w.ID, w.Length, w.Body
	copy(s.Key[:], w.Key)
	return nil
}

// ValidateParams checks the (k, n) threshold invariants common to all three
// schemes: 1 <= k <= n <= 255. It is called at sharer construction and
// again at the start of every Share/Reconstruct of the Shamir, Rabin, and
// Krawczyk sharers; shamir.StreamSharer checks it only in NewStream.
func ValidateParams(k, n int) error {
	if n <= 0 || n > 255 {
		return ErrInvalidParameters
	}
	if k <= 0 || k > n {
		return ErrInvalidParameters
	}
	return nil
}

// CheckIDs verifies that ids are all non-zero and pairwise distinct, as
// required before Lagrange denominators or Vandermonde rows are built.
func CheckIDs(ids []byte) error {
	seen := make(map[byte]bool, len(ids))
	for _, id := range ids {
		if id == 0 {
			return ErrInconsistentShares
		}
		if seen[id] {
			return ErrInconsistentShares
		}
		seen[id] = true
	}
	return nil
}
