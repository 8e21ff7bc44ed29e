// Package streamcipher provides the symmetric cipher collaborator
// Krawczyk Secret Sharing composes with IDA: a 32-byte-key, 12-byte-nonce
// stream cipher with in-place encrypt/decrypt. ChaCha20 (IETF variant) is
// the reference instantiation, pinned here the way the teacher pins
// AES-256-GCM for its own config-encryption collaborator.
package streamcipher

import (
	"fmt"

	"golang.org/x/crypto/chacha20"

	"github.com/quorumshare/quorumshare/internal/share"
)

// KeyLen and NonceLen are the sizes the Cipher contract requires.
const (
	KeyLen   = chacha20.KeySize   // 32
	NonceLen = chacha20.NonceSize // 12
)

// Cipher is the symmetric cipher contract Krawczyk Secret Sharing depends
// on: construction from a fixed-size key and nonce, and in-place
// encrypt/decrypt such that Decrypt(Encrypt(x)) == x for a given
// (key, nonce) pair.
type Cipher interface {
	Encrypt(buf []byte)
	Decrypt(buf []byte)
}

// ChaCha20 wraps golang.org/x/crypto/chacha20 to satisfy Cipher. ChaCha20
// is its own inverse for a fixed (key, nonce): XOR-ing the same keystream
// twice returns the original bytes, so Encrypt and Decrypt are the same
// operation on a byte-for-byte basis, but each call constructs a fresh
// stream positioned at the nonce's initial counter.
type ChaCha20 struct {
	key   [KeyLen]byte
	nonce [NonceLen]byte
}

// New constructs a ChaCha20 cipher from a 32-byte key and 12-byte nonce.
// Returns share.ErrCipherFailure if key or nonce is the wrong length; with
// correctly sized inputs this is unreachable.
func New(key, nonce []byte) (*ChaCha20, error) {
	if len(key) != KeyLen || len(nonce) != NonceLen {
		return nil, fmt.Errorf("%w: key must be %d bytes, nonce %d bytes", share.ErrCipherFailure, KeyLen, NonceLen)
	}
	c := &ChaCha20{}
	copy(c.key[:], key)
	copy(c.nonce[:], nonce)
	return c, nil
}

// Encrypt XORs buf in place with the ChaCha20 keystream for (key, nonce).
func (c *ChaCha20) Encrypt(buf []byte) {
	c.xor(buf)
}

// Decrypt XORs buf in place with the ChaCha20 keystream for (key, nonce);
// identical to Encrypt since ChaCha20 is a symmetric XOR stream cipher.
func (c *ChaCha20) Decrypt(buf []byte) {
	c.xor(buf)
}

func (c *ChaCha20) xor(buf []byte) {
	cipher, err := chacha20.NewUnauthenticatedCipher(c.key[:], c.nonce[:])
	if err != nil {
		// Unreachable: key/nonce lengths are validated in New.
		panic(fmt.Errorf("%w: %v", share.ErrCipherFailure, err))
	}
	cipher.XORKeyStream(buf, buf)
}
