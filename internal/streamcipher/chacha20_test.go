package streamcipher

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumshare/quorumshare/internal/share"
)

func randBytes(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := randBytes(KeyLen)
	nonce := randBytes(NonceLen)
	plaintext := []byte("hello world, this is the secret payload")

	c1, err := New(key, nonce)
	require.NoError(t, err)
	buf := append([]byte(nil), plaintext...)
	c1.Encrypt(buf)
	assert.NotEqual(t, plaintext, buf)

	c2, err := New(key, nonce)
	require.NoError(t, err)
	c2.Decrypt(buf)
	assert.Equal(t, plaintext, buf)
}

func TestDeterministicPerKeyNonce(t *testing.T) {
	key := randBytes(KeyLen)
	nonce := randBytes(NonceLen)
	plaintext := bytes.Repeat([]byte{0x42}, 64)

	a, _ := New(key, nonce)
	b, _ := New(key, nonce)

	bufA := append([]byte(nil), plaintext...)
	bufB := append([]byte(nil), plaintext...)
	a.Encrypt(bufA)
	b.Encrypt(bufB)
	assert.Equal(t, bufA, bufB)
}

func TestEmptyBuffer(t *testing.T) {
	c, err := New(randBytes(KeyLen), randBytes(NonceLen))
	require.NoError(t, err)
	buf := []byte{}
	assert.NotPanics(t, func() { c.Encrypt(buf) })
}

func TestRejectsBadKeyOrNonceLength(t *testing.T) {
	_, err := New(randBytes(KeyLen-1), randBytes(NonceLen))
	assert.ErrorIs(t, err, share.ErrCipherFailure)

	_, err = New(randBytes(KeyLen), randBytes(NonceLen+1))
	assert.ErrorIs(t, err, share.ErrCipherFailure)
}
