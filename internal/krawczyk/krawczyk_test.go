package krawczyk

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumshare/quorumshare/internal/rng"
	"github.com/quorumshare/quorumshare/internal/share"
)

func TestS4ChaCha20ThreeOfFive(t *testing.T) {
	secret := []byte("hello world")
	s, err := New(3, 5, rng.CryptoSource{})
	require.NoError(t, err)

	shares, err := s.Share(secret)
	require.NoError(t, err)
	require.Len(t, shares, 5)
	for _, sh := range shares {
		assert.Len(t, sh.Key, share.KeyLen)
		assert.Len(t, sh.Body, 4) // ceil(11/3) = 4
	}

	result, err := s.Reconstruct(shares[:3])
	require.NoError(t, err)
	assert.Equal(t, secret, result)
}

func TestRoundTripRandom(t *testing.T) {
	for _, tc := range []struct{ k, n, length int }{
		{1, 1, 16}, {2, 3, 0}, {2, 5, 33}, {4, 7, 500},
	} {
		secret := make([]byte, tc.length)
		_, _ = rand.Read(secret)

		s, err := New(tc.k, tc.n, rng.CryptoSource{})
		require.NoError(t, err)
		shares, err := s.Share(secret)
		require.NoError(t, err)

		result, err := s.Reconstruct(shares[:tc.k])
		require.NoError(t, err, "k=%d n=%d length=%d", tc.k, tc.n, tc.length)
		assert.Equal(t, secret, result)
	}
}

func TestAnyKSharesReconstruct(t *testing.T) {
	secret := []byte("krawczyk composition test payload")
	s, err := New(3, 5, rng.CryptoSource{})
	require.NoError(t, err)
	shares, err := s.Share(secret)
	require.NoError(t, err)

	subsets := [][]int{{0, 1, 2}, {0, 2, 4}, {2, 3, 4}}
	for _, idx := range subsets {
		subset := []share.KrawczykShare{shares[idx[0]], shares[idx[1]], shares[idx[2]]}
		result, err := s.Reconstruct(subset)
		require.NoError(t, err)
		assert.Equal(t, secret, result)
	}
}

func TestInsufficientSharesRejected(t *testing.T) {
	s, err := New(3, 5, rng.CryptoSource{})
	require.NoError(t, err)
	shares, err := s.Share([]byte("needs quorum"))
	require.NoError(t, err)
	_, err = s.Reconstruct(shares[:2])
	assert.ErrorIs(t, err, share.ErrInsufficientShares)
}

func TestInvalidParameters(t *testing.T) {
	for _, c := range []struct{ k, n int }{{0, 2}, {3, 2}, {2, 256}} {
		_, err := New(c.k, c.n, rng.CryptoSource{})
		assert.ErrorIs(t, err, share.ErrInvalidParameters)
	}
}

func TestShareIDsAscendingAndPaired(t *testing.T) {
	s, err := New(2, 4, rng.CryptoSource{})
	require.NoError(t, err)
	shares, err := s.Share([]byte("pairing check"))
	require.NoError(t, err)
	for i, sh := range shares {
		assert.Equal(t, byte(i+1), sh.ID)
	}
}

func TestShareCallsDrawIndependentKeyMaterial(t *testing.T) {
	s, err := New(2, 3, rng.CryptoSource{})
	require.NoError(t, err)
	secret := []byte("distinct key material per run")
	sharesA, err := s.Share(secret)
	require.NoError(t, err)
	sharesB, err := s.Share(secret)
	require.NoError(t, err)

	assert.NotEqual(t, sharesA[0].Key, sharesB[0].Key, "two Share calls must draw independent key material")
}

func BenchmarkShare(b *testing.B) {
	secret := make([]byte, 4096)
	s, _ := New(4, 8, rng.CryptoSource{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Share(secret)
	}
}

func BenchmarkReconstruct(b *testing.B) {
	secret := make([]byte, 4096)
	s, _ := New(4, 8, rng.CryptoSource{})
	shares, _ := s.Share(secret)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Reconstruct(shares[:4])
	}
}
