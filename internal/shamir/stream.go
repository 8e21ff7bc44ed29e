package shamir

import (
	"io"

	"github.com/quorumshare/quorumshare/internal/rng"
	"github.com/quorumshare/quorumshare/internal/share"
)

// StreamSharer is the streaming counterpart to Sharer: given a secret as a
// random-access byte sequence, it produces n independent, lazily-evaluated
// io.Readers, one per share. Each share byte depends only on the
// corresponding secret byte and k-1 fresh random bytes; no cross-byte
// state is retained. The n readers may be drained in any order, in any
// interleaving, including concurrently, since each owns an independent
// cursor into secret and an independent (but aligned) cursor into the
// shared random stream.
type StreamSharer struct {
	k, n int
	src  rng.Source
}

// NewStream constructs a StreamSharer for threshold k out of n shares.
func NewStream(k, n int, src rng.Source) (*StreamSharer, error) {
	if err := share.ValidateParams(k, n); err != nil {
		return nil, err
	}
	return &StreamSharer{k: k, n: n, src: src}, nil
}

// Share returns n io.Readers, one per share id 1..n, each lazily emitting
// the share body for secret. The n readers share one underlying random
// stream via an rng.Tee so that reader j's k-1 random coefficients for
// secret byte i are identical to every other reader's for that same byte,
// and the tee guarantees src is never advanced more than once per secret
// byte no matter which order the n readers are drained in.
func (s *StreamSharer) Share(secret []byte) []io.Reader {
	tee := rng.NewTee(s.src, s.n)
	readers := make([]io.Reader, s.n)
	for i := 0; i < s.n; i++ {
		readers[i] = &shareReader{
			id:     byte(i + 1),
			k:      s.k,
			secret: secret,
			coeffs: tee.Cursor(i),
		}
	}
	return readers
}

// shareReader lazily produces one share's body from a read-only view of
// the secret and its own tee cursor over the random coefficient stream.
type shareReader struct {
	id     byte
	k      int
	secret []byte
	pos    int
	coeffs rng.Source
}

// Read fills p with up to len(p) share bytes, one per secret byte at this
// reader's current position, and reports io.EOF once secret is exhausted.
func (r *shareReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.secret) {
		return 0, io.EOF
	}

	rnd := make([]byte, r.k-1)
	n := 0
	for n < len(p) && r.pos < len(r.secret) {
		coeffs := make([]byte, r.k)
		coeffs[0] = r.secret[r.pos]
		if r.k > 1 {
			if err := r.coeffs.Fill(rnd); err != nil {
				return n, err
			}
			copy(coeffs[1:], rnd)
		}
		p[n] = evaluate(coeffs, r.id)
		r.pos++
		n++
	}
	return n, nil
}
