package rng

import "sync"

// Tee fans a single Source out to n cursors that must all see the exact
// same bytes at the same positions, advancing the underlying Source only
// once per position no matter how many cursors have read it.
//
// This is the abstraction the Shamir streaming variant needs (spec §4.5,
// §9): n output iterators, one per share, each consuming the SAME k-1
// random bytes for a given input byte position. A ring buffer holds bytes
// that have been drawn from Source but not yet consumed by the slowest
// cursor; the buffer advances only when every cursor has read past a
// position.
type Tee struct {
	mu      sync.Mutex
	source  Source
	buf     []byte // ring of not-yet-fully-consumed bytes, oldest first
	base    int    // absolute index of buf[0]
	cursors []int  // absolute read position of each cursor
}

// NewTee creates a Tee over src with n cursors, all starting at position 0.
func NewTee(src Source, n int) *Tee {
	return &Tee{
		source:  src,
		cursors: make([]int, n),
	}
}

// Cursor returns a *Cursor bound to cursor index i (0 <= i < n). Reading
// from distinct cursors at the same relative offset yields identical
// bytes; reading from a cursor never re-advances the underlying Source
// for a position another cursor already consumed.
func (t *Tee) Cursor(i int) *Cursor {
	return &Cursor{tee: t, index: i}
}

// read fills out with len(out) fresh bytes for cursor i, drawing from the
// underlying Source only for positions not already buffered.
func (t *Tee) read(i int, out []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	pos := t.cursors[i]
	need := pos + len(out) - (t.base + len(t.buf))
	if need > 0 {
		grow := make([]byte, need)
		if err := t.source.Fill(grow); err != nil {
			return err
		}
		t.buf = append(t.buf, grow...)
	}

	for j := 0; j < len(out); j++ {
		out[j] = t.buf[pos+j-t.base]
	}
	t.cursors[i] = pos + len(out)

	// Drop buffered bytes every cursor has now read past.
	minPos := t.cursors[0]
	for _, c := range t.cursors[1:] {
		if c < minPos {
			minPos = c
		}
	}
	if drop := minPos - t.base; drop > 0 {
		t.buf = t.buf[drop:]
		t.base = minPos
	}
	return nil
}

// Cursor is one of a Tee's n read positions over a shared random stream.
type Cursor struct {
	tee   *Tee
	index int
}

// Fill reads len(buf) bytes for this cursor's position, implementing
// Source so a Cursor can be handed anywhere a Source is expected.
func (c *Cursor) Fill(buf []byte) error {
	return c.tee.read(c.index, buf)
}
