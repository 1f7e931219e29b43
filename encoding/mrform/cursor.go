package mrform

import "encoding/binary"

// Cursor is a read-only walk over a borrowed byte slice. It never
// allocates and never copies; ReadExact returns a sub-slice of the
// backing array. The format is little-endian throughout, so Cursor has
// no endianness-dependent code paths to choose between.
type Cursor struct {
	b   []byte
	pos int
}

// NewCursor returns a Cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Pos returns the current byte offset from the start of the buffer.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.b) - c.pos }

// AtEnd reports whether the cursor sits exactly at the end of the buffer.
func (c *Cursor) AtEnd() bool { return c.pos == len(c.b) }

// ReadExact returns the next n bytes, advancing the cursor. It fails
// with Eof if fewer than n bytes remain.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, newErr(Eof, c.pos, "need %d bytes, have %d", n, c.Remaining())
	}
	b := c.b[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadU32LE reads 4 bytes as a little-endian uint32.
func (c *Cursor) ReadU32LE() (uint32, error) {
	b, err := c.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// MirrorCursor pairs a read-only input Cursor with a same-length output
// buffer that is written linearly and never back-patched, per spec.md
// §4.6 and §5. The scrubber is the only user: PHI paths read into the
// output copy, mutate the copy, then write; everything else goes through
// Mirror, which copies bytes through unchanged.
type MirrorCursor struct {
	in  Cursor
	out []byte
	opos int
}

// NewMirrorCursor creates a MirrorCursor reading from in and writing
// into out. Callers must ensure len(out) == len(in) before the walk
// completes; MirrorCursor does not enforce it mid-walk since the final
// trailing byte is written last.
func NewMirrorCursor(in, out []byte) *MirrorCursor {
	return &MirrorCursor{in: Cursor{b: in}, out: out}
}

// Pos returns the shared input/output offset (the two cursors always
// advance in lockstep).
func (m *MirrorCursor) Pos() int { return m.in.pos }

// Remaining returns unread input bytes.
func (m *MirrorCursor) Remaining() int { return m.in.Remaining() }

// AtEnd reports whether the input cursor is exhausted.
func (m *MirrorCursor) AtEnd() bool { return m.in.AtEnd() }

// ReadExact borrows n input bytes without touching the output.
func (m *MirrorCursor) ReadExact(n int) ([]byte, error) { return m.in.ReadExact(n) }

// ReadU32LE reads a little-endian uint32 from the input without
// touching the output.
func (m *MirrorCursor) ReadU32LE() (uint32, error) { return m.in.ReadU32LE() }

// WriteExact appends b to the output at the current output offset. The
// caller is responsible for keeping the output offset in lockstep with
// the input offset (Mirror does this automatically; PHI paths that call
// ReadExact then WriteExact with a mutated copy of the same length also
// stay in lockstep).
func (m *MirrorCursor) WriteExact(b []byte) error {
	if m.opos+len(b) > len(m.out) {
		return newErr(Eof, m.opos, "output buffer too short: need %d more bytes, have %d", len(b), len(m.out)-m.opos)
	}
	copy(m.out[m.opos:], b)
	m.opos += len(b)
	return nil
}

// Mirror reads n bytes from the input and writes the identical bytes to
// the output in one step, as spec.md §9 ("Mirror I/O") prescribes.
func (m *MirrorCursor) Mirror(n int) error {
	b, err := m.in.ReadExact(n)
	if err != nil {
		return err
	}
	return m.WriteExact(b)
}

// MirrorU32LE reads a little-endian uint32 from the input, mirrors its 4
// bytes to the output unchanged, and returns the decoded value. Framing
// fields (group/item counts, header words) are never part of a PHI
// sub-region, so they're always mirrored verbatim.
func (m *MirrorCursor) MirrorU32LE() (uint32, error) {
	b, err := m.in.ReadExact(4)
	if err != nil {
		return 0, err
	}
	if err := m.WriteExact(b); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// MirrorRedacted reads n bytes from the input, applies fn to a private
// copy (fn may overwrite any subset of bytes in place), and writes the
// resulting bytes to the output. The input slice itself is never
// mutated.
func (m *MirrorCursor) MirrorRedacted(n int, fn func(scratch []byte)) error {
	b, err := m.in.ReadExact(n)
	if err != nil {
		return err
	}
	scratch := make([]byte, n)
	copy(scratch, b)
	fn(scratch)
	return m.WriteExact(scratch)
}
