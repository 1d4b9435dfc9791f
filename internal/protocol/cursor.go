package protocol

import (
	"bytes"
	"encoding/binary"
	"strings"
	"unicode/utf8"
)

// Cursor walks a message body, bounds-checking every read. A failed read
// leaves the position unchanged.
type Cursor struct {
	buf []byte
	off int
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Position returns the current byte offset into the body.
func (c *Cursor) Position() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// ReadU32 reads one native-endian u32.
func (c *Cursor) ReadU32() (uint32, error) {
	if c.off+4 > len(c.buf) {
		return 0, ErrOutOfBounds
	}
	v := binary.NativeEndian.Uint32(c.buf[c.off : c.off+4])
	c.off += 4
	return v, nil
}

// ReadString reads a protocol string: a u32 length prefix counting the
// content bytes including the NUL terminator, then the content. The text
// runs to the first NUL inside the declared window; a window overrunning
// the buffer is a protocol violation but is clamped rather than rejected.
// Only an unreadable length prefix fails. The cursor stops right after
// the content, unaligned; callers Align4 before the next fixed field.
func (c *Cursor) ReadString() (string, error) {
	length, err := c.ReadU32()
	if err != nil {
		return "", err
	}
	end := c.off + int(length)
	if end > len(c.buf) || end < c.off {
		end = len(c.buf)
	}
	s := terminate(c.buf[c.off:end])
	c.off = end
	return s, nil
}

// ReadCString consumes text from the current position up to the first
// NUL or the buffer end. The position lands on the terminator, or on the
// buffer end when no terminator exists.
func (c *Cursor) ReadCString() string {
	rest := c.buf[c.off:]
	i := bytes.IndexByte(rest, 0)
	if i < 0 {
		i = len(rest)
	}
	s := lossyString(rest[:i])
	c.off += i
	return s
}

// Align4 advances the position to the next 4-byte boundary.
func (c *Cursor) Align4() {
	c.off = Align4(c.off)
}

// Align4 rounds off up to the next multiple of 4.
func Align4(off int) int {
	return (off + 3) &^ 3
}

// terminate cuts b at its first NUL and decodes the prefix.
func terminate(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return lossyString(b)
}

// lossyString decodes b, replacing invalid UTF-8 sequences instead of
// failing on them.
func lossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
