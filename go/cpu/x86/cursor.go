package x86

import (
	"encoding/binary"

	"github.com/Dcraftbg/vx86/go/models/cpu"
)

// Cursor is a forward-only reader over a byte slice it does not own.
// Reads either succeed and advance, or fail and leave the cursor where it was.
type Cursor struct {
	origin []byte
	pos    int
}

func NewCursor(p []byte) *Cursor {
	return &Cursor{origin: p}
}

func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.origin) {
		return 0, false
	}
	return c.origin[c.pos], true
}

// Read returns the next n bytes. The returned slice aliases the underlying buffer.
func (c *Cursor) Read(n int) ([]byte, bool) {
	if n < 0 || len(c.origin)-c.pos < n {
		return nil, false
	}
	p := c.origin[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return p, true
}

func (c *Cursor) ReadU8() (byte, bool) {
	b, ok := c.Peek()
	if ok {
		c.pos++
	}
	return b, ok
}

func (c *Cursor) ReadU16() (uint16, bool) {
	p, ok := c.Read(2)
	if !ok {
		return 0, false
	}
	v, _ := cpu.UnpackUint(binary.LittleEndian, 2, p)
	return uint16(v), true
}

// Skip advances past at most n bytes.
func (c *Cursor) Skip(n int) {
	if left := len(c.origin) - c.pos; n > left {
		n = left
	}
	if n > 0 {
		c.pos += n
	}
}

func (c *Cursor) HasLeft() bool {
	return c.pos < len(c.origin)
}

func (c *Cursor) Len() int {
	return len(c.origin) - c.pos
}

// Offset is the number of bytes consumed since the cursor was created.
func (c *Cursor) Offset() int {
	return c.pos
}

// Consumed returns the bytes read so far.
func (c *Cursor) Consumed() []byte {
	return c.origin[:c.pos:c.pos]
}
