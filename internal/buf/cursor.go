package buf

import (
	"fmt"

	"github.com/joshuapare/cehive/pkg/types"
)

// Cursor is a bounds-checked sequential reader over an immutable byte buffer.
// A failed read or seek never advances the position.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor { return &Cursor{data: data} }

// Len returns the total buffer length.
func (c *Cursor) Len() int { return len(c.data) }

// Pos returns the current read position.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Seek moves the position to pos. Seeking to Len() is allowed (end of buffer).
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.data) {
		return fmt.Errorf("buf: seek to %d in %d-byte buffer: %w", pos, len(c.data), types.ErrOutOfBounds)
	}
	c.pos = pos
	return nil
}

// ReadN returns the next n bytes and advances the position. The result is a
// sub-slice of the underlying buffer, not a copy.
func (c *Cursor) ReadN(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, fmt.Errorf("buf: read %d bytes with %d remaining: %w", n, c.Remaining(), types.ErrOutOfBounds)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Skip discards the next n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.ReadN(n)
	return err
}

// ReadU8 reads one byte.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.ReadN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.ReadN(2)
	if err != nil {
		return 0, err
	}
	return U16LE(b), nil
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.ReadN(4)
	if err != nil {
		return 0, err
	}
	return U32LE(b), nil
}
