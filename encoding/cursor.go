package encoding

// Cursor is a read position over a caller-owned byte slice.
//
// Decoding functions such as ReadZInt and ReadZLong advance the cursor past
// the bytes they consume, so several values can be decoded from one buffer by
// chaining calls on the same cursor:
//
//	c := encoding.NewCursor(data)
//	a, err := encoding.ReadZInt(c)
//	...
//	b, err := encoding.ReadZLong(c)
//
// A read that runs out of bytes pins the cursor at the end of the buffer,
// leaving Remaining() == 0. A read that fails because the data is malformed
// leaves the cursor where it was.
//
// The cursor never copies or modifies the underlying slice. It is not safe
// for concurrent use.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.pos
}

// Bytes returns the unread portion of the buffer.
//
// The returned slice aliases the caller's buffer.
func (c *Cursor) Bytes() []byte {
	return c.buf[c.pos:]
}

// Reset repositions the cursor at the start of buf.
func (c *Cursor) Reset(buf []byte) {
	c.buf = buf
	c.pos = 0
}

// Skip advances the cursor by n bytes.
//
// Returns false, leaving the cursor unchanged, if n is negative or larger than
// the remaining byte count.
func (c *Cursor) Skip(n int) bool {
	if n < 0 || n > c.Remaining() {
		return false
	}
	c.pos += n

	return true
}

// exhaust pins the cursor at the end of the buffer.
func (c *Cursor) exhaust() {
	c.pos = len(c.buf)
}
