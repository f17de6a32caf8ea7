package encoding

import (
	"encoding/binary"
	"math/bits"

	"github.com/arloliu/zvarint/errs"
)

// Maximum encoded lengths of unsigned varints, ceil(width/7).
const (
	MaxUvarint32Len = 5
	MaxUvarint64Len = binary.MaxVarintLen64
)

// PutUvarint32 writes u into buf as a base-128 varint and returns the number
// of bytes written, between 1 and MaxUvarint32Len.
//
// Groups of 7 bits are written least significant first; every byte except the
// last has its high bit set. Zero encodes as the single byte 0x00.
//
// buf must hold at least Uvarint32Len(u) bytes, otherwise PutUvarint32 panics.
func PutUvarint32(buf []byte, u uint32) int {
	return binary.PutUvarint(buf, uint64(u))
}

// PutUvarint64 writes u into buf as a base-128 varint and returns the number
// of bytes written, between 1 and MaxUvarint64Len.
//
// buf must hold at least Uvarint64Len(u) bytes, otherwise PutUvarint64 panics.
func PutUvarint64(buf []byte, u uint64) int {
	return binary.PutUvarint(buf, u)
}

// AppendUvarint32 appends the varint form of u to dst.
func AppendUvarint32(dst []byte, u uint32) []byte {
	if u < 0x80 {
		return append(dst, byte(u))
	}

	return binary.AppendUvarint(dst, uint64(u))
}

// AppendUvarint64 appends the varint form of u to dst.
func AppendUvarint64(dst []byte, u uint64) []byte {
	if u < 0x80 {
		return append(dst, byte(u))
	}

	return binary.AppendUvarint(dst, u)
}

// Uvarint32Len returns the number of bytes PutUvarint32 writes for u.
func Uvarint32Len(u uint32) int {
	return (bits.Len32(u|1) + 6) / 7
}

// Uvarint64Len returns the number of bytes PutUvarint64 writes for u.
func Uvarint64Len(u uint64) int {
	return (bits.Len64(u|1) + 6) / 7
}

// ReadUvarint32 decodes a varint holding at most 32 bits from the cursor.
//
// On success the cursor advances by exactly the number of bytes consumed.
//
// Error conditions:
//   - errs.ErrBufferExhausted: no terminating byte before the end of the
//     buffer, including an empty cursor. The cursor is left with
//     Remaining() == 0.
//   - errs.ErrVarintOverflow: the varint is longer than MaxUvarint32Len
//     bytes or its last byte carries bits above bit 31. The cursor is left
//     unchanged.
func ReadUvarint32(c *Cursor) (uint32, error) {
	data := c.buf[c.pos:]
	if len(data) > 0 && data[0] < 0x80 {
		c.pos++
		return uint32(data[0]), nil
	}

	var value uint32
	for i, b := range data {
		if i == MaxUvarint32Len-1 {
			// the fifth byte holds bits 28-31 only
			if b > 0x0F {
				return 0, errs.ErrVarintOverflow
			}
			c.pos += i + 1

			return value | uint32(b)<<28, nil
		}

		if b < 0x80 {
			c.pos += i + 1
			return value | uint32(b)<<(7*i), nil
		}
		value |= uint32(b&0x7F) << (7 * i)
	}

	c.exhaust()

	return 0, errs.ErrBufferExhausted
}

// ReadUvarint64 decodes a varint holding at most 64 bits from the cursor.
//
// The cursor and error semantics match ReadUvarint32, with a limit of
// MaxUvarint64Len bytes and a last byte of at most 0x01.
func ReadUvarint64(c *Cursor) (uint64, error) {
	data := c.buf[c.pos:]
	if len(data) > 0 && data[0] < 0x80 {
		c.pos++
		return uint64(data[0]), nil
	}

	var value uint64
	for i, b := range data {
		if i == MaxUvarint64Len-1 {
			// the tenth byte holds bit 63 only
			if b > 0x01 {
				return 0, errs.ErrVarintOverflow
			}
			c.pos += i + 1

			return value | uint64(b)<<63, nil
		}

		if b < 0x80 {
			c.pos += i + 1
			return value | uint64(b)<<(7*i), nil
		}
		value |= uint64(b&0x7F) << (7 * i)
	}

	c.exhaust()

	return 0, errs.ErrBufferExhausted
}
