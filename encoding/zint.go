package encoding

import (
	"github.com/arloliu/zvarint/internal/zigzag"
)

// Maximum encoded lengths of zigzag varints.
//
// ceil(33/7) = 5 for 32-bit values and ceil(65/7) = 10 for 64-bit values; the
// sign bit folded in by zigzag fits within these bounds.
const (
	MaxZIntLen  = MaxUvarint32Len
	MaxZLongLen = MaxUvarint64Len
)

// PutZInt writes the zigzag varint encoding of v into buf and returns the
// number of bytes written, at most MaxZIntLen.
//
// The encoding is minimal: 0 is written as the single byte 0x00 and no
// trailing continuation bytes are ever emitted.
//
// buf must hold at least MaxZIntLen bytes (or ZIntLen(v)), otherwise PutZInt
// panics.
func PutZInt(buf []byte, v int32) int {
	return PutUvarint32(buf, zigzag.Encode32(v))
}

// PutZLong writes the zigzag varint encoding of v into buf and returns the
// number of bytes written, at most MaxZLongLen.
//
// buf must hold at least MaxZLongLen bytes (or ZLongLen(v)), otherwise
// PutZLong panics.
func PutZLong(buf []byte, v int64) int {
	return PutUvarint64(buf, zigzag.Encode64(v))
}

// AppendZInt appends the zigzag varint encoding of v to dst.
func AppendZInt(dst []byte, v int32) []byte {
	return AppendUvarint32(dst, zigzag.Encode32(v))
}

// AppendZLong appends the zigzag varint encoding of v to dst.
func AppendZLong(dst []byte, v int64) []byte {
	return AppendUvarint64(dst, zigzag.Encode64(v))
}

// ZIntLen returns the number of bytes PutZInt writes for v.
func ZIntLen(v int32) int {
	return Uvarint32Len(zigzag.Encode32(v))
}

// ZLongLen returns the number of bytes PutZLong writes for v.
func ZLongLen(v int64) int {
	return Uvarint64Len(zigzag.Encode64(v))
}

// ReadZInt decodes a zigzag varint int32 from the cursor.
//
// A nil error means success and the cursor has advanced past the value. On
// error the returned value is 0 and must not be used; see ReadUvarint32 for
// the cursor state after each kind of failure.
func ReadZInt(c *Cursor) (int32, error) {
	u, err := ReadUvarint32(c)
	if err != nil {
		return 0, err
	}

	return zigzag.Decode32(u), nil
}

// ReadZLong decodes a zigzag varint int64 from the cursor.
//
// A nil error means success and the cursor has advanced past the value. On
// error the returned value is 0 and must not be used; see ReadUvarint64 for
// the cursor state after each kind of failure.
func ReadZLong(c *Cursor) (int64, error) {
	u, err := ReadUvarint64(c)
	if err != nil {
		return 0, err
	}

	return zigzag.Decode64(u), nil
}
