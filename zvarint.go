// Package zvarint encodes signed 32- and 64-bit integers as zigzag varints:
// the sign is folded into the low bit, then the result is written seven bits
// per byte, least significant group first, with the high bit of each byte
// marking that another byte follows.
//
// Values of small magnitude take few bytes regardless of sign:
//
//	      0 -> 00
//	     -1 -> 01
//	      1 -> 02
//	     64 -> 80 01
//	MinInt32 -> ff ff ff ff 0f
//
// An int32 never takes more than MaxZIntLen bytes and an int64 never more
// than MaxZLongLen. The encoding is byte-compatible with protobuf sint32 and
// sint64 fields.
//
// # Single values
//
//	var buf [zvarint.MaxZLongLen]byte
//	n := zvarint.PutZLong(buf[:], -300)
//
//	c := zvarint.NewCursor(buf[:n])
//	v, err := zvarint.ReadZLong(c)
//
// A failed read returns an error wrapping errs.ErrBufferExhausted when the
// input ends inside a value, in which case the cursor is left with nothing
// remaining, or errs.ErrVarintOverflow when the encoded value does not fit the
// requested width, in which case the cursor is not moved.
//
// # Blocks
//
// EncodeInt32s and EncodeInt64s pack a whole column into a self-describing
// block with an optional compression codec and an xxHash64 checksum:
//
//	data, _ := zvarint.EncodeInt64s(values, block.WithCompression(format.CompressionZstd))
//	values, err := zvarint.DecodeInt64s(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding and
// block packages. For column encoders, delta columns and streaming block
// construction, use those packages directly.
package zvarint

import (
	"github.com/arloliu/zvarint/block"
	"github.com/arloliu/zvarint/encoding"
	"github.com/arloliu/zvarint/format"
)

const (
	// MaxZIntLen is the maximum encoded length of an int32.
	MaxZIntLen = encoding.MaxZIntLen
	// MaxZLongLen is the maximum encoded length of an int64.
	MaxZLongLen = encoding.MaxZLongLen
)

// Cursor is a read position over an immutable byte sequence.
type Cursor = encoding.Cursor

var defaultBlockOptions = []block.EncoderOption{
	block.WithCompression(format.CompressionNone),
	block.WithChecksum(true),
}

// NewCursor creates a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return encoding.NewCursor(buf)
}

// PutZInt writes the zigzag varint encoding of value to buf and returns the
// number of bytes written. buf must hold at least MaxZIntLen bytes.
func PutZInt(buf []byte, value int32) int {
	return encoding.PutZInt(buf, value)
}

// PutZLong writes the zigzag varint encoding of value to buf and returns the
// number of bytes written. buf must hold at least MaxZLongLen bytes.
func PutZLong(buf []byte, value int64) int {
	return encoding.PutZLong(buf, value)
}

// AppendZInt appends the zigzag varint encoding of value to dst.
func AppendZInt(dst []byte, value int32) []byte {
	return encoding.AppendZInt(dst, value)
}

// AppendZLong appends the zigzag varint encoding of value to dst.
func AppendZLong(dst []byte, value int64) []byte {
	return encoding.AppendZLong(dst, value)
}

// ZIntLen returns the encoded length of value.
func ZIntLen(value int32) int {
	return encoding.ZIntLen(value)
}

// ZLongLen returns the encoded length of value.
func ZLongLen(value int64) int {
	return encoding.ZLongLen(value)
}

// ReadZInt decodes one int32 at the cursor and advances past it.
func ReadZInt(c *Cursor) (int32, error) {
	return encoding.ReadZInt(c)
}

// ReadZLong decodes one int64 at the cursor and advances past it.
func ReadZLong(c *Cursor) (int64, error) {
	return encoding.ReadZLong(c)
}

// NewDefaultEncoder creates a block encoder with default settings:
//   - Compression: None
//   - Checksum: enabled
//
// Additional options override the defaults.
func NewDefaultEncoder[T encoding.Signed](opts ...block.EncoderOption) (*block.Encoder[T], error) {
	return block.NewEncoder[T](append(append([]block.EncoderOption{}, defaultBlockOptions...), opts...)...)
}

// EncodeInt32s packs values into a single block.
func EncodeInt32s(values []int32, opts ...block.EncoderOption) ([]byte, error) {
	return encodeBlock(values, opts)
}

// EncodeInt64s packs values into a single block.
func EncodeInt64s(values []int64, opts ...block.EncoderOption) ([]byte, error) {
	return encodeBlock(values, opts)
}

// DecodeInt32s validates a block of int32 values and returns its contents.
func DecodeInt32s(data []byte) ([]int32, error) {
	return decodeBlock[int32](data)
}

// DecodeInt64s validates a block of int64 values and returns its contents.
func DecodeInt64s(data []byte) ([]int64, error) {
	return decodeBlock[int64](data)
}

func encodeBlock[T encoding.Signed](values []T, opts []block.EncoderOption) ([]byte, error) {
	enc, err := NewDefaultEncoder[T](opts...)
	if err != nil {
		return nil, err
	}

	if err := enc.AppendSlice(values); err != nil {
		_, _ = enc.Finish()
		return nil, err
	}

	blk, err := enc.Finish()
	if err != nil {
		return nil, err
	}

	return blk.Bytes(), nil
}

func decodeBlock[T encoding.Signed](data []byte) ([]T, error) {
	blk, err := block.Decode[T](data)
	if err != nil {
		return nil, err
	}

	return blk.Values(), nil
}
