package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/zvarint/internal/pool"
	"github.com/arloliu/zvarint/internal/zigzag"
)

// Signed is the set of integer types a zigzag varint column can hold.
type Signed interface {
	int32 | int64
}

// ZIntEncoder encodes a column of signed integers as back-to-back zigzag varints.
//
// Each value occupies between 1 and MaxZIntLen (int32) or MaxZLongLen (int64)
// bytes, so columns of small-magnitude values of either sign are dense:
//   - [-64, 63]: 1 byte
//   - [-8192, 8191]: 2 bytes
//   - [-1048576, 1048575]: 3 bytes
//
// There is no framing between values; the value count must be stored
// alongside the payload (see the block package).
//
// An int32 column and an int64 column holding the same numbers produce
// identical bytes, because folding a 32-bit value at 64-bit width yields the
// same zigzag code.
type ZIntEncoder[T Signed] struct {
	buf   *pool.ByteBuffer
	count int
}

var (
	_ ColumnarEncoder[int32] = (*ZIntEncoder[int32])(nil)
	_ ColumnarEncoder[int64] = (*ZIntEncoder[int64])(nil)
)

// NewZIntEncoder creates a zigzag varint column encoder backed by a pooled buffer.
//
// Call Finish when done to return the buffer to the pool.
func NewZIntEncoder[T Signed]() *ZIntEncoder[T] {
	return &ZIntEncoder[T]{
		buf: pool.GetColumnBuffer(),
	}
}

// Write appends one value.
//
// Panics if Finish() has been called.
func (e *ZIntEncoder[T]) Write(value T) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.appendValue(value)
}

// WriteSlice appends all values.
//
// The buffer is grown once up front, assuming two bytes per value; larger
// values trigger further growth as needed.
//
// Panics if Finish() has been called.
func (e *ZIntEncoder[T]) WriteSlice(values []T) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if len(values) == 0 {
		return
	}

	e.count += len(values)
	e.buf.Grow(2*len(values) + MaxZLongLen)

	for _, v := range values {
		e.appendValue(v)
	}
}

func (e *ZIntEncoder[T]) appendValue(value T) {
	u := zigzag.Encode64(int64(value))
	if u < 0x80 {
		e.buf.B = append(e.buf.B, byte(u))
		return
	}

	e.buf.Grow(MaxZLongLen)
	e.buf.B = AppendUvarint64(e.buf.B, u)
}

// Bytes returns the encoded column.
//
// The returned slice references the internal buffer and is valid until the
// next Write, WriteSlice or Finish.
//
// Panics if Finish() has been called.
func (e *ZIntEncoder[T]) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of values written.
func (e *ZIntEncoder[T]) Len() int {
	return e.count
}

// Size returns the encoded size in bytes.
//
// Panics if Finish() has been called.
func (e *ZIntEncoder[T]) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset is a no-op for independent values.
func (e *ZIntEncoder[T]) Reset() {}

// Finish returns the internal buffer to the pool. The encoder is unusable afterwards.
func (e *ZIntEncoder[T]) Finish() {
	if e.buf != nil {
		pool.PutColumnBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// ZIntDecoder decodes columns produced by ZIntEncoder.
//
// The decoder is stateless and safe for concurrent use.
type ZIntDecoder[T Signed] struct{}

var (
	_ ColumnarDecoder[int32] = ZIntDecoder[int32]{}
	_ ColumnarDecoder[int64] = ZIntDecoder[int64]{}
)

// NewZIntDecoder creates a zigzag varint column decoder.
func NewZIntDecoder[T Signed]() ZIntDecoder[T] {
	return ZIntDecoder[T]{}
}

// All returns an iterator over the first count values of data.
//
// Iteration stops early if a value cannot be decoded. Use Decode to learn why.
func (d ZIntDecoder[T]) All(data []byte, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		c := NewCursor(data)
		for range count {
			v, err := readSigned[T](c)
			if err != nil {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// At returns the value at index by decoding every value before it.
func (d ZIntDecoder[T]) At(data []byte, index int, count int) (T, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	c := NewCursor(data)
	for range index {
		if _, err := readSigned[T](c); err != nil {
			return 0, false
		}
	}

	v, err := readSigned[T](c)
	if err != nil {
		return 0, false
	}

	return v, true
}

// Decode decodes exactly count values from data.
//
// Returns an error wrapping errs.ErrBufferExhausted or errs.ErrVarintOverflow
// with the index of the value that failed.
func (d ZIntDecoder[T]) Decode(data []byte, count int) ([]T, error) {
	if count <= 0 {
		return []T{}, nil
	}

	// every value takes at least one byte
	values := make([]T, 0, min(count, len(data)))
	c := NewCursor(data)
	for i := range count {
		v, err := readSigned[T](c)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d at offset %d", err, i, c.Offset())
		}
		values = append(values, v)
	}

	return values, nil
}

// readSigned reads one value at the width of T.
func readSigned[T Signed](c *Cursor) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int32:
		v, err := ReadZInt(c)
		return T(v), err
	default:
		v, err := ReadZLong(c)
		return T(v), err
	}
}
