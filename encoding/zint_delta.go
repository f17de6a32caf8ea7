package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/zvarint/internal/pool"
	"github.com/arloliu/zvarint/internal/zigzag"
)

// ZIntDeltaEncoder encodes a column of int64 values as zigzag varint deltas.
//
// The first value of a sequence is stored as a zigzag varint of itself, every
// following value as a zigzag varint of its difference from the previous one.
// Sorted or slowly changing sequences (counters, offsets, timestamps) shrink
// to one or two bytes per value regardless of their absolute magnitude.
//
// Differences wrap with two's complement arithmetic, so any sequence of int64
// values round-trips, including jumps between math.MinInt64 and math.MaxInt64.
type ZIntDeltaEncoder struct {
	prev     int64
	buf      *pool.ByteBuffer
	count    int
	seqCount int
}

var _ ColumnarEncoder[int64] = (*ZIntDeltaEncoder)(nil)

// NewZIntDeltaEncoder creates a delta zigzag varint column encoder backed by a pooled buffer.
func NewZIntDeltaEncoder() *ZIntDeltaEncoder {
	return &ZIntDeltaEncoder{
		buf: pool.GetColumnBuffer(),
	}
}

// Write appends one value.
//
// Panics if Finish() has been called.
func (e *ZIntDeltaEncoder) Write(value int64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.seqCount++

	delta := value
	if e.seqCount > 1 {
		delta = value - e.prev
	}
	e.prev = value

	e.appendUnsigned(zigzag.Encode64(delta))
}

// WriteSlice appends all values.
//
// Panics if Finish() has been called.
func (e *ZIntDeltaEncoder) WriteSlice(values []int64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if len(values) == 0 {
		return
	}

	e.buf.Grow(2*len(values) + MaxZLongLen)

	prev := e.prev
	startIdx := 0
	if e.seqCount == 0 {
		prev = values[0]
		e.appendUnsigned(zigzag.Encode64(prev))
		startIdx = 1
	}

	for _, v := range values[startIdx:] {
		e.appendUnsigned(zigzag.Encode64(v - prev))
		prev = v
	}

	e.prev = prev
	e.count += len(values)
	e.seqCount += len(values)
}

func (e *ZIntDeltaEncoder) appendUnsigned(u uint64) {
	if u < 0x80 {
		e.buf.B = append(e.buf.B, byte(u))
		return
	}

	e.buf.Grow(MaxZLongLen)
	e.buf.B = AppendUvarint64(e.buf.B, u)
}

// Bytes returns the encoded column.
//
// Panics if Finish() has been called.
func (e *ZIntDeltaEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of values written.
func (e *ZIntDeltaEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes.
//
// Panics if Finish() has been called.
func (e *ZIntDeltaEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset starts a new delta sequence: the next value is stored in full.
// Accumulated data is kept.
func (e *ZIntDeltaEncoder) Reset() {
	e.prev = 0
	e.seqCount = 0
}

// Finish returns the internal buffer to the pool. The encoder is unusable afterwards.
func (e *ZIntDeltaEncoder) Finish() {
	if e.buf != nil {
		pool.PutColumnBuffer(e.buf)
		e.buf = nil
	}
	e.prev = 0
	e.count = 0
	e.seqCount = 0
}

// ZIntDeltaDecoder decodes a single delta sequence produced by ZIntDeltaEncoder.
//
// The decoder is stateless and safe for concurrent use.
type ZIntDeltaDecoder struct{}

var _ ColumnarDecoder[int64] = ZIntDeltaDecoder{}

// NewZIntDeltaDecoder creates a delta zigzag varint column decoder.
func NewZIntDeltaDecoder() ZIntDeltaDecoder {
	return ZIntDeltaDecoder{}
}

// All returns an iterator over the first count values of data.
//
// Iteration stops early if a delta cannot be decoded.
func (d ZIntDeltaDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		c := NewCursor(data)
		var cur int64
		for range count {
			delta, err := ReadZLong(c)
			if err != nil {
				return
			}
			cur += delta

			if !yield(cur) {
				return
			}
		}
	}
}

// At returns the value at index by summing every delta up to it.
func (d ZIntDeltaDecoder) At(data []byte, index int, count int) (int64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	c := NewCursor(data)
	var cur int64
	for i := 0; i <= index; i++ {
		delta, err := ReadZLong(c)
		if err != nil {
			return 0, false
		}
		cur += delta
	}

	return cur, true
}

// Decode decodes exactly count values from data.
func (d ZIntDeltaDecoder) Decode(data []byte, count int) ([]int64, error) {
	if count <= 0 {
		return []int64{}, nil
	}

	values := make([]int64, 0, min(count, len(data)))
	c := NewCursor(data)
	var cur int64
	for i := range count {
		delta, err := ReadZLong(c)
		if err != nil {
			return nil, fmt.Errorf("%w: delta %d at offset %d", err, i, c.Offset())
		}
		cur += delta
		values = append(values, cur)
	}

	return values, nil
}
