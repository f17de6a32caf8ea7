package encoding

import "iter"

// ColumnarEncoder appends a sequence of values to an internal, pooled buffer.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice, or Finish.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the number of bytes written to the internal buffer.
	Size() int

	// Reset clears the encoder's sequence state but keeps the accumulated data,
	// so a new independent sequence can be appended to the same buffer.
	//
	// Len(), Size() and Bytes() are unchanged by Reset.
	Reset()

	// Finish returns the internal buffer to the pool.
	//
	// After Finish, Write, WriteSlice, Bytes and Size panic. Retrieve the data
	// with Bytes before calling Finish:
	//
	//	encoder := NewZIntEncoder[int64]()
	//	defer encoder.Finish()
	//
	//	encoder.Write(v)
	//	data := bytes.Clone(encoder.Bytes())
	Finish()

	// Write encodes a single value.
	Write(value T)

	// WriteSlice encodes a slice of values.
	WriteSlice(values []T)
}

// ColumnarDecoder reads values back from the payload produced by a ColumnarEncoder.
type ColumnarDecoder[T comparable] interface {
	// All returns an iterator over the values decoded from data.
	//
	// The iterator yields at most count values. It stops early, yielding fewer
	// values, if data is truncated or malformed.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at the zero-based index.
	//
	// The second return value is false if index is out of [0, count) or the
	// data ends or is malformed before index is reached.
	At(data []byte, index int, count int) (T, bool)
}
