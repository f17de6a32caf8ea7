package block

import (
	"fmt"

	"github.com/arloliu/zvarint/compress"
	"github.com/arloliu/zvarint/encoding"
	"github.com/arloliu/zvarint/errs"
	"github.com/arloliu/zvarint/format"
	"github.com/arloliu/zvarint/internal/hash"
	"github.com/arloliu/zvarint/internal/options"
	"github.com/arloliu/zvarint/internal/pool"
	"github.com/arloliu/zvarint/section"
)

// Encoder accumulates values of type T and produces a single Block.
//
// An Encoder is not safe for concurrent use. It can produce one block; create
// a new Encoder for the next one.
type Encoder[T encoding.Signed] struct {
	cfg    *encoderConfig
	column *encoding.ZIntEncoder[T]
	codec  compress.Codec
}

// NewEncoder creates a block encoder for values of type T.
//
// Returns an error if any option is invalid.
func NewEncoder[T encoding.Signed](opts ...EncoderOption) (*Encoder[T], error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, "block")
	if err != nil {
		return nil, err
	}

	return &Encoder[T]{
		cfg:    cfg,
		column: encoding.NewZIntEncoder[T](),
		codec:  codec,
	}, nil
}

// Append adds one value to the block.
//
// Returns errs.ErrTooManyValues if the configured maximum is reached.
// Panics if Finish() has been called.
func (e *Encoder[T]) Append(value T) error {
	if e.column.Len() >= e.cfg.maxValues {
		return fmt.Errorf("%w: limit is %d", errs.ErrTooManyValues, e.cfg.maxValues)
	}

	e.column.Write(value)

	return nil
}

// AppendSlice adds all values to the block. Either all values are added or,
// on error, none are.
//
// Panics if Finish() has been called.
func (e *Encoder[T]) AppendSlice(values []T) error {
	if len(values) > e.cfg.maxValues-e.column.Len() {
		return fmt.Errorf("%w: %d values would exceed limit %d",
			errs.ErrTooManyValues, e.column.Len()+len(values), e.cfg.maxValues)
	}

	e.column.WriteSlice(values)

	return nil
}

// Len returns the number of values appended so far.
func (e *Encoder[T]) Len() int {
	return e.column.Len()
}

// Finish compresses the column, writes the header and returns the block.
//
// The encoder releases its buffers and cannot be used afterwards, even if
// Finish returns an error.
func (e *Encoder[T]) Finish() (*Block[T], error) {
	defer e.column.Finish()

	raw := e.column.Bytes()
	payload, err := e.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to compress block payload: %w", err)
	}

	if len(raw) > section.MaxPayloadLength || len(payload) > section.MaxPayloadLength {
		return nil, fmt.Errorf("%w: raw %d bytes, stored %d bytes",
			errs.ErrPayloadSizeMismatch, len(raw), len(payload))
	}

	header := section.NewBlockHeader(widthOf[T]())
	header.Flag.Compression = e.cfg.compression
	header.Count = uint32(e.column.Len())     //nolint:gosec
	header.RawSize = uint32(len(raw))         //nolint:gosec
	header.PayloadSize = uint32(len(payload)) //nolint:gosec
	if e.cfg.checksum {
		header.Checksum = hash.Checksum(payload)
	} else {
		header.Flag.WithoutChecksum()
	}

	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	buf.Grow(section.HeaderSize + len(payload))
	buf.B = header.AppendTo(buf.B)
	buf.B = append(buf.B, payload...)

	data := make([]byte, buf.Len())
	copy(data, buf.B)

	blk := &Block[T]{
		header: *header,
		data:   data,
	}

	// an uncompressed payload doubles as the raw column
	if e.cfg.compression == format.CompressionNone {
		blk.raw = blk.payload()
	} else {
		blk.raw = append([]byte(nil), raw...)
	}

	return blk, nil
}

// widthOf returns the stored width of T.
func widthOf[T encoding.Signed]() format.Width {
	var zero T
	if _, ok := any(zero).(int32); ok {
		return format.Width32
	}

	return format.Width64
}
