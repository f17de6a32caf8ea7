package block

import (
	"fmt"
	"iter"

	"github.com/arloliu/zvarint/compress"
	"github.com/arloliu/zvarint/encoding"
	"github.com/arloliu/zvarint/errs"
	"github.com/arloliu/zvarint/internal/hash"
	"github.com/arloliu/zvarint/section"
)

// Block is an encoded, validated column of zigzag varint values.
//
// A Block is immutable and safe for concurrent reads.
type Block[T encoding.Signed] struct {
	header section.BlockHeader
	data   []byte // header followed by the stored payload
	raw    []byte // uncompressed varint column
}

// Decode parses and validates a block of values of type T.
//
// Decode checks, in order:
//   - the header (size, magic number, flags)
//   - that the stored width matches T (errs.ErrWidthMismatch)
//   - that data holds the whole stored payload (errs.ErrPayloadSizeMismatch)
//   - the checksum, when present (errs.ErrChecksumMismatch)
//   - the decompressed size (errs.ErrPayloadSizeMismatch)
//   - that exactly Count varints fill the raw column (errs.ErrValueCountMismatch)
//
// Bytes after the stored payload are ignored; Block.Bytes reports the exact
// extent of the block so consecutive blocks can be parsed from one buffer.
//
// The returned block references data when the payload is uncompressed.
func Decode[T encoding.Signed](data []byte) (*Block[T], error) {
	header, err := section.ParseBlockHeader(data)
	if err != nil {
		return nil, err
	}

	if want := widthOf[T](); header.Flag.Width != want {
		return nil, fmt.Errorf("%w: block holds %s, decoding as %s", errs.ErrWidthMismatch, header.Flag.Width, want)
	}

	if header.RawSize > section.MaxPayloadLength || header.PayloadSize > section.MaxPayloadLength {
		return nil, fmt.Errorf("%w: raw %d bytes, stored %d bytes",
			errs.ErrPayloadSizeMismatch, header.RawSize, header.PayloadSize)
	}

	end := section.PayloadOffset + int(header.PayloadSize)
	if len(data) < end {
		return nil, fmt.Errorf("%w: header declares %d payload bytes, %d available",
			errs.ErrPayloadSizeMismatch, header.PayloadSize, len(data)-section.PayloadOffset)
	}

	blk := &Block[T]{
		header: header,
		data:   data[:end:end],
	}
	payload := blk.payload()

	if header.Flag.HasChecksum() {
		if sum := hash.Checksum(payload); sum != header.Checksum {
			return nil, fmt.Errorf("%w: stored %#016x, computed %#016x", errs.ErrChecksumMismatch, header.Checksum, sum)
		}
	}

	codec, err := compress.GetCodec(header.Flag.Compression)
	if err != nil {
		return nil, err
	}

	raw, err := compress.DecompressSized(codec, payload, int(header.RawSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress block payload: %w", err)
	}

	if len(raw) != int(header.RawSize) {
		return nil, fmt.Errorf("%w: header declares %d raw bytes, decompressed %d",
			errs.ErrPayloadSizeMismatch, header.RawSize, len(raw))
	}
	blk.raw = raw

	if err := blk.validateColumn(); err != nil {
		return nil, err
	}

	return blk, nil
}

// ReadHeader parses and validates only the header at the start of data.
func ReadHeader(data []byte) (section.BlockHeader, error) {
	return section.ParseBlockHeader(data)
}

// validateColumn checks that the raw column holds exactly Count values.
func (b *Block[T]) validateColumn() error {
	c := encoding.NewCursor(b.raw)
	for i := range int(b.header.Count) {
		if err := skipValue[T](c); err != nil {
			return fmt.Errorf("%w: value %d at offset %d: %w", errs.ErrValueCountMismatch, i, c.Offset(), err)
		}
	}

	if c.Remaining() != 0 {
		return fmt.Errorf("%w: %d trailing bytes after %d values",
			errs.ErrValueCountMismatch, c.Remaining(), b.header.Count)
	}

	return nil
}

func skipValue[T encoding.Signed](c *encoding.Cursor) error {
	var zero T
	if _, ok := any(zero).(int32); ok {
		_, err := encoding.ReadZInt(c)
		return err
	}

	_, err := encoding.ReadZLong(c)

	return err
}

func (b *Block[T]) payload() []byte {
	return b.data[section.PayloadOffset:]
}

// Bytes returns the serialized block: header followed by the stored payload.
func (b *Block[T]) Bytes() []byte {
	return b.data
}

// Header returns a copy of the block header.
func (b *Block[T]) Header() section.BlockHeader {
	return b.header
}

// Len returns the number of values in the block.
func (b *Block[T]) Len() int {
	return int(b.header.Count)
}

// All returns an iterator over the values in order.
func (b *Block[T]) All() iter.Seq[T] {
	return encoding.NewZIntDecoder[T]().All(b.raw, b.Len())
}

// At returns the value at index.
//
// Values have variable length, so At decodes every value before index.
// Use All for sequential access.
func (b *Block[T]) At(index int) (T, bool) {
	return encoding.NewZIntDecoder[T]().At(b.raw, index, b.Len())
}

// Values decodes all values into a new slice.
func (b *Block[T]) Values() []T {
	values := make([]T, 0, b.Len())
	for v := range b.All() {
		values = append(values, v)
	}

	return values
}

// CompressionStats reports the raw and stored payload sizes.
func (b *Block[T]) CompressionStats() compress.CompressionStats {
	return compress.CompressionStats{
		Algorithm:      b.header.Flag.Compression,
		OriginalSize:   int64(b.header.RawSize),
		CompressedSize: int64(b.header.PayloadSize),
	}
}
