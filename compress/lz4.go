package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/zvarint/errs"
)

// lz4CompressorPool reuses lz4.Compressor hash tables between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// maxLZ4DecompressedSize bounds the buffer grown by Decompress when the
// decoded size is not known.
const maxLZ4DecompressedSize = 128 * 1024 * 1024

// maxLZ4Ratio bounds the expansion of an LZ4 block: one match-length byte
// adds at most 255 output bytes.
const maxLZ4Ratio = 255

// LZ4Compressor provides LZ4 block compression.
//
// LZ4 blocks do not record their decoded length. Decompress guesses and
// retries with a larger buffer; DecompressSized uses the size stored in the
// block header instead.
type LZ4Compressor struct{}

var (
	_ Codec             = (*LZ4Compressor)(nil)
	_ SizedDecompressor = (*LZ4Compressor)(nil)
)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using LZ4 compression.
//
// Returns nil for an empty input.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decompresses the input data using LZ4 decompression.
//
// The output buffer starts at 4x the input size and doubles on
// lz4.ErrInvalidSourceShortBuffer, up to 128MiB.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	for bufSize <= maxLZ4DecompressedSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxLZ4DecompressedSize {
				bufSize *= 2
				continue
			}

			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

// DecompressSized decompresses data whose decoded length is known to be size.
func (c LZ4Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}

	if size > len(data)*maxLZ4Ratio {
		return nil, fmt.Errorf("%w: %d bytes cannot expand to %d", errs.ErrPayloadSizeMismatch, len(data), size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return buf[:n], nil
}
