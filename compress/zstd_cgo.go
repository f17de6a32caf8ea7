//go:build cgo && gozstd

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/valyala/gozstd"

	"github.com/arloliu/zvarint/errs"
)

// zstdLevel matches zstd.SpeedDefault of the pure Go implementation.
const zstdLevel = 3

// Compress compresses the input data using Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses Zstd-compressed data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}

// DecompressSized streams data through a gozstd reader and reads at most
// size+1 bytes, failing with errs.ErrPayloadSizeMismatch if the content is
// larger than size.
func (c ZstdCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	buf := bytes.NewBuffer(make([]byte, 0, size))
	if _, err := buf.ReadFrom(io.LimitReader(zr, int64(size)+1)); err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if buf.Len() > size {
		return nil, fmt.Errorf("%w: zstd content exceeds %d bytes", errs.ErrPayloadSizeMismatch, size)
	}

	return buf.Bytes(), nil
}
