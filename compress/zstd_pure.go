//go:build !cgo || !gozstd

package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/zvarint/errs"
)

// Decoders and encoders are reused across calls; klauspost/compress/zstd runs
// allocation-free after warmup when its coders are kept around.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// zstdSizedDecoderPool holds decoders that stop once the destination
// capacity is used up.
var zstdSizedDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
			zstd.WithDecodeAllCapLimit(true),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // blocks carry their own xxHash64 checksum
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress compresses the input data using Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}

// DecompressSized decompresses data into a buffer of capacity size and fails
// with errs.ErrPayloadSizeMismatch if the content does not fit.
func (c ZstdCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var header zstd.Header
	if err := header.Decode(data); err == nil && header.HasFCS && header.FrameContentSize != uint64(size) { //nolint:gosec
		return nil, fmt.Errorf("%w: zstd frame declares %d bytes, expected %d",
			errs.ErrPayloadSizeMismatch, header.FrameContentSize, size)
	}

	decoder, _ := zstdSizedDecoderPool.Get().(*zstd.Decoder)
	defer zstdSizedDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, make([]byte, 0, size))
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
			return nil, fmt.Errorf("%w: zstd content exceeds %d bytes", errs.ErrPayloadSizeMismatch, size)
		}

		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
