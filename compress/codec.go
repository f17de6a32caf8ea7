package compress

import (
	"fmt"

	"github.com/arloliu/zvarint/format"
)

// Compressor compresses an encoded varint column.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// The input is not modified. Implementations other than NoOpCompressor
	// return a newly allocated slice owned by the caller.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
type Decompressor interface {
	// Decompress returns the original data.
	//
	// Returns an error if data is corrupted or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes the effect of compressing one payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 for an empty input.
//
// Values below 1.0 mean the payload shrank.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage; negative values mean the payload grew.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a new Codec for the compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// SizedDecompressor is implemented by codecs that decompress more efficiently
// when the decoded length is known in advance.
type SizedDecompressor interface {
	DecompressSized(data []byte, size int) ([]byte, error)
}

// DecompressSized decompresses data with codec, passing the expected decoded
// size to codecs that can use it.
func DecompressSized(codec Decompressor, data []byte, size int) ([]byte, error) {
	if sd, ok := codec.(SizedDecompressor); ok {
		return sd.DecompressSized(data, size)
	}

	return codec.Decompress(data)
}
