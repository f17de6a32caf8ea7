// Package compress provides the general-purpose compression codecs that can be
// applied to a whole zigzag varint column inside a block.
//
// Varint encoding already removes the unused high bytes of small integers;
// compression on top pays off for columns with repeating patterns (constant
// steps, recurring codes) and costs CPU for columns of random values.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): pass-through, the block default
//   - Zstd (format.CompressionZstd): best ratio; pure Go klauspost/compress by
//     default, libzstd through valyala/gozstd with cgo and the gozstd build tag
//   - S2 (format.CompressionS2): fast with a good ratio, klauspost/compress/s2
//   - LZ4 (format.CompressionLZ4): fastest decompression, pierrec/lz4/v4
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(column)
//	...
//	column, err = compress.DecompressSized(codec, compressed, rawSize)
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool'ed coder state and are
// safe for concurrent use.
package compress
