package compress

// ZstdCompressor provides Zstandard compression.
//
// Zstd gives the best ratio of the built-in codecs and suits archived blocks.
// The pure Go klauspost/compress implementation is used by default; building
// with cgo and the gozstd tag switches to the libzstd binding from
// valyala/gozstd. Both produce standard zstd frames and can read each other's
// output.
type ZstdCompressor struct{}

var (
	_ Codec             = (*ZstdCompressor)(nil)
	_ SizedDecompressor = (*ZstdCompressor)(nil)
)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
