package compress

// NoOpCompressor passes data through unchanged.
//
// It is the default for blocks: varint columns of small values are already
// dense and often do not shrink further.
type NoOpCompressor struct{}

var (
	_ Codec             = (*NoOpCompressor)(nil)
	_ SizedDecompressor = (*NoOpCompressor)(nil)
)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is; the result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is; the result shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressSized returns data as-is.
func (c NoOpCompressor) DecompressSized(data []byte, _ int) ([]byte, error) {
	return data, nil
}
