package format

type (
	Width           uint8
	CompressionType uint8
)

const (
	Width32 Width = 0x1 // Width32 represents a column of int32 values.
	Width64 Width = 0x2 // Width64 represents a column of int64 values.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (w Width) String() string {
	switch w {
	case Width32:
		return "Int32"
	case Width64:
		return "Int64"
	default:
		return "Unknown"
	}
}

// Bits returns the number of bits of the width, or 0 for an unknown width.
func (w Width) Bits() int {
	switch w {
	case Width32:
		return 32
	case Width64:
		return 64
	default:
		return 0
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
