package block

import (
	"fmt"

	"github.com/arloliu/zvarint/format"
	"github.com/arloliu/zvarint/internal/options"
	"github.com/arloliu/zvarint/section"
)

// encoderConfig holds the settings applied by EncoderOption values.
type encoderConfig struct {
	compression format.CompressionType
	checksum    bool
	maxValues   int
}

func newEncoderConfig() *encoderConfig {
	return &encoderConfig{
		compression: format.CompressionNone,
		checksum:    true,
		maxValues:   section.MaxValueCount,
	}
}

// EncoderOption configures a block Encoder.
type EncoderOption = options.Option[*encoderConfig]

// WithCompression sets the compression applied to the encoded column.
//
// Default: format.CompressionNone.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = compression
			return nil
		default:
			return fmt.Errorf("invalid block compression: %v", compression)
		}
	})
}

// WithChecksum enables or disables the payload checksum.
//
// Default: enabled.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.checksum = enabled
	})
}

// WithMaxValues limits the number of values the encoder accepts.
//
// Default and upper bound: section.MaxValueCount.
func WithMaxValues(n int) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		if n <= 0 || n > section.MaxValueCount {
			return fmt.Errorf("max values must be in [1, %d], got %d", section.MaxValueCount, n)
		}
		c.maxValues = n

		return nil
	})
}
