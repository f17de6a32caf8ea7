package section

import (
	"fmt"

	"github.com/arloliu/zvarint/errs"
	"github.com/arloliu/zvarint/format"
)

// BlockFlag represents the packed flag fields at the start of the block header.
type BlockFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the checksum flag, 1 means the header carries a payload checksum.
	// Bits 1-3 are reserved for future use and must be 0.
	// Bits 4-15 are the magic number identifying the block format:
	//   - 0x5A10 (0b0101_1010_0001_0000): zigzag varint block v1
	Options uint16

	// Width is the integer width of the values in the block.
	Width format.Width

	// Compression is the compression applied to the payload.
	Compression format.CompressionType
}

var validCompressions = map[format.CompressionType]struct{}{
	format.CompressionNone: {},
	format.CompressionZstd: {},
	format.CompressionS2:   {},
	format.CompressionLZ4:  {},
}

// NewBlockFlag creates a BlockFlag for the given width with checksum enabled
// and no compression.
func NewBlockFlag(width format.Width) BlockFlag {
	flag := BlockFlag{
		Options:     MagicZIntV1,
		Width:       width,
		Compression: format.CompressionNone,
	}
	flag.WithChecksum()

	return flag
}

// HasChecksum returns whether the header carries a payload checksum.
func (f BlockFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// WithChecksum enables the payload checksum.
func (f *BlockFlag) WithChecksum() {
	f.Options |= ChecksumMask
}

// WithoutChecksum disables the payload checksum.
func (f *BlockFlag) WithoutChecksum() {
	f.Options &^= ChecksumMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f BlockFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f BlockFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicZIntV1
}

// Validate checks that the flag fields hold known values.
func (f BlockFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set in options 0x%04x", errs.ErrInvalidHeaderFlags, f.Options)
	}

	if f.Width != format.Width32 && f.Width != format.Width64 {
		return fmt.Errorf("%w: width %d", errs.ErrInvalidHeaderFlags, f.Width)
	}

	if _, ok := validCompressions[f.Compression]; !ok {
		return fmt.Errorf("%w: compression %d", errs.ErrInvalidHeaderFlags, f.Compression)
	}

	return nil
}
