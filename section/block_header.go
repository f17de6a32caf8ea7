package section

import (
	"github.com/arloliu/zvarint/endian"
	"github.com/arloliu/zvarint/errs"
	"github.com/arloliu/zvarint/format"
)

// BlockHeader represents the fixed-size header at the start of a block.
type BlockHeader struct {
	// Count is the number of values in the payload.
	Count uint32 // byte offset 4-7
	// RawSize is the size of the varint column before compression.
	RawSize uint32 // byte offset 8-11
	// PayloadSize is the size of the stored, possibly compressed, payload.
	PayloadSize uint32 // byte offset 12-15
	// Checksum is the xxHash64 of the stored payload, zero when disabled.
	Checksum uint64 // byte offset 16-23

	// Flag holds the magic number, options, width and compression.
	Flag BlockFlag // byte offset 0-3
}

// NewBlockHeader creates a BlockHeader for the given width.
// Count, sizes and checksum are filled in when the encoder finishes.
func NewBlockHeader(width format.Width) *BlockHeader {
	return &BlockHeader{
		Flag: NewBlockFlag(width),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not HeaderSize bytes, or flag validation errors
func (h *BlockHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h.Flag.Options = engine.Uint16(data[0:2])
	h.Flag.Width = format.Width(data[2])
	h.Flag.Compression = format.CompressionType(data[3])
	h.Count = engine.Uint32(data[4:8])
	h.RawSize = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h.Flag.Validate()
}

// Bytes serializes the header into a new byte slice.
func (h *BlockHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *BlockHeader) AppendTo(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = engine.AppendUint16(dst, h.Flag.Options)
	dst = append(dst, byte(h.Flag.Width), byte(h.Flag.Compression))
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, h.RawSize)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// ParseBlockHeader parses a BlockHeader from the start of data.
//
// Parameters:
//   - data: Byte slice starting with a header (must be at least HeaderSize bytes)
//
// Returns:
//   - BlockHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseBlockHeader(data []byte) (BlockHeader, error) {
	if len(data) < HeaderSize {
		return BlockHeader{}, errs.ErrInvalidHeaderSize
	}

	h := BlockHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return BlockHeader{}, err
	}

	return h, nil
}
