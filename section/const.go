package section

import "math"

const (
	// Bit masks of BlockFlag.Options
	ChecksumMask     = 0x0001 // Mask for checksum bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3), must be zero
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicZIntV1 identifies version 1 of the zigzag varint block format.
	MagicZIntV1 = 0x5A10
)

// offsets and sizes in the block
const (
	HeaderSize       = 24            // fixed header size in bytes
	PayloadOffset    = HeaderSize    // byte offset where the payload starts
	MaxValueCount    = math.MaxInt32 // maximum number of values in one block
	MaxPayloadLength = math.MaxInt32 // maximum raw or stored payload size in bytes
)
