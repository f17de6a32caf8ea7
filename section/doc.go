// Package section defines the binary layout of the zvarint block header.
//
// A block is a fixed-size header followed by one payload holding a zigzag
// varint column, optionally compressed:
//
//	┌──────────────────────────────────────────────────────┐
//	│ Header (24 bytes, little-endian)                     │
//	│  0-1   Options: magic (bits 4-15), checksum (bit 0)  │
//	│  2     Width: format.Width32 / format.Width64        │
//	│  3     Compression: format.CompressionType           │
//	│  4-7   Count: number of values                       │
//	│  8-11  RawSize: payload size before compression      │
//	│  12-15 PayloadSize: stored payload size              │
//	│  16-23 Checksum: xxHash64 of the stored payload      │
//	├──────────────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes)                          │
//	└──────────────────────────────────────────────────────┘
//
// Header fields are always little-endian; there is no byte order flag.
package section
