// Package endian provides the byte order engine used for fixed-width block
// header fields.
//
// zvarint has a single fixed byte order: varints are little-endian by
// construction, and block headers are written little-endian on every host.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, count)
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
