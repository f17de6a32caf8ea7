// Package block packs a column of zigzag varint integers into a
// self-describing byte block.
//
// A block is a 24-byte header (see package section) followed by the encoded
// column, optionally compressed with one of the codecs of package compress.
// The header records the integer width, the value count, the raw and stored
// payload sizes, and an xxHash64 checksum of the stored payload.
//
// # Encoding
//
//	enc, err := block.NewEncoder[int64](
//	    block.WithCompression(format.CompressionS2),
//	)
//	if err != nil {
//	    return err
//	}
//	_ = enc.AppendSlice(values)
//	blk, err := enc.Finish()
//	if err != nil {
//	    return err
//	}
//	data := blk.Bytes()
//
// # Decoding
//
// Decode validates the header, checksum, sizes and every varint before
// returning, so iterating a decoded block cannot fail:
//
//	blk, err := block.Decode[int64](data)
//	if err != nil {
//	    return err
//	}
//	for v := range blk.All() {
//	    // use v
//	}
//
// ReadHeader inspects a block without decoding it, for example to pick the
// type parameter from the stored width.
package block
