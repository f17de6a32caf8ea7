// Package encoding implements zigzag varint encoding of 32-bit and 64-bit
// signed integers, and columnar codecs built on it.
//
// # Wire Format
//
// A value is first folded onto an unsigned integer of the same width with the
// zigzag transform (0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3, ...), then written as a
// base-128 varint: 7 payload bits per byte, least significant group first,
// with the high bit of each byte set when more bytes follow.
//
//	value   zigzag   bytes
//	0       0        00
//	-1      1        01
//	1       2        02
//	-64     127      7F
//	64      128      80 01
//	-8193   16385    81 80 01
//
// An int32 takes 1 to MaxZIntLen (5) bytes, an int64 1 to MaxZLongLen (10)
// bytes. The format is byte-compatible with protobuf sint32 and sint64.
//
// # Single Values
//
// Encoding writes into caller-provided storage and cannot fail:
//
//	var buf [encoding.MaxZLongLen]byte
//	n := encoding.PutZLong(buf[:], -300)
//
// Decoding reads through a Cursor so calls can be chained over one buffer:
//
//	c := encoding.NewCursor(data)
//	for c.Remaining() > 0 {
//	    v, err := encoding.ReadZLong(c)
//	    if err != nil {
//	        return err
//	    }
//	    // use v
//	}
//
// A decode fails with errs.ErrBufferExhausted when the buffer ends inside a
// varint (the cursor is then left with zero bytes remaining), and with
// errs.ErrVarintOverflow when the varint does not fit the target width (the
// cursor is left unchanged). The returned value is meaningless on error.
//
// # Columns
//
// ZIntEncoder and ZIntDecoder implement ColumnarEncoder and ColumnarDecoder
// for int32 and int64 columns. ZIntDeltaEncoder and ZIntDeltaDecoder store
// zigzag deltas between consecutive int64 values, which suits sorted data.
//
//	enc := encoding.NewZIntEncoder[int32]()
//	defer enc.Finish()
//	enc.WriteSlice([]int32{3, -1, 0, 42})
//
//	dec := encoding.NewZIntDecoder[int32]()
//	for v := range dec.All(enc.Bytes(), enc.Len()) {
//	    fmt.Println(v)
//	}
//
// # Thread Safety
//
// The single-value functions and decoders are stateless and safe for
// concurrent use on disjoint cursors. Encoders and Cursor are not safe for
// concurrent use.
package encoding
