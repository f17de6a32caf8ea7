// Package errs defines the sentinel errors returned by zvarint.
//
// Callers should compare with errors.Is, since most call sites wrap these
// values with additional context.
package errs

import "errors"

// Varint decoding errors.
var (
	// ErrBufferExhausted is returned when the cursor runs out of bytes before a
	// terminating varint byte (high bit clear) is found, including a read that
	// starts with zero bytes remaining.
	ErrBufferExhausted = errors.New("buffer exhausted before end of varint")

	// ErrVarintOverflow is returned when a varint needs more bytes than the
	// target width allows, or its final byte carries bits beyond the width.
	ErrVarintOverflow = errors.New("varint overflows target width")
)

// Block container errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid header size")
	ErrInvalidMagicNumber  = errors.New("invalid magic number")
	ErrInvalidHeaderFlags  = errors.New("invalid header flags")
	ErrChecksumMismatch    = errors.New("payload checksum mismatch")
	ErrPayloadSizeMismatch = errors.New("payload size mismatch")
	ErrValueCountMismatch  = errors.New("value count mismatch")
	ErrWidthMismatch       = errors.New("integer width mismatch")
	ErrTooManyValues       = errors.New("too many values")
)
