// Package zigzag folds signed integers onto unsigned integers of the same
// width so that values of small magnitude, of either sign, map to small codes:
//
//	0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3, 2 -> 4, ...
//
// All functions are total and wrap with two's complement arithmetic, so the
// minimum value of each width round-trips without overflow.
package zigzag

// Encode32 maps a signed 32-bit integer to its zigzag code.
func Encode32(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31)) //nolint:gosec
}

// Decode32 reverses Encode32.
func Decode32(u uint32) int32 {
	return int32((u >> 1) ^ -(u & 1)) //nolint:gosec
}

// Encode64 maps a signed 64-bit integer to its zigzag code.
func Encode64(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63)) //nolint:gosec
}

// Decode64 reverses Encode64.
func Decode64(u uint64) int64 {
	return int64((u >> 1) ^ -(u & 1)) //nolint:gosec
}
