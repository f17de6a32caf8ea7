// Package testutil provides deterministic input generators for tests and
// benchmarks.
package testutil

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// HashRand is a deterministic pseudo-random sequence built by chaining
// xxHash64 over the previous state and a step counter.
//
// It is not safe for concurrent use.
type HashRand struct {
	state uint64
	step  uint64
	buf   [16]byte
}

// NewHashRand creates a generator seeded with seed.
func NewHashRand(seed uint64) *HashRand {
	return &HashRand{state: seed}
}

// Uint64 returns the next 64 pseudo-random bits.
func (r *HashRand) Uint64() uint64 {
	binary.LittleEndian.PutUint64(r.buf[0:8], r.state)
	binary.LittleEndian.PutUint64(r.buf[8:16], r.step)
	r.step++
	r.state = xxhash.Sum64(r.buf[:])

	return r.state
}

// Int32 returns the next pseudo-random int32 covering the full range.
func (r *HashRand) Int32() int32 {
	return int32(uint32(r.Uint64())) //nolint:gosec
}

// Int64 returns the next pseudo-random int64 covering the full range.
func (r *HashRand) Int64() int64 {
	return int64(r.Uint64()) //nolint:gosec
}

// Int32s returns n pseudo-random int32 values.
func (r *HashRand) Int32s(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = r.Int32()
	}

	return out
}

// Int64s returns n pseudo-random int64 values.
func (r *HashRand) Int64s(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = r.Int64()
	}

	return out
}

// SmallInt64s returns n pseudo-random int64 values whose magnitude fits in
// bits bits, the typical shape of varint-friendly data.
func (r *HashRand) SmallInt64s(n int, bits uint) []int64 {
	out := make([]int64, n)
	for i := range out {
		v := int64(r.Uint64() >> (64 - bits)) //nolint:gosec
		if r.Uint64()&1 == 1 {
			v = -v
		}
		out[i] = v
	}

	return out
}
