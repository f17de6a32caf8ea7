package pool

import (
	"io"
	"sync"
)

// Default sizes of the buffers handed out by the package-level pools.
const (
	ColumnBufferDefaultSize  = 1024 * 4    // 4KiB, ~4k small values
	ColumnBufferMaxThreshold = 1024 * 128  // 128KiB
	BlockBufferDefaultSize   = 1024 * 16   // 16KiB
	BlockBufferMaxThreshold  = 1024 * 1024 // 1MiB
)

// ByteBuffer is a growable byte slice that can be recycled through a ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can take requiredBytes more bytes without reallocating.
//
// Small buffers grow by ColumnBufferDefaultSize at a time; once the capacity
// passes four times that, growth switches to 25% of the current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ColumnBufferDefaultSize
	if cap(bb.B) > 4*ColumnBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool recycles ByteBuffers through a sync.Pool.
//
// Buffers whose capacity grew beyond maxThreshold are dropped on Put instead
// of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize capacity.
// A maxThreshold of zero or less keeps buffers of any size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool. Nil buffers are ignored.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	columnDefaultPool = NewByteBufferPool(ColumnBufferDefaultSize, ColumnBufferMaxThreshold)
	blockDefaultPool  = NewByteBufferPool(BlockBufferDefaultSize, BlockBufferMaxThreshold)
)

// GetColumnBuffer retrieves a buffer for a column encoder.
func GetColumnBuffer() *ByteBuffer {
	return columnDefaultPool.Get()
}

// PutColumnBuffer returns a column encoder buffer to the pool.
func PutColumnBuffer(bb *ByteBuffer) {
	columnDefaultPool.Put(bb)
}

// GetBlockBuffer retrieves a buffer for assembling a block.
func GetBlockBuffer() *ByteBuffer {
	return blockDefaultPool.Get()
}

// PutBlockBuffer returns a block buffer to the pool.
func PutBlockBuffer(bb *ByteBuffer) {
	blockDefaultPool.Put(bb)
}
