package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(ColumnBufferDefaultSize)
	bb.B = append(bb.B, 0x01, 0x02, 0x03)
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(ColumnBufferDefaultSize)

	n, err := bb.Write([]byte{0x80, 0x01})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = bb.Write([]byte{0x00})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, []byte{0x80, 0x01, 0x00}, bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(ColumnBufferDefaultSize)
	bb.B = append(bb.B, []byte("varints")...)

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "varints", buf.String())
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(ColumnBufferDefaultSize)
	bb.B = append(bb.B, []byte("test")...)

	n, err := bb.WriteTo(&errorWriter{err: io.ErrShortWrite})

	require.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, int64(0), n)
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(ColumnBufferDefaultSize)
		originalCap := bb.Cap()

		bb.Grow(100)

		assert.Equal(t, originalCap, bb.Cap(), "should not reallocate when capacity is sufficient")
	})

	t.Run("small buffer", func(t *testing.T) {
		bb := NewByteBuffer(ColumnBufferDefaultSize)
		bb.B = append(bb.B, make([]byte, ColumnBufferDefaultSize)...)

		bb.Grow(10)

		assert.GreaterOrEqual(t, bb.Cap(), 2*ColumnBufferDefaultSize, "small buffers grow by the default size")
		assert.Equal(t, ColumnBufferDefaultSize, bb.Len(), "length should not change")
	})

	t.Run("large buffer", func(t *testing.T) {
		bb := NewByteBuffer(ColumnBufferDefaultSize)
		largeSize := 8 * ColumnBufferDefaultSize
		bb.B = make([]byte, largeSize)

		bb.Grow(1)

		assert.GreaterOrEqual(t, bb.Cap(), largeSize+largeSize/4, "large buffers grow by 25%")
	})

	t.Run("more than default growth", func(t *testing.T) {
		bb := NewByteBuffer(ColumnBufferDefaultSize)
		huge := ColumnBufferDefaultSize * 10

		bb.Grow(huge)

		assert.GreaterOrEqual(t, bb.Cap()-bb.Len(), huge)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(8)
		data := []byte{0xAC, 0x02, 0x96, 0x01, 0x00}
		bb.B = append(bb.B, data...)

		bb.Grow(ColumnBufferDefaultSize * 2)

		assert.Equal(t, data, bb.Bytes(), "data should be preserved after growth")
	})
}

// =============================================================================
// Pool Tests
// =============================================================================

func TestGetColumnBuffer(t *testing.T) {
	bb := GetColumnBuffer()
	defer PutColumnBuffer(bb)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "pooled buffer should be empty")
	assert.GreaterOrEqual(t, bb.Cap(), ColumnBufferDefaultSize)
}

func TestGetBlockBuffer(t *testing.T) {
	bb := GetBlockBuffer()
	defer PutBlockBuffer(bb)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "pooled buffer should be empty")
	assert.GreaterOrEqual(t, bb.Cap(), BlockBufferDefaultSize)
}

func TestPut_NilBuffer(t *testing.T) {
	assert.NotPanics(t, func() {
		PutColumnBuffer(nil)
		PutBlockBuffer(nil)
	})
}

func TestPool_ResetsData(t *testing.T) {
	bb := GetColumnBuffer()
	bb.B = append(bb.B, 0xFF, 0xFF)

	PutColumnBuffer(bb)

	assert.Equal(t, 0, bb.Len(), "Put should reset the buffer")
	bb2 := GetColumnBuffer()
	assert.Equal(t, 0, bb2.Len(), "buffer should be empty after retrieval from pool")
	PutColumnBuffer(bb2)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 50
	const numIterations = 500

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for range numGoroutines {
		go func() {
			defer wg.Done()
			for range numIterations {
				bb := GetColumnBuffer()
				_, _ = bb.Write([]byte{0x01, 0x02, 0x03, 0x04})
				assert.Equal(t, 4, bb.Len())
				PutColumnBuffer(bb)
			}
		}()
	}

	wg.Wait()
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	t.Run("discards oversized buffers", func(t *testing.T) {
		pool := NewByteBufferPool(1024, 4096)

		bb := pool.Get()
		bb.Grow(10000)
		require.Greater(t, bb.Cap(), 4096)

		pool.Put(bb)

		bb2 := pool.Get()
		assert.LessOrEqual(t, bb2.Cap(), 4096, "should not reuse buffer larger than threshold")
	})

	t.Run("zero threshold keeps everything", func(t *testing.T) {
		pool := NewByteBufferPool(1024, 0)

		bb := pool.Get()
		bb.Grow(1 << 20)

		assert.NotPanics(t, func() { pool.Put(bb) })
	})
}

type errorWriter struct {
	err error
}

func (w *errorWriter) Write([]byte) (int, error) {
	return 0, w.err
}
