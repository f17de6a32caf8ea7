package block

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/zvarint/errs"
	"github.com/arloliu/zvarint/format"
	"github.com/arloliu/zvarint/internal/hash"
	"github.com/arloliu/zvarint/section"
)

func TestNewEncoder_Defaults(t *testing.T) {
	enc, err := NewEncoder[int64]()
	require.NoError(t, err)
	require.Equal(t, 0, enc.Len())

	blk, err := enc.Finish()
	require.NoError(t, err)

	header := blk.Header()
	require.Equal(t, format.Width64, header.Flag.Width)
	require.Equal(t, format.CompressionNone, header.Flag.Compression)
	require.True(t, header.Flag.HasChecksum())
	require.Len(t, blk.Bytes(), section.HeaderSize)
}

func TestNewEncoder_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  EncoderOption
	}{
		{"zero max values", WithMaxValues(0)},
		{"negative max values", WithMaxValues(-1)},
		{"unknown compression", WithCompression(format.CompressionType(0x9))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := NewEncoder[int32](tt.opt)
			require.Error(t, err)
			require.Nil(t, enc)
		})
	}
}

func TestEncoder_HeaderFields(t *testing.T) {
	values := []int32{0, -1, 1, 64, -8193}

	enc, err := NewEncoder[int32]()
	require.NoError(t, err)
	require.NoError(t, enc.AppendSlice(values))
	require.Equal(t, 5, enc.Len())

	blk, err := enc.Finish()
	require.NoError(t, err)

	column := []byte{0x00, 0x01, 0x02, 0x80, 0x01, 0x81, 0x80, 0x01}
	header := blk.Header()
	require.Equal(t, format.Width32, header.Flag.Width)
	require.Equal(t, uint32(5), header.Count)
	require.Equal(t, uint32(len(column)), header.RawSize)
	require.Equal(t, uint32(len(column)), header.PayloadSize)
	require.Equal(t, hash.Checksum(column), header.Checksum)
	require.Equal(t, column, blk.Bytes()[section.PayloadOffset:])
}

func TestEncoder_WithoutChecksum(t *testing.T) {
	enc, err := NewEncoder[int64](WithChecksum(false))
	require.NoError(t, err)
	require.NoError(t, enc.Append(42))

	blk, err := enc.Finish()
	require.NoError(t, err)
	require.False(t, blk.Header().Flag.HasChecksum())
	require.Zero(t, blk.Header().Checksum)

	decoded, err := Decode[int64](blk.Bytes())
	require.NoError(t, err)
	require.Equal(t, []int64{42}, decoded.Values())
}

func TestEncoder_MaxValues(t *testing.T) {
	t.Run("Append", func(t *testing.T) {
		enc, err := NewEncoder[int64](WithMaxValues(3))
		require.NoError(t, err)

		for i := range 3 {
			require.NoError(t, enc.Append(int64(i)))
		}
		require.ErrorIs(t, enc.Append(3), errs.ErrTooManyValues)
		require.Equal(t, 3, enc.Len())
	})

	t.Run("AppendSlice is all or nothing", func(t *testing.T) {
		enc, err := NewEncoder[int64](WithMaxValues(3))
		require.NoError(t, err)

		require.NoError(t, enc.Append(1))
		require.ErrorIs(t, enc.AppendSlice([]int64{2, 3, 4}), errs.ErrTooManyValues)
		require.Equal(t, 1, enc.Len())

		require.NoError(t, enc.AppendSlice([]int64{2, 3}))
		blk, err := enc.Finish()
		require.NoError(t, err)
		require.Equal(t, []int64{1, 2, 3}, blk.Values())
	})
}

func TestEncoder_UnusableAfterFinish(t *testing.T) {
	enc, err := NewEncoder[int32]()
	require.NoError(t, err)
	require.NoError(t, enc.Append(1))

	_, err = enc.Finish()
	require.NoError(t, err)

	require.Panics(t, func() { _ = enc.Append(2) })
	require.Panics(t, func() { _, _ = enc.Finish() })
}

func TestEncoder_Int32AndInt64ShareColumn(t *testing.T) {
	values := []int32{7, -7, 1 << 20, -(1 << 30)}
	wide := []int64{7, -7, 1 << 20, -(1 << 30)}

	narrowEnc, err := NewEncoder[int32]()
	require.NoError(t, err)
	require.NoError(t, narrowEnc.AppendSlice(values))
	narrow, err := narrowEnc.Finish()
	require.NoError(t, err)

	broadEnc, err := NewEncoder[int64]()
	require.NoError(t, err)
	require.NoError(t, broadEnc.AppendSlice(wide))
	broad, err := broadEnc.Finish()
	require.NoError(t, err)

	require.Equal(t, narrow.Bytes()[section.PayloadOffset:], broad.Bytes()[section.PayloadOffset:])
	require.NotEqual(t, narrow.Bytes()[2], broad.Bytes()[2], "width byte differs")
}
