package encoding

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/zvarint/errs"
	"github.com/arloliu/zvarint/internal/testutil"
)

// === ZIntEncoder Tests ===

func TestZIntEncoder_NewEncoder(t *testing.T) {
	encoder := NewZIntEncoder[int64]()
	defer encoder.Finish()

	require.NotNil(t, encoder)
	require.Equal(t, 0, encoder.Len())
	require.Equal(t, 0, encoder.Size())
	require.Empty(t, encoder.Bytes())
}

func TestZIntEncoder_Write(t *testing.T) {
	encoder := NewZIntEncoder[int32]()
	defer encoder.Finish()

	encoder.Write(0)
	encoder.Write(-1)
	encoder.Write(64)

	require.Equal(t, 3, encoder.Len())
	require.Equal(t, []byte{0x00, 0x01, 0x80, 0x01}, encoder.Bytes())
	require.Equal(t, 4, encoder.Size())
}

func TestZIntEncoder_WriteSlice_EmptySlice(t *testing.T) {
	encoder := NewZIntEncoder[int64]()
	defer encoder.Finish()

	encoder.WriteSlice(nil)
	encoder.WriteSlice([]int64{})

	require.Equal(t, 0, encoder.Len())
	require.Equal(t, 0, encoder.Size())
}

func TestZIntEncoder_WriteVsWriteSlice(t *testing.T) {
	values := testutil.NewHashRand(10).SmallInt64s(500, 20)

	single := NewZIntEncoder[int64]()
	defer single.Finish()
	for _, v := range values {
		single.Write(v)
	}

	bulk := NewZIntEncoder[int64]()
	defer bulk.Finish()
	bulk.WriteSlice(values)

	require.Equal(t, single.Bytes(), bulk.Bytes())
	require.Equal(t, single.Len(), bulk.Len())
}

func TestZIntEncoder_Int32AndInt64Identical(t *testing.T) {
	values := testutil.NewHashRand(11).Int32s(500)
	wide := make([]int64, len(values))
	for i, v := range values {
		wide[i] = int64(v)
	}

	narrow := NewZIntEncoder[int32]()
	defer narrow.Finish()
	narrow.WriteSlice(values)

	broad := NewZIntEncoder[int64]()
	defer broad.Finish()
	broad.WriteSlice(wide)

	require.Equal(t, narrow.Bytes(), broad.Bytes())
}

func TestZIntEncoder_ResetKeepsData(t *testing.T) {
	encoder := NewZIntEncoder[int64]()
	defer encoder.Finish()

	encoder.WriteSlice([]int64{1, 2, 3})
	encoder.Reset()
	encoder.Write(4)

	require.Equal(t, 4, encoder.Len())
	require.Equal(t, []byte{0x02, 0x04, 0x06, 0x08}, encoder.Bytes())
}

func TestZIntEncoder_FinishPanics(t *testing.T) {
	encoder := NewZIntEncoder[int32]()
	encoder.Write(1)
	encoder.Finish()

	require.Equal(t, 0, encoder.Len())
	require.Panics(t, func() { encoder.Write(1) })
	require.Panics(t, func() { encoder.WriteSlice([]int32{1}) })
	require.Panics(t, func() { encoder.Bytes() })
	require.Panics(t, func() { encoder.Size() })
	require.NotPanics(t, func() { encoder.Finish() })
}

func TestZIntEncoder_LargeColumnGrowsBuffer(t *testing.T) {
	values := testutil.NewHashRand(12).Int64s(5000)

	encoder := NewZIntEncoder[int64]()
	defer encoder.Finish()
	encoder.WriteSlice(values)

	decoded, err := NewZIntDecoder[int64]().Decode(encoder.Bytes(), encoder.Len())
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

// === ZIntDecoder Tests ===

func TestZIntDecoder_All(t *testing.T) {
	values := []int32{0, math.MaxInt32, math.MinInt32, math.MaxInt16, math.MinInt16, math.MaxInt8, math.MinInt8, -1, 1}

	encoder := NewZIntEncoder[int32]()
	defer encoder.Finish()
	encoder.WriteSlice(values)

	decoder := NewZIntDecoder[int32]()
	decoded := slices.Collect(decoder.All(encoder.Bytes(), encoder.Len()))

	require.Equal(t, values, decoded)
}

func TestZIntDecoder_All_EarlyBreak(t *testing.T) {
	encoder := NewZIntEncoder[int64]()
	defer encoder.Finish()
	encoder.WriteSlice([]int64{1, 2, 3, 4, 5})

	var got []int64
	for v := range NewZIntDecoder[int64]().All(encoder.Bytes(), encoder.Len()) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}

	require.Equal(t, []int64{1, 2}, got)
}

func TestZIntDecoder_All_TruncatedData(t *testing.T) {
	encoder := NewZIntEncoder[int64]()
	defer encoder.Finish()
	encoder.WriteSlice([]int64{1, 1000, math.MaxInt64})

	data := encoder.Bytes()
	decoded := slices.Collect(NewZIntDecoder[int64]().All(data[:len(data)-1], 3))

	require.Equal(t, []int64{1, 1000}, decoded)
}

func TestZIntDecoder_All_CountLimitsOutput(t *testing.T) {
	data := AppendZInt(AppendZInt(AppendZInt(nil, 7), 8), 9)

	require.Equal(t, []int32{7, 8}, slices.Collect(NewZIntDecoder[int32]().All(data, 2)))
	require.Empty(t, slices.Collect(NewZIntDecoder[int32]().All(data, 0)))
}

func TestZIntDecoder_At(t *testing.T) {
	values := testutil.NewHashRand(13).Int64s(50)

	encoder := NewZIntEncoder[int64]()
	defer encoder.Finish()
	encoder.WriteSlice(values)

	decoder := NewZIntDecoder[int64]()
	for i, want := range values {
		got, ok := decoder.At(encoder.Bytes(), i, len(values))
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := decoder.At(encoder.Bytes(), -1, len(values))
	require.False(t, ok)
	_, ok = decoder.At(encoder.Bytes(), len(values), len(values))
	require.False(t, ok)
	_, ok = decoder.At(encoder.Bytes()[:3], 10, len(values))
	require.False(t, ok)
}

func TestZIntDecoder_Decode_Errors(t *testing.T) {
	t.Run("exhausted", func(t *testing.T) {
		data := AppendZInt(nil, 5)
		_, err := NewZIntDecoder[int32]().Decode(data, 2)
		require.ErrorIs(t, err, errs.ErrBufferExhausted)
	})

	t.Run("overflow", func(t *testing.T) {
		data := AppendZLong(nil, math.MaxInt64)
		_, err := NewZIntDecoder[int32]().Decode(data, 1)
		require.ErrorIs(t, err, errs.ErrVarintOverflow)
	})

	t.Run("zero count", func(t *testing.T) {
		values, err := NewZIntDecoder[int64]().Decode(nil, 0)
		require.NoError(t, err)
		require.Empty(t, values)
	})
}
