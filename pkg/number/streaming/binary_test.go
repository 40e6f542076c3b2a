package streaming

import (
	"encoding/binary"
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/numkit/pkg/types"
)

func TestConfigurableEndianness(t *testing.T) {
	t.Run("u16", func(t *testing.T) {
		in := []byte{0x80, 0x00}
		_, be, err := U16(types.Big)(in)
		require.NoError(t, err)
		_, le, err := U16(types.Little)(in)
		require.NoError(t, err)
		assert.Equal(t, uint16(32768), be)
		assert.Equal(t, uint16(128), le)
	})

	t.Run("u32", func(t *testing.T) {
		in := []byte{0x12, 0x00, 0x60, 0x00}
		_, be, err := U32(types.Big)(in)
		require.NoError(t, err)
		_, le, err := U32(types.Little)(in)
		require.NoError(t, err)
		assert.Equal(t, uint32(302014464), be)
		assert.Equal(t, uint32(6291474), le)
	})

	t.Run("u64", func(t *testing.T) {
		in := []byte{0x12, 0x00, 0x60, 0x00, 0x12, 0x00, 0x80, 0x00}
		_, be, err := U64(types.Big)(in)
		require.NoError(t, err)
		_, le, err := U64(types.Little)(in)
		require.NoError(t, err)
		assert.Equal(t, uint64(1297142246100992000), be)
		assert.Equal(t, uint64(36028874334666770), le)
	})

	t.Run("i16", func(t *testing.T) {
		in := []byte{0x00, 0x80}
		_, be, err := I16(types.Big)(in)
		require.NoError(t, err)
		_, le, err := I16(types.Little)(in)
		require.NoError(t, err)
		assert.Equal(t, int16(128), be)
		assert.Equal(t, int16(-32768), le)
	})

	t.Run("i32", func(t *testing.T) {
		in := []byte{0x00, 0x12, 0x60, 0x00}
		_, be, err := I32(types.Big)(in)
		require.NoError(t, err)
		_, le, err := I32(types.Little)(in)
		require.NoError(t, err)
		assert.Equal(t, int32(1204224), be)
		assert.Equal(t, int32(6296064), le)
	})

	t.Run("i64", func(t *testing.T) {
		in := []byte{0x00, 0xFF, 0x60, 0x00, 0x12, 0x00, 0x80, 0x00}
		_, be, err := I64(types.Big)(in)
		require.NoError(t, err)
		_, le, err := I64(types.Little)(in)
		require.NoError(t, err)
		assert.Equal(t, int64(71881672479506432), be)
		assert.Equal(t, int64(36028874334732032), le)
	})
}

func TestOppositeOrderReversesBytes(t *testing.T) {
	tests := []struct {
		name  string
		width int
		check func(t *testing.T, width int)
	}{
		{"u16", 2, func(t *testing.T, width int) {
			const v = uint16(0xa1b2)
			in := binary.BigEndian.AppendUint16(nil, v)
			require.Len(t, in, width)
			_, be, err := U16(types.Big)(in)
			require.NoError(t, err)
			_, le, err := U16(types.Little)(in)
			require.NoError(t, err)
			assert.Equal(t, v, be)
			assert.Equal(t, bits.ReverseBytes16(v), le)
		}},
		{"u24", 3, func(t *testing.T, width int) {
			const v = uint32(0xa1b2c3)
			in := binary.BigEndian.AppendUint32(nil, v)[1:]
			require.Len(t, in, width)
			_, be, err := U24(types.Big)(in)
			require.NoError(t, err)
			_, le, err := U24(types.Little)(in)
			require.NoError(t, err)
			assert.Equal(t, v, be)
			assert.Equal(t, bits.ReverseBytes32(v)>>8, le)

			_, sbe, err := I24(types.Big)(in)
			require.NoError(t, err)
			_, sle, err := I24(types.Little)(in)
			require.NoError(t, err)
			assert.Equal(t, int32(v)-1<<24, sbe)
			assert.Equal(t, int32(bits.ReverseBytes32(v)>>8)-1<<24, sle)
		}},
		{"u32", 4, func(t *testing.T, width int) {
			const v = uint32(0xa1b2c3d4)
			in := binary.BigEndian.AppendUint32(nil, v)
			require.Len(t, in, width)
			_, be, err := U32(types.Big)(in)
			require.NoError(t, err)
			_, le, err := U32(types.Little)(in)
			require.NoError(t, err)
			assert.Equal(t, v, be)
			assert.Equal(t, bits.ReverseBytes32(v), le)
		}},
		{"u64", 8, func(t *testing.T, width int) {
			const v = uint64(0xa1b2c3d4e5f60718)
			in := binary.BigEndian.AppendUint64(nil, v)
			require.Len(t, in, width)
			_, be, err := U64(types.Big)(in)
			require.NoError(t, err)
			_, le, err := U64(types.Little)(in)
			require.NoError(t, err)
			assert.Equal(t, v, be)
			assert.Equal(t, bits.ReverseBytes64(v), le)

			_, fbe, err := F64(types.Big)(in)
			require.NoError(t, err)
			_, fle, err := F64(types.Little)(in)
			require.NoError(t, err)
			assert.Equal(t, v, math.Float64bits(fbe))
			assert.Equal(t, bits.ReverseBytes64(v), math.Float64bits(fle))
		}},
		{"u128", 16, func(t *testing.T, width int) {
			v := types.Uint128{Hi: 0xa1b2c3d4e5f60718, Lo: 0x293a4b5c6d7e8f90}
			in := binary.BigEndian.AppendUint64(binary.BigEndian.AppendUint64(nil, v.Hi), v.Lo)
			require.Len(t, in, width)
			_, be, err := U128(types.Big)(in)
			require.NoError(t, err)
			_, le, err := U128(types.Little)(in)
			require.NoError(t, err)
			assert.Equal(t, v, be)
			assert.Equal(t, types.Uint128{Hi: bits.ReverseBytes64(v.Lo), Lo: bits.ReverseBytes64(v.Hi)}, le)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) { tt.check(t, tt.width) })
	}
}

func TestNativeMatchesResolvedOrder(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	order := types.Native.Resolve()

	_, native, err := U32(types.Native)(in)
	require.NoError(t, err)
	_, resolved, err := U32(order)(in)
	require.NoError(t, err)
	assert.Equal(t, resolved, native)

	_, n128, err := U128(types.Native)(in)
	require.NoError(t, err)
	_, r128, err := U128(order)(in)
	require.NoError(t, err)
	assert.Equal(t, r128, n128)
}

func TestUnsigned(t *testing.T) {
	rest, v8, err := U8([]byte{0xfe, 'x'})
	require.NoError(t, err)
	assert.Equal(t, uint8(0xfe), v8)
	assert.Equal(t, []byte("x"), rest)

	rest, v32, err := BeU32([]byte{0x00, 0x01, 0x02, 0x03, 'a', 'b', 'c', 'd'})
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00010203), v32)
	assert.Equal(t, []byte("abcd"), rest)

	_, v24, err := BeU24([]byte{0x00, 0x03, 0x05})
	require.NoError(t, err)
	assert.Equal(t, uint32(773), v24)

	_, v24, err = LeU24([]byte{0x05, 0x03, 0x00})
	require.NoError(t, err)
	assert.Equal(t, uint32(773), v24)

	in := make([]byte, 16)
	for i := range in {
		in[i] = byte(i)
	}
	_, be, err := BeU128(in)
	require.NoError(t, err)
	assert.Equal(t, types.Uint128{Hi: 0x0001020304050607, Lo: 0x08090a0b0c0d0e0f}, be)
	assert.Equal(t, in, be.Bytes(types.Big))

	_, le, err := LeU128(in)
	require.NoError(t, err)
	assert.Equal(t, types.Uint128{Hi: 0x0f0e0d0c0b0a0908, Lo: 0x0706050403020100}, le)
	assert.Equal(t, in, le.Bytes(types.Little))
}

func TestSigned(t *testing.T) {
	_, v8, err := I8([]byte{0x80})
	require.NoError(t, err)
	assert.Equal(t, int8(-128), v8)

	_, v24, err := BeI24([]byte{0xff, 0xff, 0xff})
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v24)

	_, v24, err = LeI24([]byte{0x58, 0x34, 0x12})
	require.NoError(t, err)
	assert.Equal(t, int32(0x123458), v24)

	_, v24, err = LeI24([]byte{0xed, 0xcb, 0xab})
	require.NoError(t, err)
	assert.Equal(t, int32(-0x543413), v24)

	_, v24, err = I24(types.Big)([]byte{0x7f, 0xff, 0xff})
	require.NoError(t, err)
	assert.Equal(t, int32(0x7fffff), v24)

	allOnes := make([]byte, 16)
	for i := range allOnes {
		allOnes[i] = 0xff
	}
	_, v128, err := BeI128(allOnes)
	require.NoError(t, err)
	assert.Equal(t, -1, v128.Sign())
	assert.Equal(t, "-1", v128.String())

	minI128 := make([]byte, 16)
	minI128[15] = 0x80
	_, v128, err = LeI128(minI128)
	require.NoError(t, err)
	assert.Equal(t, types.Int128{Hi: math.MinInt64, Lo: 0}, v128)
	assert.Equal(t, "-170141183460469231731687303715884105728", v128.String())
}

func TestFloatBits(t *testing.T) {
	_, f, err := BeF32([]byte{0x00, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, float32(0), f)
	assert.False(t, math.Signbit(float64(f)))

	_, f, err = BeF32([]byte{0x80, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	assert.True(t, math.Signbit(float64(f)))

	_, f, err = LeF32([]byte{0x00, 0x00, 0x48, 0x41})
	require.NoError(t, err)
	assert.Equal(t, float32(12.5), f)

	_, d, err := BeF64([]byte{0x40, 0x29, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, 12.5, d)

	_, d, err = F64(types.Little)([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x29, 0x40})
	require.NoError(t, err)
	assert.Equal(t, 12.5, d)

	// NaN payloads are reinterpreted, not canonicalized
	payload := []byte{0x7f, 0xc0, 0x00, 0x01}
	_, f, err = F32(types.Big)(payload)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(f)))
	assert.Equal(t, uint32(0x7fc00001), math.Float32bits(f))

	_, d, err = LeF64([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf8, 0xff})
	require.NoError(t, err)
	assert.Equal(t, uint64(0xfff8000000000001), math.Float64bits(d))
}

func TestIncomplete(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
		need types.Needed
	}{
		{"u8 empty", func() error { _, _, err := U8(nil); return err }, 1},
		{"be_u16 empty", func() error { _, _, err := BeU16(nil); return err }, 2},
		{"le_u24 two", func() error { _, _, err := LeU24([]byte{0, 1}); return err }, 1},
		{"be_i32 one", func() error { _, _, err := BeI32([]byte{0}); return err }, 3},
		{"be_u64 one", func() error { _, _, err := BeU64([]byte{0x01}); return err }, 7},
		{"le_f64 four", func() error { _, _, err := LeF64(make([]byte, 4)); return err }, 4},
		{"be_u128 fifteen", func() error { _, _, err := BeU128(make([]byte, 15)); return err }, 1},
		{"le_i128 empty", func() error { _, _, err := LeI128(nil); return err }, 16},
		{"f32 native", func() error { _, _, err := F32(types.Native)([]byte{1}); return err }, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.ErrorIs(t, err, types.ErrIncomplete)
			need, ok := types.IsIncomplete(err)
			require.True(t, ok)
			assert.Equal(t, tt.need, need)
		})
	}
}

func TestIncompleteRetry(t *testing.T) {
	stream := []byte{0x12, 0x00, 0x60, 0x00, 0x12, 0x00, 0x80, 0x00, 0xaa}
	var got uint64
	for n := 0; ; n++ {
		rest, v, err := BeU64(stream[:n])
		if need, ok := types.IsIncomplete(err); ok {
			assert.Equal(t, types.Needed(8-n), need)
			continue
		}
		require.NoError(t, err)
		assert.Empty(t, rest)
		got = v
		break
	}
	assert.Equal(t, uint64(1297142246100992000), got)
}

func BenchmarkBeU64(b *testing.B) {
	in := []byte{0x12, 0x00, 0x60, 0x00, 0x12, 0x00, 0x80, 0x00}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = BeU64(in)
	}
}

func BenchmarkU32Native(b *testing.B) {
	p := U32(types.Native)
	in := []byte{0x12, 0x00, 0x60, 0x00}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = p(in)
	}
}
