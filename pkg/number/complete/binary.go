package complete

import (
	"math"

	"github.com/joshuapare/numkit/internal/buf"
	"github.com/joshuapare/numkit/pkg/number"
	"github.com/joshuapare/numkit/pkg/types"
)

// BeU8 decodes an unsigned byte.
func BeU8(input []byte) ([]byte, uint8, error) {
	return buf.Fixed[uint8](input, 1, types.Big, final)
}

// BeU16 decodes a big endian uint16.
func BeU16(input []byte) ([]byte, uint16, error) {
	return buf.Fixed[uint16](input, 2, types.Big, final)
}

// BeU24 decodes a big endian 3-byte unsigned integer into the low bits of a uint32.
func BeU24(input []byte) ([]byte, uint32, error) {
	return buf.Fixed[uint32](input, 3, types.Big, final)
}

// BeU32 decodes a big endian uint32.
func BeU32(input []byte) ([]byte, uint32, error) {
	return buf.Fixed[uint32](input, 4, types.Big, final)
}

// BeU64 decodes a big endian uint64.
func BeU64(input []byte) ([]byte, uint64, error) {
	return buf.Fixed[uint64](input, 8, types.Big, final)
}

// BeU128 decodes a big endian 16-byte unsigned integer.
func BeU128(input []byte) ([]byte, types.Uint128, error) {
	return buf.Fixed128(input, types.Big, final)
}

// LeU8 decodes an unsigned byte.
func LeU8(input []byte) ([]byte, uint8, error) {
	return buf.Fixed[uint8](input, 1, types.Little, final)
}

// LeU16 decodes a little endian uint16.
func LeU16(input []byte) ([]byte, uint16, error) {
	return buf.Fixed[uint16](input, 2, types.Little, final)
}

// LeU24 decodes a little endian 3-byte unsigned integer into the low bits of a uint32.
func LeU24(input []byte) ([]byte, uint32, error) {
	return buf.Fixed[uint32](input, 3, types.Little, final)
}

// LeU32 decodes a little endian uint32.
func LeU32(input []byte) ([]byte, uint32, error) {
	return buf.Fixed[uint32](input, 4, types.Little, final)
}

// LeU64 decodes a little endian uint64.
func LeU64(input []byte) ([]byte, uint64, error) {
	return buf.Fixed[uint64](input, 8, types.Little, final)
}

// LeU128 decodes a little endian 16-byte unsigned integer.
func LeU128(input []byte) ([]byte, types.Uint128, error) {
	return buf.Fixed128(input, types.Little, final)
}

// BeI8 decodes a signed byte.
func BeI8(input []byte) ([]byte, int8, error) {
	rest, v, err := BeU8(input)
	return rest, int8(v), err
}

// BeI16 decodes a big endian int16.
func BeI16(input []byte) ([]byte, int16, error) {
	rest, v, err := BeU16(input)
	return rest, int16(v), err
}

// BeI24 decodes a big endian 3-byte signed integer, sign-extended to int32.
func BeI24(input []byte) ([]byte, int32, error) {
	rest, v, err := BeU24(input)
	return rest, buf.SignExtend24(v), err
}

// BeI32 decodes a big endian int32.
func BeI32(input []byte) ([]byte, int32, error) {
	rest, v, err := BeU32(input)
	return rest, int32(v), err
}

// BeI64 decodes a big endian int64.
func BeI64(input []byte) ([]byte, int64, error) {
	rest, v, err := BeU64(input)
	return rest, int64(v), err
}

// BeI128 decodes a big endian 16-byte two's complement integer.
func BeI128(input []byte) ([]byte, types.Int128, error) {
	rest, v, err := BeU128(input)
	return rest, v.AsSigned(), err
}

// LeI8 decodes a signed byte.
func LeI8(input []byte) ([]byte, int8, error) {
	rest, v, err := LeU8(input)
	return rest, int8(v), err
}

// LeI16 decodes a little endian int16.
func LeI16(input []byte) ([]byte, int16, error) {
	rest, v, err := LeU16(input)
	return rest, int16(v), err
}

// LeI24 decodes a little endian 3-byte signed integer, sign-extended to int32.
func LeI24(input []byte) ([]byte, int32, error) {
	rest, v, err := LeU24(input)
	return rest, buf.SignExtend24(v), err
}

// LeI32 decodes a little endian int32.
func LeI32(input []byte) ([]byte, int32, error) {
	rest, v, err := LeU32(input)
	return rest, int32(v), err
}

// LeI64 decodes a little endian int64.
func LeI64(input []byte) ([]byte, int64, error) {
	rest, v, err := LeU64(input)
	return rest, int64(v), err
}

// LeI128 decodes a little endian 16-byte two's complement integer.
func LeI128(input []byte) ([]byte, types.Int128, error) {
	rest, v, err := LeU128(input)
	return rest, v.AsSigned(), err
}

// BeF32 decodes a big endian IEEE-754 binary32. The bits are reinterpreted,
// not converted, so NaN payloads and signed zeros survive.
func BeF32(input []byte) ([]byte, float32, error) {
	rest, v, err := BeU32(input)
	return rest, math.Float32frombits(v), err
}

// BeF64 decodes a big endian IEEE-754 binary64.
func BeF64(input []byte) ([]byte, float64, error) {
	rest, v, err := BeU64(input)
	return rest, math.Float64frombits(v), err
}

// LeF32 decodes a little endian IEEE-754 binary32.
func LeF32(input []byte) ([]byte, float32, error) {
	rest, v, err := LeU32(input)
	return rest, math.Float32frombits(v), err
}

// LeF64 decodes a little endian IEEE-754 binary64.
func LeF64(input []byte) ([]byte, float64, error) {
	rest, v, err := LeU64(input)
	return rest, math.Float64frombits(v), err
}

// U8 decodes an unsigned byte; byte order does not apply.
func U8(input []byte) ([]byte, uint8, error) { return BeU8(input) }

// I8 decodes a signed byte; byte order does not apply.
func I8(input []byte) ([]byte, int8, error) { return BeI8(input) }

// U16 returns the uint16 parser for byte order e.
func U16(e types.Endianness) number.Parser[uint16] { return buf.Select(e, BeU16, LeU16) }

// U24 returns the 3-byte unsigned parser for byte order e.
func U24(e types.Endianness) number.Parser[uint32] { return buf.Select(e, BeU24, LeU24) }

// U32 returns the uint32 parser for byte order e.
func U32(e types.Endianness) number.Parser[uint32] { return buf.Select(e, BeU32, LeU32) }

// U64 returns the uint64 parser for byte order e.
func U64(e types.Endianness) number.Parser[uint64] { return buf.Select(e, BeU64, LeU64) }

// U128 returns the 16-byte unsigned parser for byte order e.
func U128(e types.Endianness) number.Parser[types.Uint128] { return buf.Select(e, BeU128, LeU128) }

// I16 returns the int16 parser for byte order e.
func I16(e types.Endianness) number.Parser[int16] { return buf.Select(e, BeI16, LeI16) }

// I24 returns the 3-byte signed parser for byte order e.
func I24(e types.Endianness) number.Parser[int32] { return buf.Select(e, BeI24, LeI24) }

// I32 returns the int32 parser for byte order e.
func I32(e types.Endianness) number.Parser[int32] { return buf.Select(e, BeI32, LeI32) }

// I64 returns the int64 parser for byte order e.
func I64(e types.Endianness) number.Parser[int64] { return buf.Select(e, BeI64, LeI64) }

// I128 returns the 16-byte signed parser for byte order e.
func I128(e types.Endianness) number.Parser[types.Int128] { return buf.Select(e, BeI128, LeI128) }

// F32 returns the binary32 parser for byte order e.
func F32(e types.Endianness) number.Parser[float32] { return buf.Select(e, BeF32, LeF32) }

// F64 returns the binary64 parser for byte order e.
func F64(e types.Endianness) number.Parser[float64] { return buf.Select(e, BeF64, LeF64) }
