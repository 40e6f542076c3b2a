// Package buf contains the fixed-width integer engine shared by the binary
// number parsers.
package buf

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/numkit/pkg/types"
)

// Uint is the set of native unsigned types the engine can fold into.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FoldBE folds b into T most significant byte first. len(b) must not exceed
// the size of T.
func FoldBE[T Uint](b []byte) T {
	var acc T
	for _, c := range b {
		acc = acc<<8 | T(c)
	}
	return acc
}

// FoldLE folds b into T least significant byte first.
func FoldLE[T Uint](b []byte) T {
	var acc T
	for i, c := range b {
		acc |= T(c) << (8 * uint(i))
	}
	return acc
}

// Fixed decodes a width-byte unsigned integer from the front of input.
//
// order must already be resolved to types.Big or types.Little. When fewer than
// width bytes are available Fixed returns Incomplete(width-len(input)), or an
// EOF error when final is set. width must be one of 1, 2, 3, 4 or 8 and fit
// in T; anything else is a programming error and panics.
func Fixed[T Uint](input []byte, width int, order types.Endianness, final bool) ([]byte, T, error) {
	checkWidth[T](width)
	head, ok := Slice(input, 0, width)
	if !ok {
		return input, 0, short(input, width, final)
	}
	var v T
	if order == types.Big {
		v = FoldBE[T](head)
	} else {
		v = FoldLE[T](head)
	}
	return input[width:], v, nil
}

// Fixed128 decodes a 16-byte unsigned integer from the front of input.
func Fixed128(input []byte, order types.Endianness, final bool) ([]byte, types.Uint128, error) {
	const width = 16
	head, ok := Slice(input, 0, width)
	if !ok {
		return input, types.Uint128{}, short(input, width, final)
	}
	var v types.Uint128
	if order == types.Big {
		v.Hi = FoldBE[uint64](head[:8])
		v.Lo = FoldBE[uint64](head[8:])
	} else {
		v.Lo = FoldLE[uint64](head[:8])
		v.Hi = FoldLE[uint64](head[8:])
	}
	return input[width:], v, nil
}

// SignExtend24 reinterprets the low 24 bits of u as a two's complement value.
func SignExtend24(u uint32) int32 {
	if u&0x80_00_00 != 0 {
		return int32(u | 0xff_00_00_00)
	}
	return int32(u)
}

func short(input []byte, width int, final bool) error {
	if final {
		return types.NewError(input, types.KindEOF)
	}
	return types.Incomplete(Deficit(input, 0, width))
}

func checkWidth[T Uint](width int) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	switch width {
	case 1, 2, 3, 4, 8:
		if width <= size {
			return
		}
	}
	panic(fmt.Sprintf("buf: unsupported width %d for %d-byte integer", width, size))
}
