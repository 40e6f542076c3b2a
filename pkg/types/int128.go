package types

import (
	"encoding/binary"
	"math/big"
)

// Uint128 is an unsigned 128-bit integer split into two 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a two's complement signed 128-bit integer. Hi carries the sign.
type Int128 struct {
	Hi int64
	Lo uint64
}

// AsSigned reinterprets the bit pattern as a signed value.
func (u Uint128) AsSigned() Int128 {
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

// AsUnsigned reinterprets the bit pattern as an unsigned value.
func (i Int128) AsUnsigned() Uint128 {
	return Uint128{Hi: uint64(i.Hi), Lo: i.Lo}
}

// Sign returns -1, 0 or +1.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	default:
		return 1
	}
}

// Bytes encodes u in the given byte order. Native is resolved first.
func (u Uint128) Bytes(e Endianness) []byte {
	b := make([]byte, 16)
	if e.Resolve() == Big {
		binary.BigEndian.PutUint64(b[0:8], u.Hi)
		binary.BigEndian.PutUint64(b[8:16], u.Lo)
	} else {
		binary.LittleEndian.PutUint64(b[0:8], u.Lo)
		binary.LittleEndian.PutUint64(b[8:16], u.Hi)
	}
	return b
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	return u.Big().String()
}

// Big returns i as a big.Int.
func (i Int128) Big() *big.Int {
	v := i.AsUnsigned().Big()
	if i.Hi < 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return v
}

func (i Int128) String() string {
	return i.Big().String()
}
