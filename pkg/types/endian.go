package types

import (
	"fmt"
	"strings"

	"golang.org/x/sys/cpu"
)

// Endianness selects the byte order used to decode multi-byte values.
type Endianness int

const (
	Big    Endianness = iota // most significant byte first
	Little                   // least significant byte first
	Native                   // byte order of the build target
)

// nativeOrder is fixed at build time by the target GOARCH.
var nativeOrder = func() Endianness {
	if cpu.IsBigEndian {
		return Big
	}
	return Little
}()

// Resolve maps Native to Big or Little. Big and Little are returned as is.
func (e Endianness) Resolve() Endianness {
	if e == Native {
		return nativeOrder
	}
	return e
}

func (e Endianness) String() string {
	switch e {
	case Big:
		return "big"
	case Little:
		return "little"
	case Native:
		return "native"
	default:
		return fmt.Sprintf("Endianness(%d)", int(e))
	}
}

// ParseEndianness accepts "big"/"be", "little"/"le" and "native" in any case.
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "be", "big-endian":
		return Big, nil
	case "little", "le", "little-endian":
		return Little, nil
	case "native", "":
		return Native, nil
	default:
		return Native, fmt.Errorf("types: unknown endianness %q", s)
	}
}
