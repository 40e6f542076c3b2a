// Package lexnum implements the text number grammars: ASCII hex runs and
// decimal float literals. Every function takes a final flag; when it is false
// the end of the input means more bytes may follow and extendable clauses
// report Incomplete, when it is true the end of the input terminates them.
package lexnum

import "github.com/joshuapare/numkit/pkg/types"

// maxHexDigits is the number of nibbles that fit in a uint32.
const maxHexDigits = 8

// HexU32 decodes a run of ASCII hex digits into a uint32. Runs longer than
// eight digits are truncated: only the first eight are consumed and the rest
// stay in the returned remainder.
func HexU32(input []byte, final bool) ([]byte, uint32, error) {
	n := 0
	for n < len(input) && n < maxHexDigits && isHex(input[n]) {
		n++
	}
	switch {
	case n == 0 && len(input) == 0 && !final:
		return input, 0, types.Incomplete(1)
	case n == 0:
		return input, 0, types.NewError(input, types.KindIsA)
	case n < maxHexDigits && n == len(input) && !final:
		// the run touches the end; another digit could still arrive
		return input, 0, types.Incomplete(1)
	}

	var v uint32
	for _, c := range input[:n] {
		v = v<<4 | uint32(nibble(c))
	}
	return input[n:], v, nil
}

func isHex(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// nibble assumes isHex(c).
func nibble(c byte) byte {
	switch {
	case c <= '9':
		return c - '0'
	case c >= 'a':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
