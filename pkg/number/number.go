// Package number holds the types shared by the streaming and complete
// number parsers.
//
// The parsers themselves live in two sub-packages with identical APIs:
//
//   - streaming: the end of the input may not be the end of the data. Parsers
//     report types.SeverityIncomplete with the number of bytes still needed.
//   - complete: the input is all there is. Parsers never report Incomplete.
//
// Pick streaming when decoding from a network connection or any buffer that
// is refilled over time, and complete when the whole message is in memory.
package number

import (
	"github.com/joshuapare/numkit/internal/lexnum"
	"github.com/joshuapare/numkit/pkg/types"
)

// Parser decodes a T from the front of input and returns the unconsumed rest.
type Parser[T any] func(input []byte) (rest []byte, value T, err error)

// Endianness re-exports types.Endianness for convenience.
type Endianness = types.Endianness

const (
	Big    = types.Big
	Little = types.Little
	Native = types.Native
)

// FloatParts is a float literal split into sign, digits and exponent.
type FloatParts = lexnum.Parts

// Map returns a parser that applies f to the value produced by p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input []byte) ([]byte, U, error) {
		rest, v, err := p(input)
		if err != nil {
			var zero U
			return rest, zero, err
		}
		return rest, f(v), nil
	}
}
