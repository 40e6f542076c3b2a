package streaming

import (
	"github.com/joshuapare/numkit/internal/lexnum"
	"github.com/joshuapare/numkit/pkg/number"
)

// HexU32 decodes up to eight hexadecimal digits into a uint32. Digits past
// the eighth are left in the remainder. A run shorter than eight digits that
// touches the end of input reports Incomplete, since more digits may follow.
func HexU32(input []byte) ([]byte, uint32, error) {
	return lexnum.HexU32(input, final)
}

// RecognizeFloat returns the longest prefix of input that forms a decimal
// float literal, without converting it.
func RecognizeFloat(input []byte) (rest, span []byte, err error) {
	return lexnum.RecognizeFloat(input, final)
}

// RecognizeFloatOrExceptions is RecognizeFloat extended with the
// case-insensitive tokens nan, inf and infinity.
func RecognizeFloatOrExceptions(input []byte) (rest, span []byte, err error) {
	return lexnum.RecognizeFloatOrExceptions(input, final)
}

// RecognizeFloatParts splits a float literal into its sign, integer digits,
// fraction digits and decimal exponent.
func RecognizeFloatParts(input []byte) ([]byte, number.FloatParts, error) {
	return lexnum.RecognizeFloatParts(input, final)
}

// Float recognizes and converts a float literal to the nearest float32.
func Float(input []byte) ([]byte, float32, error) {
	return lexnum.Float(input, final)
}

// Double recognizes and converts a float literal to the nearest float64.
func Double(input []byte) ([]byte, float64, error) {
	return lexnum.Double(input, final)
}
