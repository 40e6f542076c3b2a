package lexnum

import (
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/numkit/pkg/types"
)

// Parts is a float literal split into its semantic components. Integer and
// Fraction alias the parsed input.
type Parts struct {
	Negative bool
	Integer  []byte // leading zeros stripped; a single "0" when only zeros were present; empty for ".5"
	Fraction []byte // trailing zeros stripped; a single "0" when only zeros were present
	Exponent int32
}

// String renders p as a canonical literal accepted by strconv.
func (p Parts) String() string {
	var sb strings.Builder
	sb.Grow(len(p.Integer) + len(p.Fraction) + 16)
	if p.Negative {
		sb.WriteByte('-')
	}
	if len(p.Integer) == 0 {
		sb.WriteByte('0')
	} else {
		sb.Write(p.Integer)
	}
	if len(p.Fraction) > 0 {
		sb.WriteByte('.')
		sb.Write(p.Fraction)
	}
	if p.Exponent != 0 {
		sb.WriteByte('e')
		sb.WriteString(strconv.FormatInt(int64(p.Exponent), 10))
	}
	return sb.String()
}

// Float64 converts p to the nearest float64. Out of range values saturate to
// ±Inf or ±0 like strconv.
func (p Parts) Float64() float64 {
	v, _ := strconv.ParseFloat(p.String(), 64)
	return v
}

// Float32 converts p to the nearest float32.
func (p Parts) Float32() float32 {
	v, _ := strconv.ParseFloat(p.String(), 32)
	return float32(v)
}

// RecognizeFloatParts splits the float literal at the start of input into
// sign, integer digits, fraction digits and a decimal exponent.
func RecognizeFloatParts(input []byte, final bool) ([]byte, Parts, error) {
	var p Parts
	pos := 0

	// sign
	if len(input) == 0 && !final {
		return input, p, types.Incomplete(1)
	}
	if pos < len(input) && isSign(input[pos]) {
		p.Negative = input[pos] == '-'
		pos++
	}

	// integer: skip leading zeros, keep one if nothing else is left
	zeros := pos
	for pos < len(input) && input[pos] == '0' {
		pos++
	}
	zerosEnd := pos
	for pos < len(input) && isDigit(input[pos]) {
		pos++
	}
	p.Integer = input[zerosEnd:pos]
	if len(p.Integer) == 0 && zerosEnd > zeros {
		p.Integer = input[zerosEnd-1 : zerosEnd]
	}

	// optional dot and fraction
	if pos == len(input) && !final {
		return input, Parts{}, types.Incomplete(1)
	}
	if pos < len(input) && input[pos] == '.' {
		pos++
		start := pos
		trailing := 0
		for pos < len(input) && isDigit(input[pos]) {
			if input[pos] == '0' {
				trailing++
			} else {
				trailing = 0
			}
			pos++
		}
		if pos == len(input) && !final {
			return input, Parts{}, types.Incomplete(1)
		}
		n := pos - start
		switch {
		case trailing == 0:
		case trailing == n:
			n = 1
		default:
			n -= trailing
		}
		p.Fraction = input[start : start+n]
	}

	if len(p.Integer) == 0 && len(p.Fraction) == 0 {
		return input, Parts{}, types.NewError(input, types.KindFloat)
	}

	// optional exponent; the digits after the marker are mandatory
	if pos < len(input) && (input[pos] == 'e' || input[pos] == 'E') {
		rest, exp, err := exponent(input[pos+1:], final)
		if err != nil {
			return input, Parts{}, err
		}
		p.Exponent = exp
		return rest, p, nil
	}
	return input[pos:], p, nil
}

// exponent parses a signed decimal int32. Any rejection is a Failure: the
// caller has already committed to an exponent.
func exponent(in []byte, final bool) ([]byte, int32, error) {
	pos := 0
	if pos == len(in) && !final {
		return in, 0, types.Incomplete(1)
	}
	neg := false
	if pos < len(in) && isSign(in[pos]) {
		neg = in[pos] == '-'
		pos++
	}
	start := pos
	var v int64
	for pos < len(in) && isDigit(in[pos]) {
		v = v*10 + int64(in[pos]-'0')
		if v > math.MaxInt32+1 {
			return in, 0, types.NewError(in[start:], types.KindDigit).Cut()
		}
		pos++
	}
	if pos == len(in) && !final {
		return in, 0, types.Incomplete(1)
	}
	if pos == start {
		return in, 0, types.NewError(in[pos:], types.KindDigit).Cut()
	}
	if neg {
		v = -v
	}
	if v > math.MaxInt32 {
		return in, 0, types.NewError(in[start:], types.KindDigit).Cut()
	}
	return in[pos:], int32(v), nil
}
