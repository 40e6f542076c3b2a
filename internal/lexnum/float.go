package lexnum

import "github.com/joshuapare/numkit/pkg/types"

// state is a position in the float literal grammar:
//
//	float_literal := sign? mantissa exponent?
//	mantissa      := digits ('.' digits?)? | '.' digits
//	exponent      := ('e'|'E') sign? digits
type state int

const (
	stateSign state = iota
	stateInteger
	stateDot
	stateFraction
	stateExpMarker
	stateExpSign
	stateExpDigits
	stateDone
)

func (s state) String() string {
	switch s {
	case stateSign:
		return "sign"
	case stateInteger:
		return "integer"
	case stateDot:
		return "dot"
	case stateFraction:
		return "fraction"
	case stateExpMarker:
		return "exp-marker"
	case stateExpSign:
		return "exp-sign"
	case stateExpDigits:
		return "exp-digits"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// floatScanner walks one literal. It never allocates.
type floatScanner struct {
	in    []byte
	pos   int
	final bool

	mantissa   int // offset where the mantissa starts (after the sign)
	intDigits  int
	fracDigits int
	expDigits  int
}

// atEnd reports whether the scanner consumed all input.
func (s *floatScanner) atEnd() bool { return s.pos >= len(s.in) }

// digits consumes a run of decimal digits and returns its length.
func (s *floatScanner) digits() int {
	start := s.pos
	for s.pos < len(s.in) && isDigit(s.in[s.pos]) {
		s.pos++
	}
	return s.pos - start
}

// step advances the machine by one state. It returns the next state, or a
// non-nil error when the literal is rejected or needs more input.
func (s *floatScanner) step(st state) (state, error) {
	switch st {
	case stateSign:
		if s.atEnd() {
			if s.final {
				return st, types.NewError(s.in, types.KindChar)
			}
			return st, types.Incomplete(1)
		}
		if isSign(s.in[s.pos]) {
			s.pos++
		}
		s.mantissa = s.pos
		return stateInteger, nil

	case stateInteger:
		s.intDigits = s.digits()
		if s.atEnd() {
			return s.endOfMantissa()
		}
		return stateDot, nil

	case stateDot:
		if s.in[s.pos] != '.' {
			if s.intDigits == 0 {
				return st, types.NewError(s.in[s.mantissa:], types.KindChar)
			}
			return stateExpMarker, nil
		}
		s.pos++
		return stateFraction, nil

	case stateFraction:
		s.fracDigits = s.digits()
		if s.atEnd() {
			return s.endOfMantissa()
		}
		if s.intDigits == 0 && s.fracDigits == 0 {
			return st, types.NewError(s.in[s.mantissa:], types.KindChar)
		}
		return stateExpMarker, nil

	case stateExpMarker:
		if s.atEnd() {
			if s.final {
				return stateDone, nil
			}
			return st, types.Incomplete(1)
		}
		if c := s.in[s.pos]; c != 'e' && c != 'E' {
			return stateDone, nil
		}
		s.pos++
		return stateExpSign, nil

	case stateExpSign:
		if s.atEnd() {
			return st, s.missingExponent()
		}
		if isSign(s.in[s.pos]) {
			s.pos++
		}
		return stateExpDigits, nil

	case stateExpDigits:
		s.expDigits = s.digits()
		if s.atEnd() && !s.final {
			return st, types.Incomplete(1)
		}
		if s.expDigits == 0 {
			return st, s.missingExponent()
		}
		return stateDone, nil
	}
	return stateDone, nil
}

// endOfMantissa handles running out of input inside the integer or fraction
// digits.
func (s *floatScanner) endOfMantissa() (state, error) {
	if !s.final {
		return stateDone, types.Incomplete(1)
	}
	if s.intDigits == 0 && s.fracDigits == 0 {
		return stateDone, types.NewError(s.in[s.mantissa:], types.KindChar)
	}
	return stateDone, nil
}

// missingExponent is the cut after an exponent marker: digits are mandatory.
func (s *floatScanner) missingExponent() error {
	if s.atEnd() && !s.final {
		return types.Incomplete(1)
	}
	return types.NewError(s.in[s.pos:], types.KindDigit).Cut()
}

// scanFloat returns the length of the float literal at the start of in.
func scanFloat(in []byte, final bool) (int, error) {
	s := floatScanner{in: in, final: final}
	st := stateSign
	for st != stateDone {
		next, err := s.step(st)
		if err != nil {
			return 0, err
		}
		st = next
	}
	return s.pos, nil
}

// RecognizeFloat returns the longest float literal prefix of input as span,
// without converting it.
func RecognizeFloat(input []byte, final bool) (rest, span []byte, err error) {
	n, err := scanFloat(input, final)
	if err != nil {
		return input, nil, err
	}
	return input[n:], input[:n], nil
}

// RecognizeFloatOrExceptions is RecognizeFloat extended with the special
// tokens "nan", "inf" and "infinity" in any case. Rejections are reported
// with KindFloat at the start of input.
//
// Unlike a bare token list, inf and infinity may be preceded by a sign, so
// "-inf" and "+Infinity" are accepted the way strconv.ParseFloat accepts them.
// nan never takes a sign.
func RecognizeFloatOrExceptions(input []byte, final bool) (rest, span []byte, err error) {
	n, err := scanFloat(input, final)
	if err == nil {
		return input[n:], input[:n], nil
	}
	if _, ok := types.IsIncomplete(err); ok {
		return input, nil, err
	}
	if types.IsFailure(err) {
		return input, nil, types.NewFailure(input, types.KindFloat)
	}

	n, need := matchSpecial(input, final)
	switch {
	case n > 0:
		return input[n:], input[:n], nil
	case need > 0:
		return input, nil, types.Incomplete(need)
	}
	return input, nil, types.NewError(input, types.KindFloat)
}

// matchSpecial matches nan, inf and infinity case-insensitively. inf and
// infinity may carry a sign. It returns the matched length, or the number of
// bytes still needed when input is a strict prefix of "inf" or "nan" and more
// may follow. "inf" is taken as soon as its three bytes are present;
// "infinity" wins only when all eight match.
func matchSpecial(in []byte, final bool) (n int, need int) {
	sign := 0
	if len(in) > 0 && isSign(in[0]) {
		sign = 1
	}
	body := in[sign:]

	inf := commonPrefixFold(body, "infinity")
	switch {
	case inf == len("infinity"):
		return sign + inf, 0
	case inf >= len("inf"):
		return sign + len("inf"), 0
	case !final && len(body) > 0 && inf == len(body):
		return 0, len("inf") - inf
	}

	if sign == 0 {
		nan := commonPrefixFold(body, "nan")
		switch {
		case nan == len("nan"):
			return nan, 0
		case !final && len(body) > 0 && nan == len(body):
			return 0, len("nan") - nan
		}
	}
	return 0, 0
}

// commonPrefixFold returns the length of the ASCII case-insensitive common
// prefix of b and lower, which must be lower case.
func commonPrefixFold(b []byte, lower string) int {
	n := 0
	for n < len(b) && n < len(lower) {
		c := b[n]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != lower[n] {
			break
		}
		n++
	}
	return n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSign(c byte) bool { return c == '+' || c == '-' }
