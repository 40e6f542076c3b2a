package lexnum

import (
	"errors"
	"strconv"

	"github.com/joshuapare/numkit/pkg/types"
)

// Float recognizes a float literal or special token and converts it to float32.
func Float(input []byte, final bool) ([]byte, float32, error) {
	rest, v, err := parseFloat(input, final, 32)
	return rest, float32(v), err
}

// Double recognizes a float literal or special token and converts it to float64.
func Double(input []byte, final bool) ([]byte, float64, error) {
	return parseFloat(input, final, 64)
}

func parseFloat(input []byte, final bool, bitSize int) ([]byte, float64, error) {
	rest, span, err := RecognizeFloatOrExceptions(input, final)
	if err != nil {
		return input, 0, err
	}
	v, err := strconv.ParseFloat(string(span), bitSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return input, 0, types.NewError(rest, types.KindFloat)
	}
	return rest, v, nil
}
