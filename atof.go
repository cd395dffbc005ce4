package atof

import (
	"math"
	"strings"

	"github.com/calebcase/atof/decimal"
	"github.com/calebcase/atof/ieee"
)

// ErrInvalidCharacter is returned for any input outside the numeric
// grammar. Out of range magnitudes are not errors; they convert to
// signed zeros and infinities.
var ErrInvalidCharacter = decimal.ErrInvalidCharacter

// token classifies the case-insensitive special literals.
type token int

const (
	number token = iota
	nan
	inf
	negInf
)

func special(s string) token {
	switch {
	case strings.EqualFold(s, "nan"):
		return nan
	case strings.EqualFold(s, "inf"), strings.EqualFold(s, "+inf"):
		return inf
	case strings.EqualFold(s, "-inf"):
		return negInf
	}

	return number
}

// Parse64 converts s to the nearest binary64 value.
func Parse64(s string) (float64, error) {
	switch special(s) {
	case nan:
		return math.Float64frombits(ieee.Binary64.NaN()), nil
	case inf:
		return math.Float64frombits(ieee.Binary64.Inf(false)), nil
	case negInf:
		return math.Float64frombits(ieee.Binary64.Inf(true)), nil
	}

	d, err := decimal.Parse(s, ieee.Binary64.MaxSignificantDigits)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(ieee.Bits64(d)), nil
}

// Parse32 converts s to the nearest binary32 value.
func Parse32(s string) (float32, error) {
	switch special(s) {
	case nan:
		return math.Float32frombits(uint32(ieee.Binary32.NaN())), nil
	case inf:
		return math.Float32frombits(uint32(ieee.Binary32.Inf(false))), nil
	case negInf:
		return math.Float32frombits(uint32(ieee.Binary32.Inf(true))), nil
	}

	d, err := decimal.Parse(s, ieee.Binary32.MaxSignificantDigits)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(ieee.Bits32(d)), nil
}

// Parse16 converts s to the nearest binary16 bit pattern. The
// computation runs in binary32 and narrows, so the result is correct
// to within the intermediate's own rounding.
func Parse16(s string) (uint16, error) {
	switch special(s) {
	case nan:
		return uint16(ieee.Binary16.NaN()), nil
	case inf:
		return uint16(ieee.Binary16.Inf(false)), nil
	case negInf:
		return uint16(ieee.Binary16.Inf(true)), nil
	}

	d, err := decimal.Parse(s, ieee.Binary32.MaxSignificantDigits)
	if err != nil {
		return 0, err
	}

	return ieee.Narrow32(ieee.Bits32(d)), nil
}

// Parse128 converts s to the nearest binary128 bit pattern. The
// computation runs in binary64 and widens exactly, so magnitudes past
// the binary64 range clip to zero or infinity even where binary128
// could represent them.
func Parse128(s string) (ieee.Bits128, error) {
	switch special(s) {
	case nan:
		return ieee.NaN128(), nil
	case inf:
		return ieee.Inf128(false), nil
	case negInf:
		return ieee.Inf128(true), nil
	}

	d, err := decimal.Parse(s, ieee.Binary64.MaxSignificantDigits)
	if err != nil {
		return ieee.Bits128{}, err
	}

	return ieee.Widen64(ieee.Bits64(d)), nil
}
