package decimal

import (
	"github.com/zeebo/errs"
)

// Error is the class of decimal lexing errors.
var Error = errs.Class("decimal")

// ErrInvalidCharacter is returned for any input that does not match
// the numeric grammar: an empty input, a character outside the
// grammar, a second decimal point, a missing or malformed exponent
// digit run, or unconsumed trailing characters.
var ErrInvalidCharacter = Error.New("invalid character")

// Exponent saturation for overlong exponent digit runs. Far outside
// every format's clipping thresholds.
const (
	maxExponentDigits = 5
	saturatedExponent = 1 << 20
)

// Value is a signed fixed point base 10 number:
//
//  number = mantissa * 10^exponent, negated if negative
//
// Digits counts the significant digits accumulated into the mantissa;
// a zero mantissa counts zero digits regardless of how it was spelled.
// Digits plus the exponent bounds the magnitude of the value, which
// is what the binary conversion clips on.
type Value struct {
	Negative bool
	Mantissa uint64
	Digits   int32
	Exponent int32
}

// Parse lexes s into a Value, accumulating at most maxDigits
// significant digits into the mantissa. The whole input must be
// consumed or Parse fails with ErrInvalidCharacter.
func Parse(s string, maxDigits int32) (v Value, err error) {
	if len(s) == 0 {
		return v, ErrInvalidCharacter
	}

	i := 0
	switch s[i] {
	case '-':
		v.Negative = true
		i++
	case '+':
		i++
	}

	sawDot := false
	for ; i < len(s); i++ {
		c := s[i]

		if c == '.' {
			if sawDot {
				return Value{}, ErrInvalidCharacter
			}
			sawDot = true
			continue
		}
		if c < '0' || c > '9' {
			break
		}

		if v.Digits < maxDigits {
			v.Mantissa = v.Mantissa*10 + uint64(c-'0')
			if v.Mantissa != 0 {
				v.Digits++
			}
			if sawDot {
				v.Exponent--
			}
		} else if !sawDot {
			v.Exponent++
		}
	}

	if i == len(s) {
		return v, nil
	}
	if s[i] != 'e' && s[i] != 'E' {
		return Value{}, ErrInvalidCharacter
	}
	i++

	negative := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		negative = s[i] == '-'
		i++
	}
	if i == len(s) {
		return Value{}, ErrInvalidCharacter
	}

	var exp, digits int32
	for ; i < len(s); i++ {
		c := s[i]

		if c < '0' || c > '9' {
			return Value{}, ErrInvalidCharacter
		}

		digits++
		if digits > maxExponentDigits {
			// Overwhelmingly out of range; the magnitude is decided
			// and the scan short-circuits.
			if negative {
				v.Exponent = -saturatedExponent
			} else {
				v.Exponent = saturatedExponent
			}

			return v, nil
		}
		exp = exp*10 + int32(c-'0')
	}

	if negative {
		exp = -exp
	}
	v.Exponent += exp

	return v, nil
}
