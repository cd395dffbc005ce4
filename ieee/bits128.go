package ieee

import (
	"math/bits"
)

// Bits128 is a binary128 bit pattern held as two 64-bit halves, most
// significant half in Hi. Hi carries the sign, the 15 exponent bits,
// and the top 48 mantissa bits; Lo carries the remaining 64 mantissa
// bits.
type Bits128 struct {
	Hi uint64
	Lo uint64
}

// Zero128 returns the binary128 signed zero pattern.
func Zero128(negative bool) Bits128 {
	var sign uint64
	if negative {
		sign = 1
	}

	return Bits128{Hi: sign << 63}
}

// Inf128 returns the binary128 signed infinity pattern.
func Inf128(negative bool) Bits128 {
	b := Zero128(negative)
	b.Hi |= Binary128.maxBiasedExponent() << 48

	return b
}

// NaN128 returns the canonical binary128 quiet NaN pattern.
func NaN128() Bits128 {
	return Bits128{Hi: Binary128.maxBiasedExponent()<<48 | 1<<47}
}

// Widen64 converts a binary64 pattern to the binary128 pattern of the
// same value. Widening is exact: every binary64 value, subnormals
// included, is a normal binary128 value (or a zero, infinity, or
// NaN).
func Widen64(b uint64) Bits128 {
	negative := b>>63 == 1
	exponent := int32(b >> 52 & (1<<11 - 1))
	mantissa := b & (1<<52 - 1)

	width := int32(52)
	switch {
	case exponent == 1<<11-1 && mantissa != 0:
		return NaN128()
	case exponent == 1<<11-1:
		return Inf128(negative)
	case exponent == 0 && mantissa == 0:
		return Zero128(negative)
	case exponent == 0:
		// Subnormal: mantissa * 2^-1074 normalizes to a leading one
		// at the top of the mantissa, with the exponent tracking the
		// bits it moved.
		width = int32(bits.Len64(mantissa)) - 1
		mantissa &^= 1 << uint(width)
		exponent = width - 1074 + Binary64.Bias
	}

	exponent += Binary128.Bias - Binary64.Bias

	out := Zero128(negative)
	out.Hi |= uint64(exponent) << 48

	// Slide the explicit fraction bits up to the 112-bit field.
	if shift := uint(112 - width); shift >= 64 {
		out.Hi |= mantissa << (shift - 64)
	} else {
		out.Hi |= mantissa >> (64 - shift)
		out.Lo = mantissa << shift
	}

	return out
}
