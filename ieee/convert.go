package ieee

import (
	"math/bits"

	"github.com/calebcase/atof/decimal"
	"github.com/calebcase/atof/pow5"
)

// binary is a floating point value mantissa * 2^exponent. After
// rescaling, the mantissa holds one bit more than the target format
// stores (the leading bit that the encoding leaves implicit), plus at
// most one extra bit from the floor estimate of the bit length.
//
// exact records whether the rescale discarded a nonzero remainder; it
// is what lets the final rounding recognize a true halfway tie
// without carrying full-precision remainders around.
type binary struct {
	mantissa uint64
	exponent int32
	exact    bool
}

// Bits64 converts d to the nearest binary64 pattern, rounding ties to
// even. Out of range magnitudes clip silently to the signed zero or
// infinity pattern.
func Bits64(d decimal.Value) uint64 {
	f := Binary64

	if d.Mantissa == 0 || d.Digits+d.Exponent <= f.MinExp10 {
		return f.Zero(d.Negative)
	}
	if d.Digits+d.Exponent >= f.MaxExp10 {
		return f.Inf(d.Negative)
	}

	return assemble(scale64(d.Mantissa, d.Exponent, f), d.Negative, f)
}

// Bits32 converts d to the nearest binary32 pattern, rounding ties to
// even. Out of range magnitudes clip silently to the signed zero or
// infinity pattern. The mantissa must be within Binary32's digit
// budget (it fits in 30 bits).
func Bits32(d decimal.Value) uint32 {
	f := Binary32

	if d.Mantissa == 0 || d.Digits+d.Exponent <= f.MinExp10 {
		return uint32(f.Zero(d.Negative))
	}
	if d.Digits+d.Exponent >= f.MaxExp10 {
		return uint32(f.Inf(d.Negative))
	}

	return uint32(assemble(scale32(uint32(d.Mantissa), d.Exponent, f), d.Negative, f))
}

// scale64 re-expresses m10 * 10^e10 as a binary value with at least
// MantissaBits+1 significant bits.
//
// The bit length of the exact product is estimated from below with
// floor(log2(5^e10)), so the floor division keeps at least the wanted
// bits (one extra at most). The rescale is the only place a
// non-power-of-two factor appears; everything after is shifting,
// which is why a single exactness bit suffices.
func scale64(m10 uint64, e10 int32, f *Format) binary {
	prec := int32(f.MantissaBits) + 1
	top := int32(bits.Len64(m10)) - 1

	var b binary
	if e10 >= 0 {
		b.exponent = top + e10 + pow5.Log2(e10) - prec
		b.mantissa = pow5.Mul64(m10, e10, b.exponent-e10)
		b.exact = b.exponent < e10 ||
			(b.exponent-e10 < 64 && pow5.Divides2(m10, b.exponent-e10))
	} else {
		b.exponent = top + e10 - pow5.CeilLog2(-e10) - prec
		b.mantissa = pow5.Div64(m10, -e10, b.exponent-e10)
		b.exact = (b.exponent < e10 ||
			(b.exponent-e10 < 64 && pow5.Divides2(m10, b.exponent-e10))) &&
			pow5.Divides5(m10, -e10)
	}

	return b
}

// scale32 is scale64 over the narrow kernel.
func scale32(m10 uint32, e10 int32, f *Format) binary {
	prec := int32(f.MantissaBits) + 1
	top := int32(bits.Len32(m10)) - 1

	var b binary
	if e10 >= 0 {
		b.exponent = top + e10 + pow5.Log2(e10) - prec
		b.mantissa = uint64(pow5.Mul32(m10, e10, b.exponent-e10))
		b.exact = b.exponent < e10 ||
			(b.exponent-e10 < 32 && pow5.Divides2(uint64(m10), b.exponent-e10))
	} else {
		b.exponent = top + e10 - pow5.CeilLog2(-e10) - prec
		b.mantissa = uint64(pow5.Div32(m10, -e10, b.exponent-e10))
		b.exact = (b.exponent < e10 ||
			(b.exponent-e10 < 32 && pow5.Divides2(uint64(m10), b.exponent-e10))) &&
			pow5.Divides5(uint64(m10), -e10)
	}

	return b
}

// assemble rounds b to the format's stored mantissa width (nearest,
// ties to even) and packs the final pattern, handling subnormal
// shifting, the rounding carry into the exponent field, and overflow
// to infinity.
func assemble(b binary, negative bool, f *Format) uint64 {
	exponent := b.exponent + f.Bias + int32(bits.Len64(b.mantissa)) - 1
	if exponent < 0 {
		exponent = 0
	}
	if uint64(exponent) >= f.maxBiasedExponent() {
		return f.Inf(negative)
	}

	// Subnormal encodings (biased exponent zero) shift relative to the
	// minimum normal exponent instead of their own.
	base := exponent
	if base == 0 {
		base = 1
	}
	shift := uint(base - b.exponent - f.Bias - int32(f.MantissaBits))

	exact := b.exact && b.mantissa&(1<<(shift-1)-1) == 0
	half := b.mantissa >> (shift - 1) & 1
	mantissa := b.mantissa >> shift

	// A set guard bit rounds up, unless it marks a true tie and the
	// retained mantissa is already even.
	up := half == 1 && (!exact || mantissa&1 == 1)
	if up {
		mantissa++
	}
	mantissa &= 1<<f.MantissaBits - 1
	if mantissa == 0 && up {
		// The carry ran over the mantissa field. At worst this lands
		// on the infinity pattern, which is then the correctly
		// rounded result.
		exponent++
	}

	return f.pack(negative, uint64(exponent), mantissa)
}
