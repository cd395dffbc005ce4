package ieee

// Format describes one IEEE-754 binary interchange format. Values are
// immutable; the four supported formats are the package-level
// descriptors below.
//
// MaxSignificantDigits is the number of decimal digits the conversion
// absorbs with guaranteed correct rounding. MinExp10 and MaxExp10 are
// the clipping thresholds on decimal digit count plus decimal
// exponent: at or below MinExp10 every value of the format rounds to
// zero, at or above MaxExp10 to infinity.
type Format struct {
	MantissaBits uint32
	ExponentBits uint32
	Bias         int32

	MaxSignificantDigits int32
	MinExp10             int32
	MaxExp10             int32
}

var (
	Binary16 = &Format{
		MantissaBits:         10,
		ExponentBits:         5,
		Bias:                 15,
		MaxSignificantDigits: 5,
		MinExp10:             -9,
		MaxExp10:             6,
	}
	Binary32 = &Format{
		MantissaBits:         23,
		ExponentBits:         8,
		Bias:                 127,
		MaxSignificantDigits: 9,
		MinExp10:             -46,
		MaxExp10:             40,
	}
	Binary64 = &Format{
		MantissaBits:         52,
		ExponentBits:         11,
		Bias:                 1023,
		MaxSignificantDigits: 17,
		MinExp10:             -324,
		MaxExp10:             310,
	}
	Binary128 = &Format{
		MantissaBits:         112,
		ExponentBits:         15,
		Bias:                 16383,
		MaxSignificantDigits: 36,
		MinExp10:             -4966,
		MaxExp10:             4934,
	}
)

// Bits returns the total encoded width of the format.
func (f *Format) Bits() uint32 {
	return 1 + f.ExponentBits + f.MantissaBits
}

// maxBiasedExponent is the all-ones exponent field, which encodes
// infinities and NaNs.
func (f *Format) maxBiasedExponent() uint64 {
	return 1<<f.ExponentBits - 1
}

// pack assembles sign | exponent | mantissa. Only meaningful for
// formats no wider than 64 bits; Binary128 patterns are built as
// Bits128 values instead.
func (f *Format) pack(negative bool, exponent, mantissa uint64) uint64 {
	var sign uint64
	if negative {
		sign = 1
	}

	return sign<<(f.ExponentBits+f.MantissaBits) | exponent<<f.MantissaBits | mantissa
}

// Zero returns the bit pattern of the signed zero.
func (f *Format) Zero(negative bool) uint64 {
	return f.pack(negative, 0, 0)
}

// Inf returns the bit pattern of the signed infinity.
func (f *Format) Inf(negative bool) uint64 {
	return f.pack(negative, f.maxBiasedExponent(), 0)
}

// NaN returns the canonical quiet NaN pattern: exponent all ones and
// only the most significant mantissa bit set.
func (f *Format) NaN() uint64 {
	return f.pack(false, f.maxBiasedExponent(), 1<<(f.MantissaBits-1))
}
