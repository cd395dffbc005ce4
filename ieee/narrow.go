package ieee

// Narrow32 converts a binary32 pattern to the nearest binary16
// pattern, rounding ties to even. The binary32 value is exact input
// to the rounding, so overflow lands on the infinity pattern and
// magnitudes below half the smallest binary16 subnormal land on the
// signed zero.
func Narrow32(b uint32) uint16 {
	negative := b>>31 == 1
	exponent := int32(b >> 23 & (1<<8 - 1))
	mantissa := uint64(b & (1<<23 - 1))

	switch {
	case exponent == 1<<8-1 && mantissa != 0:
		return uint16(Binary16.NaN())
	case exponent == 1<<8-1:
		return uint16(Binary16.Inf(negative))
	case exponent == 0 && mantissa == 0:
		return uint16(Binary16.Zero(negative))
	}

	v := binary{
		mantissa: mantissa,
		exponent: -Binary32.Bias - int32(Binary32.MantissaBits),
		exact:    true,
	}
	if exponent > 0 {
		v.mantissa |= 1 << Binary32.MantissaBits
		v.exponent += exponent
	} else {
		// Subnormal: the zero exponent field encodes 2^(1-bias).
		v.exponent++
	}

	return uint16(assemble(v, negative, Binary16))
}
