package pow5

import (
	"math/big"
	"math/bits"
)

// Significand widths of the table entries.
const (
	mulBits64 = 125
	invBits64 = 125
	mulBits32 = 61
	invBits32 = 59
)

// uint128 is a two-limb significand.
type uint128 struct {
	lo uint64
	hi uint64
}

var (
	pow64    [326]uint128
	invPow64 [342]uint128
	pow32    [47]uint64
	invPow32 [55]uint64
)

func init() {
	one := big.NewInt(1)
	five := big.NewInt(5)
	mask := new(big.Int).Lsh(one, 64)
	mask.Sub(mask, one)

	p := big.NewInt(1)
	for q := 0; q < len(invPow64); q++ {
		blen := p.BitLen()

		// Truncated significands of 5^q.
		if q < len(pow64) {
			pow64[q] = split(shifted(p, mulBits64-blen), mask)
		}
		if q < len(pow32) {
			pow32[q] = shifted(p, mulBits32-blen).Uint64()
		}

		// Significands of 1/5^q, rounded up so the scaled product
		// never undershoots the true quotient.
		e := new(big.Int).Lsh(one, uint(blen-1+invBits64))
		e.Div(e, p)
		e.Add(e, one)
		invPow64[q] = split(e, mask)

		if q < len(invPow32) {
			e := new(big.Int).Lsh(one, uint(blen-1+invBits32))
			e.Div(e, p)
			e.Add(e, one)
			invPow32[q] = e.Uint64()
		}

		p.Mul(p, five)
	}
}

// shifted returns p shifted left by s bits (right for negative s).
func shifted(p *big.Int, s int) *big.Int {
	e := new(big.Int)
	if s >= 0 {
		return e.Lsh(p, uint(s))
	}

	return e.Rsh(p, uint(-s))
}

// split breaks e into two 64-bit limbs.
func split(e, mask *big.Int) uint128 {
	return uint128{
		lo: new(big.Int).And(e, mask).Uint64(),
		hi: new(big.Int).Rsh(e, 64).Uint64(),
	}
}

// Log2 returns floor(log2(5^q)). Exact for 0 <= q <= 3528.
func Log2(q int32) int32 {
	return int32(uint32(q) * 1217359 >> 19)
}

// CeilLog2 returns ceil(log2(5^q)). Exact for 1 <= q <= 3528.
func CeilLog2(q int32) int32 {
	return Log2(q) + 1
}

// bitLen returns the bit length of 5^q.
func bitLen(q int32) int32 {
	return Log2(q) + 1
}

// Mul64 returns floor(m * 5^q / 2^shift) for 0 <= q < 326. The result
// must fit in 64 bits; the conversion core picks shift so that it
// does.
func Mul64(m uint64, q, shift int32) uint64 {
	return mulShift64(m, &pow64[q], shift-bitLen(q)+mulBits64)
}

// Div64 returns floor(m / (5^q * 2^shift)) for 0 <= q < 342. Negative
// shifts multiply instead.
func Div64(m uint64, q, shift int32) uint64 {
	return mulShift64(m, &invPow64[q], shift+bitLen(q)-1+invBits64)
}

// Mul32 returns floor(m * 5^q / 2^shift) for 0 <= q < 47.
func Mul32(m uint32, q, shift int32) uint32 {
	return mulShift32(m, pow32[q], shift-bitLen(q)+mulBits32)
}

// Div32 returns floor(m / (5^q * 2^shift)) for 0 <= q < 55.
func Div32(m uint32, q, shift int32) uint32 {
	return mulShift32(m, invPow32[q], shift+bitLen(q)-1+invBits32)
}

// mulShift64 returns the 64-bit window (m * f) >> j for 64 < j < 128.
// The bits below the window are discarded; callers account for them
// with the divisibility predicates.
func mulShift64(m uint64, f *uint128, j int32) uint64 {
	hi1, lo1 := bits.Mul64(m, f.hi)
	hi0, _ := bits.Mul64(m, f.lo)

	mid, carry := bits.Add64(lo1, hi0, 0)
	top := hi1 + carry

	return top<<uint(128-j) | mid>>uint(j-64)
}

// mulShift32 returns the 32-bit window (m * f) >> j for 32 < j < 96.
func mulShift32(m uint32, f uint64, j int32) uint32 {
	lo := uint64(m) * uint64(uint32(f))
	hi := uint64(m) * (f >> 32)

	return uint32((lo>>32 + hi) >> uint(j-32))
}

// Divides5 reports whether 5^q divides m.
func Divides5(m uint64, q int32) bool {
	for ; q > 0; q-- {
		if m%5 != 0 {
			return false
		}
		m /= 5
	}

	return true
}

// Divides2 reports whether 2^q divides m, for 0 <= q < 64.
func Divides2(m uint64, q int32) bool {
	return m&(1<<uint(q)-1) == 0
}
