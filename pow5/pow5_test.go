package pow5

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// bigPow5 returns 5^q.
func bigPow5(q int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(q)), nil)
}

// bigMul returns floor(m * 5^q / 2^shift) with arbitrary precision.
func bigMul(m uint64, q, shift int32) uint64 {
	e := new(big.Int).SetUint64(m)
	e.Mul(e, bigPow5(q))

	return shifted(e, int(-shift)).Uint64()
}

// bigDiv returns floor(m / (5^q * 2^shift)) with arbitrary precision.
func bigDiv(m uint64, q, shift int32) uint64 {
	e := new(big.Int).SetUint64(m)
	if shift < 0 {
		e.Lsh(e, uint(-shift))
		e.Div(e, bigPow5(q))
	} else {
		e.Div(e, new(big.Int).Lsh(bigPow5(q), uint(shift)))
	}

	return e.Uint64()
}

func TestTables(t *testing.T) {
	type TC struct {
		name     string
		actual   interface{}
		expected interface{}
		Mark     error
	}

	// Expected entries are the published 128/64-bit power of five
	// significands for q = 0 and q = 1.
	tcs := []TC{
		{
			name:     "pow64[0]",
			actual:   pow64[0],
			expected: uint128{lo: 0, hi: 1 << 60},
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "pow64[1]",
			actual:   pow64[1],
			expected: uint128{lo: 0, hi: 5 << 58},
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "invPow64[0]",
			actual:   invPow64[0],
			expected: uint128{lo: 1, hi: 1 << 61},
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "pow32[0]",
			actual:   pow32[0],
			expected: uint64(1 << 60),
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "pow32[1]",
			actual:   pow32[1],
			expected: uint64(5 << 58),
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "invPow32[0]",
			actual:   invPow32[0],
			expected: uint64(1<<59 + 1),
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "invPow32[1]",
			actual:   invPow32[1],
			expected: uint64(461168601842738791),
			Mark:     oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.expected, tc.actual, tc.Mark, spew.Sdump(tc.actual))
		})
	}
}

func TestLog2(t *testing.T) {
	p := big.NewInt(1)
	five := big.NewInt(5)

	for q := int32(0); q <= 400; q++ {
		blen := int32(p.BitLen())

		require.Equal(t, blen-1, Log2(q), "q=%d", q)
		if q > 0 {
			// 5^q is never a power of two, so the ceiling is the bit
			// length itself.
			require.Equal(t, blen, CeilLog2(q), "q=%d", q)
		}

		p.Mul(p, five)
	}
}

func TestMul64(t *testing.T) {
	type TC struct {
		name  string
		m     uint64
		q     int32
		shift int32
		Mark  error
	}

	tcs := []TC{
		{
			name: "identity",
			m:    1,
			Mark: oops.New("unexpected"),
		},
		{
			name:  "shift only",
			m:     1,
			shift: 3,
			Mark:  oops.New("unexpected"),
		},
		{
			name: "small product",
			m:    7,
			q:    1,
			Mark: oops.New("unexpected"),
		},
		{
			name:  "negative shift multiplies",
			m:     3,
			q:     1,
			shift: -2,
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "even mantissa halved",
			m:     9007199254740992,
			shift: 1,
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "odd mantissa floored",
			m:     9007199254740993,
			shift: 1,
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "exact table width",
			m:     12345678901234567,
			q:     22,
			shift: 51,
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "truncated table width",
			m:     10000000000000000,
			q:     200,
			shift: 464,
			Mark:  oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			actual := Mul64(tc.m, tc.q, tc.shift)
			require.Equal(t, bigMul(tc.m, tc.q, tc.shift), actual, tc.Mark)
		})
	}
}

func TestDiv64(t *testing.T) {
	type TC struct {
		name  string
		m     uint64
		q     int32
		shift int32
		Mark  error
	}

	tcs := []TC{
		{
			name:  "three tenths",
			m:     3,
			q:     1,
			shift: -55,
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "exact cancellation",
			m:     2384185791015625, // 5^22
			q:     22,
			shift: -52,
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "full digit budget",
			m:     17976931348623157,
			q:     100,
			shift: -233,
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "unit mantissa deep table",
			m:     1,
			q:     54,
			shift: -179,
			Mark:  oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			actual := Div64(tc.m, tc.q, tc.shift)
			require.Equal(t, bigDiv(tc.m, tc.q, tc.shift), actual, tc.Mark)
		})
	}
}

func TestMul32(t *testing.T) {
	type TC struct {
		name  string
		m     uint32
		q     int32
		shift int32
		Mark  error
	}

	tcs := []TC{
		{
			name: "identity",
			m:    1,
			Mark: oops.New("unexpected"),
		},
		{
			name: "small product",
			m:    7,
			q:    1,
			Mark: oops.New("unexpected"),
		},
		{
			name:  "interior shift",
			m:     3141,
			q:     10,
			shift: 10,
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "widest window",
			m:     999999999,
			q:     38,
			shift: 93,
			Mark:  oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			actual := Mul32(tc.m, tc.q, tc.shift)
			require.Equal(t, uint32(bigMul(uint64(tc.m), tc.q, tc.shift)), actual, tc.Mark)
		})
	}
}

func TestDiv32(t *testing.T) {
	type TC struct {
		name  string
		m     uint32
		q     int32
		shift int32
		Mark  error
	}

	tcs := []TC{
		{
			name:  "three fifths scaled",
			m:     3,
			q:     1,
			shift: -26,
			Mark:  oops.New("unexpected"),
		},
		{
			name:  "full digit budget deep table",
			m:     999999999,
			q:     54,
			shift: -121,
			Mark:  oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			actual := Div32(tc.m, tc.q, tc.shift)
			require.Equal(t, uint32(bigDiv(uint64(tc.m), tc.q, tc.shift)), actual, tc.Mark)
		})
	}
}

func TestDivides(t *testing.T) {
	type TC struct {
		name     string
		fn       func() bool
		expected bool
		Mark     error
	}

	tcs := []TC{
		{
			name:     "divides5 exact power",
			fn:       func() bool { return Divides5(125, 3) },
			expected: true,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "divides5 short one factor",
			fn:       func() bool { return Divides5(125, 4) },
			expected: false,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "divides5 zero power",
			fn:       func() bool { return Divides5(7, 0) },
			expected: true,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "divides2 trailing zeros",
			fn:       func() bool { return Divides2(80, 4) },
			expected: true,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "divides2 short one factor",
			fn:       func() bool { return Divides2(80, 5) },
			expected: false,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "divides2 zero power",
			fn:       func() bool { return Divides2(7, 0) },
			expected: true,
			Mark:     oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.expected, tc.fn(), tc.Mark)
		})
	}
}
