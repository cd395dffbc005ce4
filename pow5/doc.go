// Package pow5 provides the fixed-width arithmetic kernel for scaling
// integers by powers of five and two.
//
// Converting a decimal mantissa m and decimal exponent e into a binary
// mantissa requires computing
//
//  floor(m * 10^e / 2^k) = floor(m * 5^e / 2^(k-e))
//
// without arbitrary precision arithmetic. The kernel does this with
// precomputed fixed-width significands of 5^q: each table entry holds
// the most significant bits of 5^q (or of 1/5^q, rounded up), split
// into 64-bit limbs, so that a scaled product reduces to one or two
// native multiplications and a shift.
//
//  | Table     | Entry width | Limbs | Indices |
//  |-----------|-------------|-------|---------|
//  | pow64     | 125 bits    | 2     | 0..325  |
//  | invPow64  | 126 bits    | 2     | 0..341  |
//  | pow32     | 61 bits     | 1     | 0..46   |
//  | invPow32  | 60 bits     | 1     | 0..54   |
//
// The tables are filled once at package init from exact math/big
// arithmetic and are read-only afterwards. The conversion entry points
// bound their decimal exponents before calling into this package, so
// the table indices above cover every reachable input; out of range
// indices panic.
//
// The truncated entries make Mul64 and friends floor approximations in
// general. Callers recover exactness with the Divides5 and Divides2
// predicates, which report whether the discarded remainder was zero.
package pow5
