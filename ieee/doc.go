// Package ieee converts lexed decimal values into IEEE-754 binary
// interchange bit patterns.
//
// Formats
//
// A pattern is laid out sign first, then the biased exponent, then
// the stored mantissa:
//
//  | Format    | Sign | Exponent | Mantissa | Bias  |
//  |-----------|------|----------|----------|-------|
//  | Binary16  | 1    | 5        | 10       | 15    |
//  | Binary32  | 1    | 8        | 23       | 127   |
//  | Binary64  | 1    | 11       | 52       | 1023  |
//  | Binary128 | 1    | 15       | 112      | 16383 |
//  |-----------|------|----------|----------|-------|
//
// Binary32 and Binary64 have full conversion pipelines (Bits32,
// Bits64). Binary16 values are produced by converting through the
// Binary32 pipeline and narrowing with Narrow32; Binary128 values by
// converting through the Binary64 pipeline and widening with Widen64.
// Narrowing rounds once more (nearest, ties to even), so a binary16
// result is correct to within the binary32 intermediate; widening is
// exact but clips magnitude at the binary64 range.
//
// Conversion
//
// Bits32 and Bits64 first clip: a zero mantissa, or a decimal digit
// count plus exponent at or below the format's minimum, yields a
// signed zero; at or above the maximum, a signed infinity. In-range
// values are rescaled from a power of ten to a power of two with the
// pow5 kernel, keeping one bit more than the stored mantissa width
// and a flag recording whether the rescale was exact. The final
// rounding is to nearest with ties to even: a true tie is recognized
// only when the rescale was exact and every discarded bit is zero,
// and resolves toward the candidate with an even low mantissa bit.
// Mantissa overflow during rounding carries into the exponent field;
// exponent overflow produces the infinity pattern.
package ieee
