// Package atof converts decimal text into exact nearest IEEE-754
// binary floating point values.
//
// The conversion is correctly rounded (nearest, ties to even) for the
// half, single, double, and quad interchange formats, using only
// fixed-width integer arithmetic and precomputed power of five
// tables; there is no arbitrary precision fallback. Out of range
// magnitudes are not errors: they convert to the signed zero or
// signed infinity of the target format.
//
// Input Grammar
//
// Special tokens are matched case-insensitively, everything else must
// match the numeric grammar exactly, with nothing left over:
//
//  "nan" | "inf" | "+inf" | "-inf"
//  ['-'|'+'] digit* ['.' digit*] [('e'|'E') ['-'|'+'] digit+]
//
// There is no whitespace trimming and no partial parse; the only
// error is ErrInvalidCharacter.
//
// Formats
//
//  | Function | Returns      | Computed in      |
//  |----------|--------------|------------------|
//  | Parse16  | uint16 bits  | binary32, narrow |
//  | Parse32  | float32      | binary32         |
//  | Parse64  | float64      | binary64         |
//  | Parse128 | ieee.Bits128 | binary64, widen  |
//  |----------|--------------|------------------|
//
// Go has no native half or quad type, so Parse16 and Parse128 return
// bit patterns. Both compute in the nearest native format: binary16
// results are correct to within the binary32 intermediate's own
// rounding, and binary128 results are exact widenings of the binary64
// result (magnitudes past the binary64 range clip accordingly).
//
// Every call is a pure computation over its input. There is no shared
// mutable state, so any number of conversions may run concurrently.
package atof
