// Package decimal lexes the textual form of a base 10 number.
//
// The equation for a lexed value is:
//
//  number = mantissa * 10 ^ exponent
//
// Where mantissa is an unscaled unsigned integer and exponent is a
// base 10 exponent. For example:
//
//  1.23 = 123 * 10^-2
//
// Grammar
//
// The accepted grammar is:
//
//  ['-'|'+'] digit* ['.' digit*] [('e'|'E') ['-'|'+'] digit+]
//
// The whole input must match; a leftover character (including leading
// or trailing whitespace) is an error. A body with no digits at all
// ("-", ".", "-.") lexes as mantissa zero. The empty string is an
// error.
//
// Digit Budget
//
// The caller supplies the number of significant digits its target
// binary format can absorb. Digits accumulate into the mantissa only
// up to that budget; leading zeros cost nothing while the mantissa is
// still zero. Digits past the budget are scanned but dropped, with
// the exponent adjusted so the magnitude of the value stays correct:
//
//  | Digit                     | Mantissa   | Exponent |
//  |---------------------------|------------|----------|
//  | within budget, integer    | m*10 + d   |          |
//  | within budget, fractional | m*10 + d   | -1       |
//  | dropped, integer          |            | +1       |
//  | dropped, fractional       |            |          |
//  |---------------------------|------------|----------|
//
// Dropping instead of rounding is deliberate: the binary conversion
// only guarantees correct rounding for inputs within the format's
// significant digit budget, and extending past it would require the
// arbitrary precision arithmetic the converter exists to avoid.
//
// Exponent Suffix
//
// The exponent suffix accumulates at most five digits. A sixth digit
// (leading zeros included) names a magnitude no supported binary
// format can represent, so the scan stops and the exponent saturates
// to ±2^20, which the conversion's clipping thresholds turn into a
// signed zero or infinity. This bounds the work per input without
// ever overflowing the 32-bit exponent.
package decimal
