// Package fraction implements Fraction, a rational number with 32-bit
// numerator and denominator.
//
// Every Fraction is kept in canonical form: the numerator and denominator
// share no common factor, the denominator is positive, and zero is always
// 0/1. Because the form is canonical, two fractions are equal exactly when
// their numerator and denominator pairs are equal, and Fraction values can be
// compared with ==.
//
// Arithmetic never silently wraps. Every intermediate sum, difference and
// product goes through overflow-checked primitives, and operations that cannot
// be represented in 32 bits return an error wrapping ErrOverflow.
//
// # Scalars
//
// Floating-point operands are converted with FromFloat, which keeps three
// decimal places: the value is scaled by 1000, truncated toward zero and
// placed over 1000. The conversion is intentionally lossy. 0.3333 and 0.333
// both become 333/1000, and mixed operations such as ApplyFloat and
// CompareFloat inherit that resolution.
//
// # Text
//
// A Fraction prints as "<numerator>/<denominator>". *Fraction implements
// fmt.Scanner and reads two whitespace-separated integers, numerator first.
package fraction
