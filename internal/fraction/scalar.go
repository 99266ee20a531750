package fraction

import (
	"fmt"
	"math"
)

// Resolution is the fixed denominator used when converting floats.
const Resolution = 1000

// FromFloat converts f to a fraction with a resolution of 1/Resolution.
//
// f is narrowed to float32, multiplied by Resolution in single precision and
// truncated toward zero; the result is placed over Resolution and reduced.
// FromFloat(0.5) is 1/2 and FromFloat(0.3333) is 333/1000. NaN, infinities
// and values whose scaled form does not fit in an int32 fail with
// ErrOverflow.
func FromFloat(f float64) (Fraction, error) {
	scaled := float64(float32(float32(f) * Resolution))
	if math.IsNaN(scaled) || scaled >= 1<<31 || scaled <= -(1<<31)-1 {
		return Fraction{}, fmt.Errorf("fraction: from float %g: %w", f, ErrOverflow)
	}
	return New(int32(scaled), Resolution)
}

// ApplyFloat returns a op f, converting f with FromFloat.
func ApplyFloat(op Op, a Fraction, f float64) (Fraction, error) {
	b, err := FromFloat(f)
	if err != nil {
		return Fraction{}, err
	}
	return Apply(op, a, b)
}

// FloatApply returns f op a, converting f with FromFloat.
func FloatApply(op Op, f float64, a Fraction) (Fraction, error) {
	b, err := FromFloat(f)
	if err != nil {
		return Fraction{}, err
	}
	return Apply(op, b, a)
}

// CompareFloat reports whether a rel f holds, converting f with FromFloat.
func CompareFloat(rel Rel, a Fraction, f float64) (bool, error) {
	b, err := FromFloat(f)
	if err != nil {
		return false, err
	}
	return Compare(rel, a, b), nil
}

// FloatCompare reports whether f rel a holds, converting f with FromFloat.
func FloatCompare(rel Rel, f float64, a Fraction) (bool, error) {
	b, err := FromFloat(f)
	if err != nil {
		return false, err
	}
	return Compare(rel, b, a), nil
}
