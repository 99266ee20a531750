package fraction

import (
	"fmt"
	"math"
)

// Fraction is a rational number with int32 numerator and denominator.
//
// The denominator is stored biased by one, so the zero value is 0/1 and
// ready to use. Valid values come from the zero value, New, FromInt,
// FromFloat, Parse, Scan, or arithmetic on valid values. Fraction has value
// semantics and may be copied freely.
type Fraction struct {
	num int32
	den int32
}

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Fraction{}
	One  = Fraction{num: 1}
)

// New returns n/d in lowest terms. It fails with ErrInvalidConstruction when
// d is zero, and with ErrOverflow when the normalised value does not fit in
// 32 bits (math.MinInt32/-1, for instance).
func New(n, d int32) (Fraction, error) {
	if d == 0 {
		return Fraction{}, fmt.Errorf("fraction: new %d/0: %w", n, ErrInvalidConstruction)
	}
	return normalize(int64(n), int64(d))
}

// MustNew is like New but panics on error. It is meant for constants and
// tests.
func MustNew(n, d int32) Fraction {
	f, err := New(n, d)
	if err != nil {
		panic(err)
	}
	return f
}

// FromInt returns n/1.
func FromInt(n int32) Fraction {
	return Fraction{num: n}
}

// Num returns the numerator. Its sign is the sign of the fraction.
func (x Fraction) Num() int32 {
	return x.num
}

// Den returns the denominator, which is always positive.
func (x Fraction) Den() int32 {
	return x.den + 1
}

// IsZero reports whether x is 0/1.
func (x Fraction) IsZero() bool {
	return x.num == 0
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Fraction) Sign() int {
	switch {
	case x.num < 0:
		return -1
	case x.num > 0:
		return 1
	}
	return 0
}

// Float returns the nearest float64 to x.
func (x Fraction) Float() float64 {
	return float64(x.num) / float64(x.Den())
}

// SetNum replaces the numerator and re-reduces. x is unchanged on error.
func (x *Fraction) SetNum(n int32) error {
	f, err := New(n, x.Den())
	if err != nil {
		return err
	}
	*x = f
	return nil
}

// SetDen replaces the denominator and re-reduces. A zero d fails with
// ErrInvalidConstruction and leaves x unchanged.
func (x *Fraction) SetDen(d int32) error {
	f, err := New(x.num, d)
	if err != nil {
		return err
	}
	*x = f
	return nil
}

// normalize reduces n/d by their gcd and moves the sign to the numerator.
// The work is done in 64 bits so that negating math.MinInt32 is detected
// instead of wrapping. d must be non-zero.
func normalize(n, d int64) (Fraction, error) {
	if n == 0 {
		return Fraction{}, nil
	}
	g := gcd(abs(n), abs(d))
	n /= g
	d /= g
	if d < 0 {
		n, d = -n, -d
	}
	if n < math.MinInt32 || n > math.MaxInt32 || d > math.MaxInt32 {
		return Fraction{}, fmt.Errorf("fraction: normalize %d/%d: %w", n, d, ErrOverflow)
	}
	return Fraction{num: int32(n), den: int32(d - 1)}, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
