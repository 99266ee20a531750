package fraction

import (
	"errors"
	"math"
	"testing"
)

func TestFromFloat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      float64
		want    Fraction
		wantErr bool
	}{
		{0.5, MustNew(1, 2), false},
		{1, One, false},
		{-1.5, MustNew(-3, 2), false},
		{0, Zero, false},
		{0.3333, MustNew(333, 1000), false},
		{0.0009, Zero, false},
		{-0.0009, Zero, false},
		{0.29, MustNew(29, 100), false},
		{2000000, FromInt(2000000), false},
		{3000000, Fraction{}, true},
		{math.NaN(), Fraction{}, true},
		{math.Inf(1), Fraction{}, true},
		{math.Inf(-1), Fraction{}, true},
	}

	for _, tt := range tests {
		tt := tt
		got, err := FromFloat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("FromFloat(%g) error = %v, want ErrOverflow", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("FromFloat(%g) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromFloat(%g) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestFromFloatResolution checks that values closer than 1/1000 collapse
// to the same fraction.
func TestFromFloatResolution(t *testing.T) {
	t.Parallel()
	a, err := FromFloat(0.1234)
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromFloat(0.1239)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("FromFloat(0.1234) = %v, FromFloat(0.1239) = %v; want equal", a, b)
	}
}

func TestMixedArithmetic(t *testing.T) {
	t.Parallel()
	half := MustNew(1, 2)
	tests := []struct {
		name string
		got  func() (Fraction, error)
		want Fraction
	}{
		{"fraction + 1", func() (Fraction, error) { return ApplyFloat(OpAdd, half, 1) }, MustNew(3, 2)},
		{"1 + fraction", func() (Fraction, error) { return FloatApply(OpAdd, 1, half) }, MustNew(3, 2)},
		{"fraction - 1", func() (Fraction, error) { return ApplyFloat(OpSub, half, 1) }, MustNew(-1, 2)},
		{"1 - fraction", func() (Fraction, error) { return FloatApply(OpSub, 1, half) }, half},
		{"fraction * 2", func() (Fraction, error) { return ApplyFloat(OpMul, FromInt(2), 2) }, FromInt(4)},
		{"2 * fraction", func() (Fraction, error) { return FloatApply(OpMul, 2, FromInt(2)) }, FromInt(4)},
		{"fraction / 2", func() (Fraction, error) { return ApplyFloat(OpDiv, half, 2) }, MustNew(1, 4)},
		{"2 / fraction", func() (Fraction, error) { return FloatApply(OpDiv, 2, half) }, FromInt(4)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.got()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMixedArithmeticErrors(t *testing.T) {
	t.Parallel()
	if _, err := ApplyFloat(OpDiv, One, 0.0001); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("1 / 0.0001 error = %v, want ErrDivideByZero (0.0001 truncates to 0)", err)
	}
	if _, err := FloatApply(OpAdd, math.NaN(), One); !errors.Is(err, ErrOverflow) {
		t.Errorf("NaN + 1 error = %v, want ErrOverflow", err)
	}
	if _, err := ApplyFloat(OpAdd, One, math.Inf(1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("1 + Inf error = %v, want ErrOverflow", err)
	}
}

func TestMixedComparison(t *testing.T) {
	t.Parallel()
	half, third := MustNew(1, 2), MustNew(1, 3)
	tests := []struct {
		name  string
		check func() (bool, error)
		want  bool
	}{
		{"1/1 == 1", func() (bool, error) { return CompareFloat(RelEq, One, 1) }, true},
		{"1/1 != 2", func() (bool, error) { return CompareFloat(RelNe, One, 2) }, true},
		{"1/2 == 0.5", func() (bool, error) { return CompareFloat(RelEq, half, 0.5) }, true},
		{"0.5 == 1/2", func() (bool, error) { return FloatCompare(RelEq, 0.5, half) }, true},
		{"1/2 > 0", func() (bool, error) { return CompareFloat(RelGt, half, 0) }, true},
		{"1 > 1/2", func() (bool, error) { return FloatCompare(RelGt, 1, half) }, true},
		{"0 < 1/2", func() (bool, error) { return FloatCompare(RelLt, 0, half) }, true},
		{"1/2 < 1", func() (bool, error) { return CompareFloat(RelLt, half, 1) }, true},
		{"1/2 >= 0", func() (bool, error) { return CompareFloat(RelGe, half, 0) }, true},
		{"1 >= 1/2", func() (bool, error) { return FloatCompare(RelGe, 1, half) }, true},
		{"0 <= 1/2", func() (bool, error) { return FloatCompare(RelLe, 0, half) }, true},
		{"1/2 <= 1", func() (bool, error) { return CompareFloat(RelLe, half, 1) }, true},
		{"1/3 != 0.333 after truncation", func() (bool, error) { return CompareFloat(RelNe, third, 0.3333) }, true},
		{"0.5 < 1/3 is false", func() (bool, error) { return FloatCompare(RelLt, 0.5, third) }, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.check()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := CompareFloat(RelEq, One, math.NaN()); !errors.Is(err, ErrOverflow) {
		t.Errorf("comparison with NaN error = %v, want ErrOverflow", err)
	}
}
