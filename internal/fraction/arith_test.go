package fraction

import (
	"errors"
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		op   Op
		a, b Fraction
		want Fraction
	}{
		{"add halves and thirds", OpAdd, MustNew(1, 2), MustNew(1, 3), MustNew(5, 6)},
		{"add negative", OpAdd, MustNew(1, 2), MustNew(-1, 2), Zero},
		{"sub halves and thirds", OpSub, MustNew(1, 2), MustNew(1, 3), MustNew(1, 6)},
		{"sub below zero", OpSub, MustNew(1, 3), MustNew(1, 2), MustNew(-1, 6)},
		{"mul whole by third", OpMul, MustNew(2, 1), MustNew(1, 3), MustNew(2, 3)},
		{"mul by zero", OpMul, MustNew(7, 9), Zero, Zero},
		{"div by itself", OpDiv, MustNew(1, 2), MustNew(1, 2), One},
		{"div by negative", OpDiv, MustNew(1, 2), MustNew(-1, 4), MustNew(-2, 1)},
		{"div zero by value", OpDiv, Zero, MustNew(3, 5), Zero},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Apply(tt.op, tt.a, tt.b)
			if err != nil {
				t.Fatalf("%v %v %v unexpected error: %v", tt.a, tt.op, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("%v %v %v = %v, want %v", tt.a, tt.op, tt.b, got, tt.want)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	t.Parallel()
	_, err := MustNew(1, 2).Div(Zero)
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("Div(0) error = %v, want ErrDivideByZero", err)
	}
	if errors.Is(err, ErrInvalidConstruction) {
		t.Error("division by zero must be distinct from invalid construction")
	}
}

func TestArithmeticOverflow(t *testing.T) {
	t.Parallel()
	big := FromInt(math.MaxInt32)
	tests := []struct {
		name string
		op   Op
		a, b Fraction
	}{
		{"add past max", OpAdd, big, One},
		{"sub past min", OpSub, FromInt(math.MinInt32), One},
		{"mul past max", OpMul, big, FromInt(2)},
		{"denominator product", OpAdd, MustNew(1, 65536), MustNew(1, 65537)},
		{"div past max", OpDiv, big, MustNew(1, 2)},
		{"div min by minus one", OpDiv, FromInt(math.MinInt32), FromInt(-1)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Apply(tt.op, tt.a, tt.b)
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("%v %v %v error = %v, want ErrOverflow", tt.a, tt.op, tt.b, err)
			}
		})
	}
}

func TestNeg(t *testing.T) {
	t.Parallel()
	got, err := MustNew(1, 2).Neg()
	if err != nil {
		t.Fatal(err)
	}
	if got != MustNew(-1, 2) {
		t.Errorf("-(1/2) = %v, want -1/2", got)
	}
	if _, err := FromInt(math.MinInt32).Neg(); !errors.Is(err, ErrOverflow) {
		t.Errorf("-(MinInt32) error = %v, want ErrOverflow", err)
	}
}

func TestApplyUnknownOperator(t *testing.T) {
	t.Parallel()
	if _, err := Apply(Op(42), One, One); err == nil {
		t.Error("Apply with unknown operator should fail")
	}
}

func TestOpString(t *testing.T) {
	t.Parallel()
	want := map[Op]string{OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", Op(9): "Op(9)"}
	for op, s := range want {
		if op.String() != s {
			t.Errorf("Op(%d).String() = %q, want %q", int(op), op.String(), s)
		}
	}
}
