package fraction

import (
	"fmt"
	"math"
)

// Op is a binary arithmetic operator.
type Op int

// Arithmetic operators accepted by Apply, ApplyFloat and FloatApply.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// String returns the operator symbol.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Add returns x + y, computed as (a·d + c·b) / (b·d).
func (x Fraction) Add(y Fraction) (Fraction, error) {
	return crossCombine(OpAdd, x, y, safeAdd)
}

// Sub returns x - y, computed as (a·d - c·b) / (b·d).
func (x Fraction) Sub(y Fraction) (Fraction, error) {
	return crossCombine(OpSub, x, y, safeSub)
}

// Mul returns x * y, computed as (a·c) / (b·d).
func (x Fraction) Mul(y Fraction) (Fraction, error) {
	n, err := safeMul(x.num, y.num)
	if err != nil {
		return Fraction{}, opError(OpMul, x, y, err)
	}
	d, err := safeMul(x.Den(), y.Den())
	if err != nil {
		return Fraction{}, opError(OpMul, x, y, err)
	}
	return New(n, d)
}

// Div returns x / y, computed as (a·d) / (b·c). It fails with
// ErrDivideByZero when y is zero.
func (x Fraction) Div(y Fraction) (Fraction, error) {
	if y.num == 0 {
		return Fraction{}, opError(OpDiv, x, y, ErrDivideByZero)
	}
	n, err := safeMul(x.num, y.Den())
	if err != nil {
		return Fraction{}, opError(OpDiv, x, y, err)
	}
	d, err := safeMul(x.Den(), y.num)
	if err != nil {
		return Fraction{}, opError(OpDiv, x, y, err)
	}
	f, err := New(n, d)
	if err != nil {
		return Fraction{}, opError(OpDiv, x, y, err)
	}
	return f, nil
}

// Neg returns -x. Only math.MinInt32/1 cannot be negated.
func (x Fraction) Neg() (Fraction, error) {
	if x.num == math.MinInt32 {
		return Fraction{}, fmt.Errorf("fraction: -(%v): %w", x, ErrOverflow)
	}
	return Fraction{num: -x.num, den: x.den}, nil
}

// Apply returns a op b.
func Apply(op Op, a, b Fraction) (Fraction, error) {
	switch op {
	case OpAdd:
		return a.Add(b)
	case OpSub:
		return a.Sub(b)
	case OpMul:
		return a.Mul(b)
	case OpDiv:
		return a.Div(b)
	}
	return Fraction{}, fmt.Errorf("fraction: unknown operator %v", op)
}

func crossCombine(op Op, x, y Fraction, combine func(a, b int32) (int32, error)) (Fraction, error) {
	a, err := safeMul(x.num, y.Den())
	if err != nil {
		return Fraction{}, opError(op, x, y, err)
	}
	b, err := safeMul(y.num, x.Den())
	if err != nil {
		return Fraction{}, opError(op, x, y, err)
	}
	n, err := combine(a, b)
	if err != nil {
		return Fraction{}, opError(op, x, y, err)
	}
	d, err := safeMul(x.Den(), y.Den())
	if err != nil {
		return Fraction{}, opError(op, x, y, err)
	}
	return New(n, d)
}

func opError(op Op, x, y Fraction, err error) error {
	return fmt.Errorf("fraction: %v %v %v: %w", x, op, y, err)
}
