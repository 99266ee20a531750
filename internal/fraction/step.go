package fraction

import "fmt"

// Inc adds one to x and returns the new value, like a prefix ++.
// On overflow x is left unchanged.
func (x *Fraction) Inc() (Fraction, error) {
	if err := x.step(1); err != nil {
		return Fraction{}, err
	}
	return *x, nil
}

// Dec subtracts one from x and returns the new value, like a prefix --.
func (x *Fraction) Dec() (Fraction, error) {
	if err := x.step(-1); err != nil {
		return Fraction{}, err
	}
	return *x, nil
}

// PostInc adds one to x and returns the value x held before, like a
// postfix ++.
func (x *Fraction) PostInc() (Fraction, error) {
	old := *x
	if err := x.step(1); err != nil {
		return Fraction{}, err
	}
	return old, nil
}

// PostDec subtracts one from x and returns the value x held before.
func (x *Fraction) PostDec() (Fraction, error) {
	old := *x
	if err := x.step(-1); err != nil {
		return Fraction{}, err
	}
	return old, nil
}

// step adds sign·den/den to x.
func (x *Fraction) step(sign int32) error {
	n, err := safeAdd(x.num, sign*x.Den())
	if err != nil {
		return fmt.Errorf("fraction: step %v by %d: %w", *x, sign, err)
	}
	f, err := New(n, x.Den())
	if err != nil {
		return err
	}
	*x = f
	return nil
}
