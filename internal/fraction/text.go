package fraction

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders x as "<numerator>/<denominator>", e.g. "-1/2".
func (x Fraction) String() string {
	return strconv.FormatInt(int64(x.num), 10) + "/" + strconv.FormatInt(int64(x.Den()), 10)
}

// Scan implements fmt.Scanner. It reads two whitespace-separated integers,
// numerator then denominator, and replaces x with their reduced quotient.
// A read or parse failure, or a zero denominator, fails with
// ErrMalformedInput and leaves x unchanged.
func (x *Fraction) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 'd', 's':
	default:
		return fmt.Errorf("fraction: scan verb %%%c: %w", verb, ErrMalformedInput)
	}
	n, err := scanInt32(state)
	if err != nil {
		return fmt.Errorf("fraction: scan numerator: %w: %v", ErrMalformedInput, err)
	}
	d, err := scanInt32(state)
	if err != nil {
		return fmt.Errorf("fraction: scan denominator: %w: %v", ErrMalformedInput, err)
	}
	if d == 0 {
		return fmt.Errorf("fraction: scan %d/0: %w", n, ErrMalformedInput)
	}
	f, err := New(n, d)
	if err != nil {
		return err
	}
	*x = f
	return nil
}

func scanInt32(state fmt.ScanState) (int32, error) {
	tok, err := state.Token(true, isIntRune)
	if err != nil {
		return 0, err
	}
	if len(tok) == 0 {
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.ParseInt(string(tok), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func isIntRune(r rune) bool {
	return r == '-' || r == '+' || ('0' <= r && r <= '9')
}

// Read reads one fraction from r in the format accepted by Scan.
func Read(r io.Reader) (Fraction, error) {
	var f Fraction
	if _, err := fmt.Fscan(r, &f); err != nil {
		return Fraction{}, err
	}
	return f, nil
}

// Parse parses "n/d" or "n". Surrounding spaces are ignored. A zero
// denominator fails with ErrMalformedInput.
func Parse(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	numText, denText, hasDen := strings.Cut(s, "/")
	n, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 32)
	if err != nil {
		return Fraction{}, fmt.Errorf("fraction: parse %q: %w: %v", s, ErrMalformedInput, err)
	}
	if !hasDen {
		return FromInt(int32(n)), nil
	}
	d, err := strconv.ParseInt(strings.TrimSpace(denText), 10, 32)
	if err != nil {
		return Fraction{}, fmt.Errorf("fraction: parse %q: %w: %v", s, ErrMalformedInput, err)
	}
	if d == 0 {
		return Fraction{}, fmt.Errorf("fraction: parse %q: %w", s, ErrMalformedInput)
	}
	return New(int32(n), int32(d))
}
