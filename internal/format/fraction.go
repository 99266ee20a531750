// Package format renders values for human-facing output.
package format

import (
	"strconv"

	"github.com/agbru/fraccalc/internal/fraction"
)

// Mixed renders f as a mixed number: "7/4" becomes "1 3/4", "-7/4" becomes
// "-1 3/4". Whole numbers render without a fractional part and proper
// fractions are returned unchanged.
func Mixed(f fraction.Fraction) string {
	n, d := int64(f.Num()), int64(f.Den())
	if d == 1 {
		return strconv.FormatInt(n, 10)
	}
	whole, rem := n/d, n%d
	if whole == 0 {
		return f.String()
	}
	if rem < 0 {
		rem = -rem
	}
	return strconv.FormatInt(whole, 10) + " " + strconv.FormatInt(rem, 10) + "/" + strconv.FormatInt(d, 10)
}

// Approx renders the float value of f rounded to six decimals with
// trailing zeros trimmed, for display next to the exact fraction.
func Approx(f fraction.Fraction) string {
	s := strconv.FormatFloat(f.Float(), 'f', 6, 64)
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "-0" {
		return "0"
	}
	return s
}
