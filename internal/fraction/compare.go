package fraction

import "fmt"

// Rel is a comparison relation.
type Rel int

// Relations accepted by Compare, CompareFloat and FloatCompare.
const (
	RelEq Rel = iota
	RelNe
	RelLt
	RelGt
	RelLe
	RelGe
)

// String returns the relation symbol.
func (r Rel) String() string {
	switch r {
	case RelEq:
		return "=="
	case RelNe:
		return "!="
	case RelLt:
		return "<"
	case RelGt:
		return ">"
	case RelLe:
		return "<="
	case RelGe:
		return ">="
	}
	return fmt.Sprintf("Rel(%d)", int(r))
}

// Equal reports whether x and y are the same rational number. Both are in
// lowest terms, so this is an exact comparison of the stored pairs.
func (x Fraction) Equal(y Fraction) bool {
	return x == y
}

// Less reports whether x < y by comparing a·d with c·b.
//
// The cross products are formed in 64 bits. Two int32 factors cannot
// overflow int64, so the ordering is exact for every pair of fractions.
func (x Fraction) Less(y Fraction) bool {
	return int64(x.num)*int64(y.Den()) < int64(y.num)*int64(x.Den())
}

// Greater reports whether x > y.
func (x Fraction) Greater(y Fraction) bool {
	return y.Less(x)
}

// LessEq reports whether x <= y.
func (x Fraction) LessEq(y Fraction) bool {
	return x.Less(y) || x.Equal(y)
}

// GreaterEq reports whether x >= y.
func (x Fraction) GreaterEq(y Fraction) bool {
	return x.Greater(y) || x.Equal(y)
}

// Cmp returns -1 if x < y, 0 if x == y and +1 if x > y.
func (x Fraction) Cmp(y Fraction) int {
	switch {
	case x.Less(y):
		return -1
	case y.Less(x):
		return 1
	}
	return 0
}

// Compare reports whether a rel b holds. An unknown relation never holds.
func Compare(rel Rel, a, b Fraction) bool {
	switch rel {
	case RelEq:
		return a.Equal(b)
	case RelNe:
		return !a.Equal(b)
	case RelLt:
		return a.Less(b)
	case RelGt:
		return a.Greater(b)
	case RelLe:
		return a.LessEq(b)
	case RelGe:
		return a.GreaterEq(b)
	}
	return false
}
