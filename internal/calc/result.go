package calc

import (
	"strconv"

	"github.com/agbru/fraccalc/internal/fraction"
)

// ResultKind tells which field of a Result carries the value.
type ResultKind int

const (
	// KindFraction results carry Value.
	KindFraction ResultKind = iota
	// KindBool results come from comparisons and carry Truth.
	KindBool
)

func (k ResultKind) String() string {
	if k == KindBool {
		return "bool"
	}
	return "fraction"
}

// Result is the outcome of one statement.
type Result struct {
	Kind  ResultKind
	Value fraction.Fraction
	Truth bool
	// Name is the variable an assignment or step wrote, empty otherwise.
	Name string
}

// String renders the value alone: "5/6", "true".
func (r Result) String() string {
	if r.Kind == KindBool {
		return strconv.FormatBool(r.Truth)
	}
	return r.Value.String()
}

// Binding is a named variable and its current value.
type Binding struct {
	Name  string
	Value fraction.Fraction
}
