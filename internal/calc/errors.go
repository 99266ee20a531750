package calc

import (
	"errors"
	"fmt"

	"github.com/agbru/fraccalc/internal/fraction"
)

// ErrUnknownVariable is returned when a statement reads or steps a variable
// that was never assigned.
var ErrUnknownVariable = errors.New("unknown variable")

// SyntaxError reports a statement that could not be tokenized or parsed.
type SyntaxError struct {
	// Pos is the 0-based byte offset of the offending token.
	Pos int
	// Msg describes the problem.
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at column %d: %s", e.Pos+1, e.Msg)
}

// Error kinds reported by ErrorKind. They are used as metric labels and
// to choose exit codes.
const (
	KindSyntax              = "syntax"
	KindUnknownVariable     = "unknown_variable"
	KindOverflow            = "overflow"
	KindDivideByZero        = "divide_by_zero"
	KindInvalidConstruction = "invalid_construction"
	KindMalformedInput      = "malformed_input"
	KindOther               = "other"
)

// ErrorKind classifies err into one of the Kind constants.
func ErrorKind(err error) string {
	var syntaxErr *SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		return KindSyntax
	case errors.Is(err, ErrUnknownVariable):
		return KindUnknownVariable
	case errors.Is(err, fraction.ErrOverflow):
		return KindOverflow
	case errors.Is(err, fraction.ErrDivideByZero):
		return KindDivideByZero
	case errors.Is(err, fraction.ErrInvalidConstruction):
		return KindInvalidConstruction
	case errors.Is(err, fraction.ErrMalformedInput):
		return KindMalformedInput
	}
	return KindOther
}
