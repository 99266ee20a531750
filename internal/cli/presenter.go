package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/agbru/fraccalc/internal/calc"
	apperrors "github.com/agbru/fraccalc/internal/errors"
	"github.com/agbru/fraccalc/internal/ui"
)

// ExitCodeFor maps an error returned by the evaluation paths to a process
// exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	if apperrors.IsContextError(err) {
		return apperrors.ExitErrorCanceled
	}
	var cfgErr apperrors.ConfigError
	if errors.As(err, &cfgErr) {
		return apperrors.ExitErrorConfig
	}
	switch calc.ErrorKind(err) {
	case calc.KindSyntax, calc.KindMalformedInput, calc.KindUnknownVariable:
		return apperrors.ExitErrorInput
	case calc.KindOverflow, calc.KindDivideByZero, calc.KindInvalidConstruction:
		return apperrors.ExitErrorArithmetic
	}
	return apperrors.ExitErrorGeneric
}

// HandleError prints err and returns the matching exit code. A nil error
// prints nothing.
func HandleError(err error, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sEvaluation canceled.%s\n", ui.ColorWarning(), ui.ColorReset())
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sEvaluation timed out.%s\n", ui.ColorWarning(), ui.ColorReset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
	}
	return ExitCodeFor(err)
}
