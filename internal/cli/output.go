// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string without performing I/O.
//   - Eval* functions run statements through a [calc.Evaluator].

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/fraccalc/internal/calc"
	apperrors "github.com/agbru/fraccalc/internal/errors"
	"github.com/agbru/fraccalc/internal/format"
	"github.com/agbru/fraccalc/internal/ui"
)

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Quiet prints bare values, without the "name = " prefix of
	// assignments.
	Quiet bool
	// Verbose adds the evaluation time to REPL results.
	Verbose bool
}

// FormatQuietResult returns the bare value: "5/6", "true".
func FormatQuietResult(res calc.Result) string {
	return res.String()
}

// FormatResult returns the scripting form of a result: the value, prefixed
// with "name = " when the statement wrote a variable.
func FormatResult(res calc.Result, config OutputConfig) string {
	if config.Quiet || res.Name == "" {
		return FormatQuietResult(res)
	}
	return res.Name + " = " + res.String()
}

// DisplayResult prints a result the way the REPL shows it: colored, with a
// decimal approximation and, for improper fractions, the mixed form.
func DisplayResult(out io.Writer, res calc.Result, elapsed time.Duration, config OutputConfig) {
	if config.Quiet {
		fmt.Fprintln(out, FormatQuietResult(res))
		return
	}

	prefix := "="
	if res.Name != "" {
		prefix = res.Name + " ="
	}
	line := fmt.Sprintf("  %s %s", prefix, ui.Paint(ui.ColorResult(), res.String()))

	if res.Kind == calc.KindFraction && res.Value.Den() != 1 {
		hint := "≈ " + format.Approx(res.Value)
		if mixed := format.Mixed(res.Value); mixed != res.Value.String() {
			hint = mixed + ", " + hint
		}
		line += " " + ui.Paint(ui.ColorMuted(), "("+hint+")")
	}
	if config.Verbose {
		line += " " + ui.Paint(ui.ColorMuted(), "["+format.Duration(elapsed)+"]")
	}
	fmt.Fprintln(out, line)
}

// EvalExpression evaluates a single statement and prints its result.
func EvalExpression(ctx context.Context, ev calc.Evaluator, expr string, out io.Writer, config OutputConfig) error {
	res, err := ev.Eval(ctx, expr)
	if err != nil {
		return apperrors.EvaluationError{Expr: expr, Cause: err}
	}
	fmt.Fprintln(out, FormatResult(res, config))
	return nil
}

// EvalReader evaluates the statements of r in order, one per line, and
// prints each result. Blank lines and lines starting with '#' are skipped.
// Evaluation stops at the first failing statement.
func EvalReader(ctx context.Context, ev calc.Evaluator, r io.Reader, out io.Writer, config OutputConfig) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		stmt := strings.TrimSpace(scanner.Text())
		if stmt == "" || strings.HasPrefix(stmt, "#") {
			continue
		}
		res, err := ev.Eval(ctx, stmt)
		if err != nil {
			return apperrors.EvaluationError{Expr: stmt, Line: lineNo, Cause: err}
		}
		fmt.Fprintln(out, FormatResult(res, config))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading statements: %w", err)
	}
	return nil
}
