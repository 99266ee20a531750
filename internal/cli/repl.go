// Package cli provides the command-line front ends of the calculator: the
// interactive REPL and the one-shot and file evaluation modes.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/agbru/fraccalc/internal/calc"
	"github.com/agbru/fraccalc/internal/logging"
	"github.com/agbru/fraccalc/internal/ui"
)

const prompt = "frac> "

// MetricsWriter renders collected metrics for the "metrics" command.
type MetricsWriter interface {
	WriteText(w io.Writer) error
}

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	Output OutputConfig
	// SessionID is shown by the "status" command.
	SessionID string
	// Metrics is optional; without it the "metrics" command reports that
	// metrics are disabled.
	Metrics MetricsWriter
	Logger  logging.Logger
}

// REPL is an interactive calculator session.
type REPL struct {
	config REPLConfig
	eval   calc.Evaluator
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a REPL reading from stdin and writing to stdout.
func NewREPL(ev calc.Evaluator, config REPLConfig) *REPL {
	if config.Logger == nil {
		config.Logger = logging.Nop()
	}
	return &REPL{
		config: config,
		eval:   ev,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start reads and evaluates lines until "exit", EOF or cancellation of
// ctx. Evaluation errors are printed and do not end the session.
func (r *REPL) Start(ctx context.Context) {
	if !r.config.Output.Quiet {
		r.printBanner()
		r.printHelp()
		fmt.Fprintln(r.out)
	}
	r.config.Logger.Debug("repl started", logging.String("session", r.config.SessionID))

	reader := bufio.NewReader(r.in)
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(r.out)
			return
		}
		fmt.Fprint(r.out, ui.Paint(ui.ColorPrompt(), prompt))

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorError(), err, ui.ColorReset())
			return
		}
		eof := err != nil

		input = strings.TrimSpace(input)
		if input != "" && !r.processCommand(ctx, input) {
			return
		}
		if eof {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════╗%s\n", ui.ColorAccent(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sFraction Calculator - Interactive Mode%s   %s║%s\n",
		ui.ColorAccent(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorAccent(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════╝%s\n\n", ui.ColorAccent(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sEnter a statement:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s1/2 + 1/3%s       arithmetic (+ - * /, parentheses, 0.25 decimals)\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sx = 3/4%s         assign a variable (ans holds the last result)\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sx++  --x%s        increment or decrement a variable by one\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sx >= 1/2%s        compare (== != < > <= >=)\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "%sCommands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %svars%s            list variables\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sreset%s           forget all variables\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %stheme <name>%s    switch color theme (%s)\n", ui.ColorWarning(), ui.ColorReset(), strings.Join(ui.ThemeNames, ", "))
	fmt.Fprintf(r.out, "  %smetrics%s         show evaluation metrics\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s          show session information\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s            display this help\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s     leave the session\n", ui.ColorWarning(), ui.ColorReset(), ui.ColorWarning(), ui.ColorReset())
}

// processCommand runs a REPL command or evaluates the line. It returns
// false when the session should end.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch {
	case cmd == "exit" || cmd == "quit":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorPrompt(), ui.ColorReset())
		return false
	case (cmd == "help" || cmd == "?") && len(args) == 0:
		r.printHelp()
	case cmd == "vars" && len(args) == 0:
		r.cmdVars()
	case cmd == "reset" && len(args) == 0:
		r.eval.Reset()
		fmt.Fprintln(r.out, "Variables cleared.")
	case cmd == "metrics" && len(args) == 0:
		r.cmdMetrics()
	case cmd == "status" && len(args) == 0:
		r.cmdStatus()
	case cmd == "theme" && len(args) <= 1:
		r.cmdTheme(args)
	default:
		r.evaluate(ctx, input)
	}
	return true
}

func (r *REPL) evaluate(ctx context.Context, input string) {
	start := time.Now()
	res, err := r.eval.Eval(ctx, input)
	if err != nil {
		var syntaxErr *calc.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Fprintf(r.out, "%s%s^%s\n", strings.Repeat(" ", len(prompt)+syntaxErr.Pos), ui.ColorError(), ui.ColorReset())
		}
		fmt.Fprintf(r.out, "  %sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}
	DisplayResult(r.out, res, time.Since(start), r.config.Output)
}

func (r *REPL) cmdVars() {
	vars := r.eval.Variables()
	if len(vars) == 0 {
		fmt.Fprintf(r.out, "%sNo variables defined.%s\n", ui.ColorMuted(), ui.ColorReset())
		return
	}
	for _, b := range vars {
		fmt.Fprintf(r.out, "  %s%-10s%s = %s\n", ui.ColorWarning(), b.Name, ui.ColorReset(), ui.Paint(ui.ColorResult(), b.Value.String()))
	}
}

func (r *REPL) cmdMetrics() {
	if r.config.Metrics == nil {
		fmt.Fprintf(r.out, "%sMetrics are disabled (start with -metrics).%s\n", ui.ColorMuted(), ui.ColorReset())
		return
	}
	if err := r.config.Metrics.WriteText(r.out); err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
	}
}

func (r *REPL) cmdTheme(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "Current theme: %s (available: %s)\n", ui.GetCurrentTheme().Name, strings.Join(ui.ThemeNames, ", "))
		return
	}
	if !slices.Contains(ui.ThemeNames, args[0]) {
		fmt.Fprintf(r.out, "%sUnknown theme: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}
	ui.SetTheme(args[0])
	fmt.Fprintf(r.out, "Theme changed to: %s\n", ui.Paint(ui.ColorPrompt(), ui.GetCurrentTheme().Name))
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sSession:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  ID:         %s%s%s\n", ui.ColorAccent(), r.config.SessionID, ui.ColorReset())
	fmt.Fprintf(r.out, "  Variables:  %s%d%s\n", ui.ColorAccent(), len(r.eval.Variables()), ui.ColorReset())
	fmt.Fprintf(r.out, "  Theme:      %s%s%s\n", ui.ColorAccent(), ui.GetCurrentTheme().Name, ui.ColorReset())
	fmt.Fprintln(r.out)
}
