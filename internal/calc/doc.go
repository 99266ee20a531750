// Package calc evaluates one-line fraction statements.
//
// A statement is an expression ("1/2 + 1/3"), a comparison ("x >= 0.5"),
// an assignment ("x = 3/4"), or a C-style increment or decrement of a
// variable ("x++", "--x"). Integer literals are exact; decimal literals are
// converted with fraction.FromFloat and keep three decimal places. The
// result of the last fraction-valued statement is available as "ans".
//
// Session is the Evaluator used by the CLI, the REPL and the terminal UI.
// Each evaluation runs inside an OpenTelemetry span and is reported to an
// optional Recorder.
package calc
