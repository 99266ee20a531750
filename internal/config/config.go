// Package config parses the fraccalc command line, environment and optional
// TOML configuration file into an AppConfig.
//
// Priority, highest first: command-line flags, FRACCALC_* environment
// variables, the configuration file, built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/fraccalc/internal/errors"
	"github.com/agbru/fraccalc/internal/ui"
)

// EnvPrefix prefixes every environment variable read by this package.
const EnvPrefix = "FRACCALC_"

// Default values.
const (
	DefaultTheme   = "dark"
	DefaultTimeout = time.Minute
)

// Mode is the way the calculator reads statements.
type Mode int

const (
	// ModeREPL reads statements interactively from stdin.
	ModeREPL Mode = iota
	// ModeExpr evaluates the -e expression (or positional arguments).
	ModeExpr
	// ModeFile evaluates the statements of a file, one per line.
	ModeFile
	// ModeTUI runs the full-screen terminal interface.
	ModeTUI
)

func (m Mode) String() string {
	switch m {
	case ModeExpr:
		return "expr"
	case ModeFile:
		return "file"
	case ModeTUI:
		return "tui"
	}
	return "repl"
}

// AppConfig aggregates the application settings.
type AppConfig struct {
	Expr        string
	File        string
	Interactive bool
	TUI         bool
	Quiet       bool
	Verbose     bool
	NoColor     bool
	Theme       string
	Metrics     bool
	Trace       bool
	Timeout     time.Duration
	ConfigFile  string
	ShowVersion bool
}

// Mode derives the run mode from the parsed flags.
func (c AppConfig) Mode() Mode {
	switch {
	case c.Expr != "":
		return ModeExpr
	case c.File != "":
		return ModeFile
	case c.TUI:
		return ModeTUI
	}
	return ModeREPL
}

// Validate checks for conflicting or out-of-range settings.
func (c AppConfig) Validate() error {
	selected := 0
	for _, on := range []bool{c.Expr != "", c.File != "", c.Interactive, c.TUI} {
		if on {
			selected++
		}
	}
	if selected > 1 {
		return apperrors.NewConfigError("-e, -f, -i and -tui are mutually exclusive")
	}
	if !slices.Contains(ui.ThemeNames, c.Theme) {
		return apperrors.NewInvalidSettingError("theme", "unknown theme %q (available: %s)", c.Theme, strings.Join(ui.ThemeNames, ", "))
	}
	if c.Timeout < 0 {
		return apperrors.NewInvalidSettingError("timeout", "must be positive or zero, got %s", c.Timeout)
	}
	return nil
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Usage and flag parse errors are written to errWriter; -h yields
// flag.ErrHelp. Other failures are apperrors.ConfigError values.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] [expression]\n\n", programName)
		fmt.Fprintln(errWriter, "Evaluates fraction expressions such as \"1/2 + 1/3\" or \"x = 3/4\".")
		fmt.Fprintln(errWriter, "Without -e, -f or -tui and with no expression, starts the REPL.")
		fmt.Fprintln(errWriter)
		fmt.Fprintln(errWriter, "Flags:")
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.StringVar(&config.Expr, "e", "", "Evaluate one statement and exit.")
	fs.StringVar(&config.File, "f", "", "Evaluate the statements of a file, one per line.")
	fs.BoolVar(&config.Interactive, "i", false, "Start the interactive REPL.")
	fs.BoolVar(&config.TUI, "tui", false, "Start the full-screen terminal interface.")
	fs.BoolVar(&config.Quiet, "q", false, "Print results only.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Alias for -q.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging on stderr.")
	fs.BoolVar(&config.Verbose, "v", false, "Alias for -verbose.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", DefaultTheme, "Color theme: "+strings.Join(ui.ThemeNames, ", ")+".")
	fs.BoolVar(&config.Metrics, "metrics", false, "Write Prometheus metrics to stderr on exit.")
	fs.BoolVar(&config.Trace, "trace", false, "Write OpenTelemetry spans to stderr.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Time limit for -e and -f (0 disables).")
	fs.StringVar(&config.ConfigFile, "config", "", "Path to a TOML configuration file.")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version information and exit.")
	fs.BoolVar(&config.ShowVersion, "V", false, "Alias for -version.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		if config.Expr != "" || config.File != "" {
			return AppConfig{}, apperrors.NewInvalidSettingError("expression",
				"unexpected arguments %q after -e or -f (quote the whole statement)", strings.Join(fs.Args(), " "))
		}
		config.Expr = strings.Join(fs.Args(), " ")
	}

	path := config.ConfigFile
	if path == "" {
		path = getEnvString("CONFIG", "")
	}
	if path != "" {
		fc, err := LoadFile(path)
		if err != nil {
			return AppConfig{}, err
		}
		fc.apply(&config, fs)
		config.ConfigFile = path
	}
	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}
