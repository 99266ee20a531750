// Package app wires configuration, logging, telemetry and metrics around a
// calculator session and dispatches to the selected front end.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/agbru/fraccalc/internal/calc"
	"github.com/agbru/fraccalc/internal/cli"
	"github.com/agbru/fraccalc/internal/config"
	apperrors "github.com/agbru/fraccalc/internal/errors"
	"github.com/agbru/fraccalc/internal/logging"
	"github.com/agbru/fraccalc/internal/metrics"
	"github.com/agbru/fraccalc/internal/telemetry"
	"github.com/agbru/fraccalc/internal/tui"
	"github.com/agbru/fraccalc/internal/ui"
)

const programName = "fraccalc"

// Application represents one fraccalc run.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	In        io.Reader
	Logger    logging.Logger
	SessionID string
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput replaces stdin for the REPL and "-f -".
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// WithLogger replaces the console logger built from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New parses the command line (args[0] is the program name) and prepares
// an Application. Parse errors have already been reported on errWriter.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		ErrWriter: errWriter,
		In:        os.Stdin,
		SessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(app)
	}

	name := programName
	var cmdArgs []string
	if len(args) > 0 {
		name = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(name, cmdArgs, errWriter)
	if err != nil {
		var cfgErr apperrors.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}
	app.Config = cfg

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	if app.Logger == nil {
		app.Logger = newLogger(errWriter, cfg)
	}
	return app, nil
}

// newLogger picks the zerolog console logger for terminals and buffers, and
// plain log lines when w is a redirected file or pipe.
func newLogger(w io.Writer, cfg config.AppConfig) logging.Logger {
	if f, ok := w.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return logging.NewPlainLogger(w, programName, cfg.Verbose)
	}
	noColor := cfg.NoColor || cfg.Theme == ui.NoColorTheme.Name
	return logging.NewConsoleLogger(w, programName, cfg.Verbose, noColor)
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	shutdown, err := telemetry.Setup(telemetry.Options{
		Enabled:     a.Config.Trace,
		Writer:      a.ErrWriter,
		ServiceName: programName,
		Version:     Version,
		SessionID:   a.SessionID,
	})
	if err != nil {
		a.Logger.Error("tracing setup failed", err)
		return apperrors.ExitErrorConfig
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			a.Logger.Error("tracing shutdown failed", err)
		}
	}()

	var m *metrics.Metrics
	sessionOpts := []calc.Option{calc.WithLogger(a.Logger)}
	if a.Config.Metrics {
		m = metrics.New()
		sessionOpts = append(sessionOpts, calc.WithRecorder(m))
	}
	session := calc.NewSession(sessionOpts...)

	a.Logger.Debug("starting",
		logging.String("mode", a.Config.Mode().String()),
		logging.String("session", a.SessionID),
		logging.String("version", Version))

	code := a.dispatch(ctx, session, m, out)

	if m != nil {
		if err := m.WriteText(a.ErrWriter); err != nil {
			a.Logger.Error("writing metrics failed", err)
		}
	}
	return code
}

func (a *Application) dispatch(ctx context.Context, session *calc.Session, m *metrics.Metrics, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	output := cli.OutputConfig{Quiet: a.Config.Quiet, Verbose: a.Config.Verbose}

	switch a.Config.Mode() {
	case config.ModeExpr:
		ctx, cancel := a.withTimeout(ctx)
		defer cancel()
		return cli.HandleError(cli.EvalExpression(ctx, session, a.Config.Expr, out, output), a.ErrWriter)

	case config.ModeFile:
		ctx, cancel := a.withTimeout(ctx)
		defer cancel()
		return a.runFile(ctx, session, out, output)

	case config.ModeTUI:
		return tui.Run(ctx, session, tui.Options{Version: Version, SessionID: a.SessionID})
	}

	replConfig := cli.REPLConfig{
		Output:    output,
		SessionID: a.SessionID,
		Logger:    a.Logger,
	}
	if m != nil {
		replConfig.Metrics = m
	}
	repl := cli.NewREPL(session, replConfig)
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start(ctx)
	return apperrors.ExitSuccess
}

// runFile evaluates a statement file; "-" reads the statements from In.
func (a *Application) runFile(ctx context.Context, session *calc.Session, out io.Writer, output cli.OutputConfig) int {
	in := a.In
	if a.Config.File != "-" {
		f, err := os.Open(a.Config.File)
		if err != nil {
			return cli.HandleError(apperrors.WrapError(err, "opening statement file"), a.ErrWriter)
		}
		defer f.Close()
		in = f
	}
	return cli.HandleError(cli.EvalReader(ctx, session, in, out, output), a.ErrWriter)
}

func (a *Application) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.Config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.Config.Timeout)
}

// ExitCodeForNew maps an error returned by New to an exit code.
func ExitCodeForNew(err error) int {
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	var cfgErr apperrors.ConfigError
	if errors.As(err, &cfgErr) {
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitErrorGeneric
}

// IsHelpError checks if the error is a help flag error (-h was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
