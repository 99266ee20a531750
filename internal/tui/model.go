// Package tui implements the full-screen calculator: an input line, a
// scrolling history of statements and results, and a key help footer.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fraccalc/internal/calc"
	apperrors "github.com/agbru/fraccalc/internal/errors"
	"github.com/agbru/fraccalc/internal/format"
)

// Layout constants.
const (
	// chromeHeight is the title, the panel borders, the input and the help
	// line.
	chromeHeight   = 6
	minPanelHeight = 3
	defaultWidth   = 80
	maxInputLength = 256
)

// Options configures the terminal UI.
type Options struct {
	Version   string
	SessionID string
}

// EvalResultMsg carries the outcome of one statement back to the model.
type EvalResultMsg struct {
	Line    string
	Result  calc.Result
	Err     error
	Elapsed time.Duration
}

type entry struct {
	statement string
	output    string
	failed    bool
	elapsed   time.Duration
}

// Model is the root bubbletea model.
type Model struct {
	input   textinput.Model
	help    help.Model
	keymap  KeyMap
	history []entry
	// recall indexes statements while browsing with up/down; -1 when the
	// input holds fresh text.
	recall  int
	pending bool

	eval calc.Evaluator
	ctx  context.Context
	opts Options

	width  int
	height int
}

// NewModel creates the calculator model around ev.
func NewModel(ctx context.Context, ev calc.Evaluator, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "frac> "
	ti.Placeholder = "1/2 + 1/3"
	ti.CharLimit = maxInputLength
	ti.PromptStyle = promptStyle
	ti.TextStyle = textStyle
	ti.PlaceholderStyle = dimStyle
	ti.Focus()

	return Model{
		input:  ti,
		help:   help.New(),
		keymap: DefaultKeyMap(),
		recall: -1,
		eval:   ev,
		ctx:    ctx,
		opts:   opts,
		width:  defaultWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// evalCmd evaluates line off the UI goroutine.
func evalCmd(ctx context.Context, ev calc.Evaluator, line string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		res, err := ev.Eval(ctx, line)
		return EvalResultMsg{Line: line, Result: res, Err: err, Elapsed: time.Since(start)}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(m.input.Prompt)-6, 10)
		m.help.Width = msg.Width
		return m, nil

	case EvalResultMsg:
		m.pending = false
		m.history = append(m.history, newEntry(msg))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keymap.Submit):
		line := strings.TrimSpace(m.input.Value())
		if line == "" || m.pending {
			return m, nil, true
		}
		m.pending = true
		m.recall = -1
		m.input.Reset()
		return m, evalCmd(m.ctx, m.eval, line), true

	case key.Matches(msg, m.keymap.HistoryPrev):
		m.recallStep(-1)
		return m, nil, true

	case key.Matches(msg, m.keymap.HistoryNext):
		m.recallStep(1)
		return m, nil, true

	case key.Matches(msg, m.keymap.ClearHistory):
		m.history = nil
		m.recall = -1
		return m, nil, true

	case key.Matches(msg, m.keymap.Reset):
		m.eval.Reset()
		m.history = append(m.history, entry{statement: "reset", output: "variables cleared"})
		return m, nil, true
	}
	return m, nil, false
}

// recallStep moves through previous statements. Stepping past the newest
// one clears the input.
func (m *Model) recallStep(delta int) {
	if len(m.history) == 0 {
		return
	}
	idx := m.recall
	if idx == -1 {
		if delta > 0 {
			return
		}
		idx = len(m.history)
	}
	idx += delta
	switch {
	case idx < 0:
		idx = 0
	case idx >= len(m.history):
		m.recall = -1
		m.input.SetValue("")
		return
	}
	m.recall = idx
	m.input.SetValue(m.history[idx].statement)
	m.input.CursorEnd()
}

func newEntry(msg EvalResultMsg) entry {
	e := entry{statement: msg.Line, elapsed: msg.Elapsed}
	if msg.Err != nil {
		e.output = msg.Err.Error()
		e.failed = true
		return e
	}
	e.output = msg.Result.String()
	if msg.Result.Name != "" {
		e.output = msg.Result.Name + " = " + e.output
	}
	if msg.Result.Kind == calc.KindFraction && msg.Result.Value.Den() != 1 {
		e.output += "  ≈ " + format.Approx(msg.Result.Value)
	}
	return e
}

// View implements tea.Model.
func (m Model) View() string {
	title := titleStyle.Render("fraccalc")
	if m.opts.Version != "" {
		title += " " + subtitleStyle.Render(m.opts.Version)
	}
	if m.opts.SessionID != "" {
		title += subtitleStyle.Render("  session " + m.opts.SessionID)
	}

	innerWidth := max(m.width-4, 10)
	panel := panelStyle.Width(innerWidth).Render(m.renderHistory(m.historyHeight(), innerWidth))

	status := ""
	if m.pending {
		status = dimStyle.Render(" evaluating…")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		panel,
		m.input.View()+status,
		m.help.View(m.keymap),
	)
}

func (m Model) historyHeight() int {
	if m.height == 0 {
		return minPanelHeight * 3
	}
	return max(m.height-chromeHeight, minPanelHeight)
}

// renderHistory shows the newest entries that fit, two lines each.
func (m Model) renderHistory(height, width int) string {
	if len(m.history) == 0 {
		return dimStyle.Render("Type a statement such as 1/2 + 1/3, x = 3/4, x++ or x >= 0.5.")
	}
	var lines []string
	for _, e := range m.history {
		lines = append(lines, statementStyle.Render("› "+e.statement))
		out := resultStyle.Render("  " + e.output)
		if e.failed {
			out = errorStyle.Render("  " + e.output)
		}
		if e.elapsed > 0 {
			out += dimStyle.Render(fmt.Sprintf("  %s", format.Duration(e.elapsed)))
		}
		lines = append(lines, out)
	}
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(lines, "\n"))
}

// Run starts the terminal UI and blocks until the user quits.
func Run(ctx context.Context, ev calc.Evaluator, opts Options) int {
	// Styles depend on the theme selected by the caller.
	initTUIStyles()

	p := tea.NewProgram(NewModel(ctx, ev, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if apperrors.IsContextError(err) || ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
