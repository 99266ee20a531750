package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/fraccalc/internal/calc"
	"github.com/agbru/fraccalc/internal/calc/mocks"
	"github.com/agbru/fraccalc/internal/fraction"
)

func typeText(m Model, s string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

// submit types line, presses enter and feeds the evaluation result back.
func submit(t *testing.T, m Model, line string) Model {
	t.Helper()
	m = typeText(m, line)
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	require.True(t, m.pending)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func TestModelEvaluatesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	ev := mocks.NewMockEvaluator(ctrl)
	ev.EXPECT().Eval(gomock.Any(), "1/2 + 1/3").
		Return(calc.Result{Kind: calc.KindFraction, Value: fraction.MustNew(5, 6)}, nil)

	m := NewModel(context.Background(), ev, Options{Version: "v1.0.0", SessionID: "abc"})
	m = submit(t, m, "1/2 + 1/3")

	require.Len(t, m.history, 1)
	assert.Equal(t, "1/2 + 1/3", m.history[0].statement)
	assert.Equal(t, "5/6  ≈ 0.833333", m.history[0].output)
	assert.False(t, m.pending)
	assert.Empty(t, m.input.Value())

	view := m.View()
	assert.Contains(t, view, "fraccalc")
	assert.Contains(t, view, "v1.0.0")
	assert.Contains(t, view, "5/6")
}

func TestModelShowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	ev := mocks.NewMockEvaluator(ctrl)
	ev.EXPECT().Eval(gomock.Any(), "1/0").Return(calc.Result{}, fraction.ErrDivideByZero)

	m := submit(t, NewModel(context.Background(), ev, Options{}), "1/0")

	require.Len(t, m.history, 1)
	assert.True(t, m.history[0].failed)
	assert.Equal(t, fraction.ErrDivideByZero.Error(), m.history[0].output)
}

func TestModelIgnoresEmptyAndPendingSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	ev := mocks.NewMockEvaluator(ctrl)

	m := NewModel(context.Background(), ev, Options{})
	m, cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd)

	m.pending = true
	m = typeText(m, "1")
	_, cmd = press(m, tea.KeyEnter)
	assert.Nil(t, cmd, "no second evaluation while one is running")
}

func TestModelHistoryRecall(t *testing.T) {
	ctrl := gomock.NewController(t)
	ev := mocks.NewMockEvaluator(ctrl)
	ev.EXPECT().Eval(gomock.Any(), gomock.Any()).Return(calc.Result{Kind: calc.KindBool, Truth: true}, nil).Times(2)

	m := NewModel(context.Background(), ev, Options{})
	m = submit(t, m, "1 < 2")
	m = submit(t, m, "x == 1")

	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "x == 1", m.input.Value())
	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "1 < 2", m.input.Value())
	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "1 < 2", m.input.Value(), "recall stops at the oldest statement")
	m, _ = press(m, tea.KeyDown)
	assert.Equal(t, "x == 1", m.input.Value())
	m, _ = press(m, tea.KeyDown)
	assert.Empty(t, m.input.Value())
}

func TestModelClearAndReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	ev := mocks.NewMockEvaluator(ctrl)
	ev.EXPECT().Eval(gomock.Any(), "x = 1").
		Return(calc.Result{Kind: calc.KindFraction, Value: fraction.One, Name: "x"}, nil)
	ev.EXPECT().Reset()

	m := submit(t, NewModel(context.Background(), ev, Options{}), "x = 1")
	assert.Equal(t, "x = 1/1", m.history[0].output)

	m, _ = press(m, tea.KeyCtrlL)
	assert.Empty(t, m.history)

	m, _ = press(m, tea.KeyCtrlR)
	require.Len(t, m.history, 1)
	assert.Equal(t, "variables cleared", m.history[0].output)
}

func TestModelQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewModel(context.Background(), mocks.NewMockEvaluator(ctrl), Options{})

	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := press(m, k)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestModelWindowSizeAndTruncation(t *testing.T) {
	m := NewModel(context.Background(), mocks.NewMockEvaluator(gomock.NewController(t)), Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	m = next.(Model)
	assert.Equal(t, 60, m.width)
	assert.Equal(t, 4, m.historyHeight())

	for i := 0; i < 5; i++ {
		m.history = append(m.history, newEntry(EvalResultMsg{
			Line:    "stmt" + string(rune('a'+i)),
			Result:  calc.Result{Kind: calc.KindBool},
			Elapsed: time.Microsecond,
		}))
	}
	out := m.renderHistory(m.historyHeight(), 50)
	assert.NotContains(t, out, "stmta")
	assert.Contains(t, out, "stmte")
	assert.Equal(t, 4, strings.Count(out, "\n")+1)
}

func TestNewEntryFromError(t *testing.T) {
	e := newEntry(EvalResultMsg{Line: "y", Err: errors.New("unknown variable")})
	assert.True(t, e.failed)
	assert.Equal(t, "unknown variable", e.output)
}
