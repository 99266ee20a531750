package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fraccalc/internal/ui"
)

// Style variables for the calculator screen, built from the ui theme by
// initTUIStyles.
var (
	panelStyle     lipgloss.Style
	titleStyle     lipgloss.Style
	subtitleStyle  lipgloss.Style
	statementStyle lipgloss.Style
	resultStyle    lipgloss.Style
	errorStyle     lipgloss.Style
	dimStyle       lipgloss.Style
	promptStyle    lipgloss.Style
	textStyle      lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme. Run calls it
// again after the theme has been selected.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Title)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statementStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	resultStyle = lipgloss.NewStyle().
		Foreground(t.Result).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	promptStyle = lipgloss.NewStyle().
		Foreground(t.Prompt).
		Bold(true)

	textStyle = lipgloss.NewStyle().
		Foreground(t.Text)
}
