package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is an ANSI color scheme for line-oriented output (REPL, batch mode).
type Theme struct {
	// Name is the identifier used by --theme.
	Name string
	// Prompt colors the REPL prompt.
	Prompt string
	// Result colors fraction and boolean results.
	Result string
	// Muted is used for hints and secondary text.
	Muted string
	// Warning is used for usage messages.
	Warning string
	// Error colors failures.
	Error string
	// Accent highlights variable names and commands.
	Accent string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Prompt:  "\033[38;5;82m",  // Bright green
		Result:  "\033[38;5;39m",  // Bright blue
		Muted:   "\033[38;5;245m", // Grey
		Warning: "\033[38;5;220m", // Yellow
		Error:   "\033[38;5;196m", // Red
		Accent:  "\033[38;5;141m", // Purple
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// LightTheme uses darker colors for light backgrounds.
	LightTheme = Theme{
		Name:    "light",
		Prompt:  "\033[38;5;28m",  // Dark green
		Result:  "\033[38;5;27m",  // Dark blue
		Muted:   "\033[38;5;240m", // Dark grey
		Warning: "\033[38;5;130m", // Orange
		Error:   "\033[38;5;124m", // Dark red
		Accent:  "\033[38;5;54m",  // Dark purple
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color is given.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ThemeNames lists the names accepted by SetTheme.
var ThemeNames = []string{DarkTheme.Name, LightTheme.Name, NoColorTheme.Name}

// TUITheme holds lipgloss colors for the terminal UI.
type TUITheme struct {
	Border lipgloss.TerminalColor
	Title  lipgloss.TerminalColor
	Text   lipgloss.TerminalColor
	Result lipgloss.TerminalColor
	Error  lipgloss.TerminalColor
	Dim    lipgloss.TerminalColor
	Prompt lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the default TUI palette.
	DarkTUITheme = TUITheme{
		Border: lipgloss.Color("#5F87FF"),
		Title:  lipgloss.Color("#AF87FF"),
		Text:   lipgloss.Color("#E0E0E0"),
		Result: lipgloss.Color("#00AFFF"),
		Error:  lipgloss.Color("#FF4444"),
		Dim:    lipgloss.Color("#666666"),
		Prompt: lipgloss.Color("#5FFF00"),
	}

	// LightTUITheme mirrors LightTheme.
	LightTUITheme = TUITheme{
		Border: lipgloss.Color("#005FAF"),
		Title:  lipgloss.Color("#5F00AF"),
		Text:   lipgloss.Color("#1C1C1C"),
		Result: lipgloss.Color("#005FFF"),
		Error:  lipgloss.Color("#AF0000"),
		Dim:    lipgloss.Color("#808080"),
		Prompt: lipgloss.Color("#008700"),
	}

	// NoColorTUITheme renders with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Border: lipgloss.NoColor{},
		Title:  lipgloss.NoColor{},
		Text:   lipgloss.NoColor{},
		Result: lipgloss.NoColor{},
		Error:  lipgloss.NoColor{},
		Dim:    lipgloss.NoColor{},
		Prompt: lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the TUI palette matching the active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	switch currentTheme.Name {
	case NoColorTheme.Name:
		return NoColorTUITheme
	case LightTheme.Name:
		return LightTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name and reports whether the name was
// known. Unknown names leave the dark theme active.
func SetTheme(name string) bool {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case DarkTheme.Name, "":
		currentTheme = DarkTheme
	case LightTheme.Name:
		currentTheme = LightTheme
	case NoColorTheme.Name:
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
		return false
	}
	return true
}

// InitTheme selects the theme at startup. noColor and the NO_COLOR
// environment variable (https://no-color.org/) both force NoColorTheme;
// otherwise the named theme is used.
func InitTheme(name string, noColor bool) {
	if _, exists := os.LookupEnv("NO_COLOR"); exists || noColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(name)
}
