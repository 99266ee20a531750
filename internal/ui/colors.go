package ui

// Accessors for the active theme's escape codes. They are functions rather
// than variables so that a theme switch takes effect immediately.

// ColorPrompt returns the prompt color.
func ColorPrompt() string { return GetCurrentTheme().Prompt }

// ColorResult returns the result color.
func ColorResult() string { return GetCurrentTheme().Result }

// ColorMuted returns the muted color.
func ColorMuted() string { return GetCurrentTheme().Muted }

// ColorWarning returns the warning color.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the error color.
func ColorError() string { return GetCurrentTheme().Error }

// ColorAccent returns the accent color.
func ColorAccent() string { return GetCurrentTheme().Accent }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }

// Paint wraps s in color and a reset. With NoColorTheme it returns s as is.
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + ColorReset()
}
