package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSetTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	tests := []struct {
		name  string
		want  string
		known bool
	}{
		{"dark", "dark", true},
		{"light", "light", true},
		{"none", "none", true},
		{"", "dark", true},
		{"neon", "dark", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if known := SetTheme(tt.name); known != tt.known {
				t.Errorf("SetTheme(%q) = %v, want %v", tt.name, known, tt.known)
			}
			if got := GetCurrentTheme().Name; got != tt.want {
				t.Errorf("active theme = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInitTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	t.Run("noColor flag wins", func(t *testing.T) {
		InitTheme("light", true)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
		}
	})

	t.Run("NO_COLOR environment", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme("dark", false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
		}
	})
}

func TestPaint(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	SetCurrentTheme(NoColorTheme)
	if got := Paint(ColorResult(), "1/2"); got != "1/2" {
		t.Errorf("Paint without color = %q, want %q", got, "1/2")
	}

	SetCurrentTheme(DarkTheme)
	want := DarkTheme.Result + "1/2" + DarkTheme.Reset
	if got := Paint(ColorResult(), "1/2"); got != want {
		t.Errorf("Paint = %q, want %q", got, want)
	}
}

func TestGetCurrentTUITheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	SetCurrentTheme(NoColorTheme)
	if _, ok := GetCurrentTUITheme().Text.(lipgloss.NoColor); !ok {
		t.Error("no-color theme should map to lipgloss.NoColor")
	}
	SetCurrentTheme(LightTheme)
	if GetCurrentTUITheme() != LightTUITheme {
		t.Error("light theme should map to LightTUITheme")
	}
}
