package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Submit", km.Submit},
		{"HistoryPrev", km.HistoryPrev},
		{"HistoryNext", km.HistoryNext},
		{"ClearHistory", km.ClearHistory},
		{"Reset", km.Reset},
		{"Quit", km.Quit},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
			if b.binding.Help().Desc == "" {
				t.Errorf("expected %s binding to have a help description", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_QuitKeys(t *testing.T) {
	km := DefaultKeyMap()

	hasEsc, hasCtrlC := false, false
	for _, k := range km.Quit.Keys() {
		switch k {
		case "esc":
			hasEsc = true
		case "ctrl+c":
			hasCtrlC = true
		}
	}
	if !hasEsc {
		t.Error("expected Quit binding to include 'esc'")
	}
	if !hasCtrlC {
		t.Error("expected Quit binding to include 'ctrl+c'")
	}
}

func TestKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()
	if got := len(km.ShortHelp()); got != 5 {
		t.Errorf("ShortHelp has %d bindings, want 5", got)
	}
	total := 0
	for _, group := range km.FullHelp() {
		total += len(group)
	}
	if total != 6 {
		t.Errorf("FullHelp has %d bindings, want 6", total)
	}
}
