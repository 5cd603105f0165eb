package ui

import (
	"testing"

	"pushover-notifier/internal/config"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name     string
		custom   string
		defaults []string
		want     []string
	}{
		{"empty uses defaults", "", []string{"q", "ctrl+c"}, []string{"q", "ctrl+c"}},
		{"single override", "Q", []string{"q"}, []string{"Q"}},
		{"comma separated", "q, ctrl+c", []string{"x"}, []string{"q", "ctrl+c"}},
		{"blank entries dropped", "q,,  ,esc", []string{"x"}, []string{"q", "esc"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseKeys(tc.custom, tc.defaults...)
			if len(got) != len(tc.want) {
				t.Fatalf("parseKeys(%q) = %v, want %v", tc.custom, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("parseKeys(%q)[%d] = %q, want %q", tc.custom, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestKeyMapOverrides(t *testing.T) {
	cfg := &config.KeysConfig{
		StartStop: "s",
		Preset1:   "a",
	}
	keys := NewCountdownKeyMap(cfg)

	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, keys.StartStop) {
		t.Error("configured start/stop key should match")
	}
	if key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, keys.StartStop) {
		t.Error("default start/stop key should be replaced by the override")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, keys.Preset1) {
		t.Error("configured preset key should match")
	}
	// Unconfigured bindings keep their defaults.
	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")}, keys.Preset2) {
		t.Error("unconfigured preset 2 should keep its default")
	}
}

func TestHelpKeyMapImplementations(t *testing.T) {
	ck := DefaultCountdownKeyMap()
	if len(ck.ShortHelp()) == 0 || len(ck.FullHelp()) == 0 {
		t.Error("countdown key map should expose help bindings")
	}

	crk := DefaultCredentialsKeyMap()
	if len(crk.ShortHelp()) == 0 || len(crk.FullHelp()) == 0 {
		t.Error("credentials key map should expose help bindings")
	}
}
