package ui

import (
	"testing"

	"pushover-notifier/internal/config"
	"pushover-notifier/internal/secret"
	"pushover-notifier/internal/settings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	gokeyring "github.com/zalando/go-keyring"
)

// setupTest prepares the test environment for deterministic rendering.
// It disables colors to ensure consistent output across environments.
func setupTest(t *testing.T) {
	t.Helper()
	// Use ASCII profile to disable all color codes in output
	lipgloss.SetColorProfile(termenv.Ascii)
}

// createTestStore creates a settings store in a temporary directory.
func createTestStore(t *testing.T) *settings.Store {
	t.Helper()
	return settings.NewStore(t.TempDir())
}

// createTestBox creates a secret box backed by the mock keyring.
func createTestBox(t *testing.T) *secret.Box {
	t.Helper()
	gokeyring.MockInit()
	box, err := secret.Open()
	if err != nil {
		t.Fatalf("failed to open test secret box: %v", err)
	}
	return box
}

// createTestStyles creates a default Styles instance for testing.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{})
}

// createTestApp creates an App with temp-dir storage and onboarding off,
// so key handling is exercised directly.
func createTestApp(t *testing.T) *App {
	t.Helper()
	return NewApp(createTestStore(t), createTestBox(t), createTestStyles(), &AppConfig{
		Keys:                  &config.KeysConfig{},
		NarrowLayoutThreshold: 80,
		DefaultDuration:       "00:01:00",
	})
}

// pressKey builds a key message for tests.
func pressKey(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
