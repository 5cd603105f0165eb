package ui

import (
	"strings"
	"testing"

	"pushover-notifier/internal/config"
)

func TestNewStylesFromTheme_Defaults(t *testing.T) {
	setupTest(t)
	s := NewStylesFromTheme(&config.ThemeConfig{})

	if s.ColorPrimary != "#7C3AED" {
		t.Errorf("ColorPrimary = %q, want default violet", s.ColorPrimary)
	}
	if s.ColorDanger != "#EF4444" {
		t.Errorf("ColorDanger = %q, want fixed semantic red", s.ColorDanger)
	}
}

func TestNewStylesFromTheme_Overrides(t *testing.T) {
	setupTest(t)
	s := NewStylesFromTheme(&config.ThemeConfig{
		Primary: "#FF5733",
		Muted:   "#123456",
	})

	if s.ColorPrimary != "#FF5733" {
		t.Errorf("ColorPrimary = %q, want override", s.ColorPrimary)
	}
	if s.ColorMuted != "#123456" {
		t.Errorf("ColorMuted = %q, want override", s.ColorMuted)
	}
	// Untouched colors keep their defaults.
	if s.ColorSuccess != "#10B981" {
		t.Errorf("ColorSuccess = %q, want default", s.ColorSuccess)
	}
}

func TestRenderHelp(t *testing.T) {
	setupTest(t)
	s := NewStylesFromTheme(&config.ThemeConfig{})

	out := s.RenderHelp("space", "start", "q", "quit")
	if !strings.Contains(out, "[space]") || !strings.Contains(out, "start") {
		t.Errorf("RenderHelp output missing first pair: %q", out)
	}
	if !strings.Contains(out, "[q]") || !strings.Contains(out, "quit") {
		t.Errorf("RenderHelp output missing second pair: %q", out)
	}
}
