// Package ui provides the terminal user interface for pushover-notifier.
// This file defines key bindings using the Bubble Tea key package for
// type-safe key matching, help text generation, and customization.
package ui

import (
	"strings"

	"pushover-notifier/internal/config"

	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// Helpers
// =============================================================================

// parseKeys splits a comma-separated string into individual keys.
// If the input is empty, returns the default keys.
func parseKeys(customKeys string, defaultKeys ...string) []string {
	if customKeys == "" {
		return defaultKeys
	}
	keys := strings.Split(customKeys, ",")
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		trimmed := strings.TrimSpace(k)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// =============================================================================
// Global Keys (available in all contexts)
// =============================================================================

// GlobalKeyMap defines keys available throughout the application.
type GlobalKeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	NextPane key.Binding
}

// DefaultGlobalKeyMap returns the default global key bindings.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return NewGlobalKeyMap(&config.KeysConfig{})
}

// NewGlobalKeyMap creates global key bindings from config.
func NewGlobalKeyMap(cfg *config.KeysConfig) GlobalKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit, "q", "ctrl+c")...),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Help, "?")...),
			key.WithHelp("?", "help"),
		),
		NextPane: key.NewBinding(
			key.WithKeys(parseKeys(cfg.NextPane, "tab")...),
			key.WithHelp("tab", "next pane"),
		),
	}
}

// =============================================================================
// Input Keys (shared by text input fields)
// =============================================================================

// InputKeyMap defines keys for text input mode.
type InputKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultInputKeyMap returns the default input key bindings.
func DefaultInputKeyMap() InputKeyMap {
	return NewInputKeyMap(&config.KeysConfig{})
}

// NewInputKeyMap creates input key bindings from config.
func NewInputKeyMap(cfg *config.KeysConfig) InputKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return InputKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Confirm, "enter")...),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Cancel, "esc")...),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// =============================================================================
// Countdown Pane Keys
// =============================================================================

// CountdownKeyMap defines keys for the countdown pane.
type CountdownKeyMap struct {
	StartStop    key.Binding
	Stop         key.Binding
	EditDuration key.Binding
	Preset1      key.Binding
	Preset2      key.Binding
	Preset3      key.Binding
}

// DefaultCountdownKeyMap returns the default countdown pane key bindings.
func DefaultCountdownKeyMap() CountdownKeyMap {
	return NewCountdownKeyMap(&config.KeysConfig{})
}

// NewCountdownKeyMap creates countdown key bindings from config.
func NewCountdownKeyMap(cfg *config.KeysConfig) CountdownKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return CountdownKeyMap{
		StartStop: key.NewBinding(
			key.WithKeys(parseKeys(cfg.StartStop, " ", "enter")...),
			key.WithHelp("space", "start/stop"),
		),
		Stop: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Stop, "x")...),
			key.WithHelp("x", "stop"),
		),
		EditDuration: key.NewBinding(
			key.WithKeys(parseKeys(cfg.EditDuration, "d")...),
			key.WithHelp("d", "edit duration"),
		),
		Preset1: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Preset1, "1")...),
			key.WithHelp("1", "preset 1"),
		),
		Preset2: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Preset2, "2")...),
			key.WithHelp("2", "preset 2"),
		),
		Preset3: key.NewBinding(
			key.WithKeys(parseKeys(cfg.Preset3, "3")...),
			key.WithHelp("3", "preset 3"),
		),
	}
}

// ShortHelp returns the short help for the countdown pane (implements help.KeyMap).
func (k CountdownKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartStop, k.EditDuration, k.Preset1}
}

// FullHelp returns the full help for the countdown pane (implements help.KeyMap).
func (k CountdownKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartStop, k.Stop, k.EditDuration},
		{k.Preset1, k.Preset2, k.Preset3},
	}
}

// =============================================================================
// Credentials Pane Keys
// =============================================================================

// CredentialsKeyMap defines keys for the credentials pane.
type CredentialsKeyMap struct {
	EditToken   key.Binding
	EditUserKey key.Binding
	RevealToken key.Binding
}

// DefaultCredentialsKeyMap returns the default credentials pane key bindings.
func DefaultCredentialsKeyMap() CredentialsKeyMap {
	return NewCredentialsKeyMap(&config.KeysConfig{})
}

// NewCredentialsKeyMap creates credentials key bindings from config.
func NewCredentialsKeyMap(cfg *config.KeysConfig) CredentialsKeyMap {
	if cfg == nil {
		cfg = &config.KeysConfig{}
	}
	return CredentialsKeyMap{
		EditToken: key.NewBinding(
			key.WithKeys(parseKeys(cfg.EditToken, "t")...),
			key.WithHelp("t", "edit token"),
		),
		EditUserKey: key.NewBinding(
			key.WithKeys(parseKeys(cfg.EditUserKey, "u")...),
			key.WithHelp("u", "edit user key"),
		),
		RevealToken: key.NewBinding(
			key.WithKeys(parseKeys(cfg.RevealToken, "r")...),
			key.WithHelp("r", "reveal token"),
		),
	}
}

// ShortHelp returns the short help for the credentials pane (implements help.KeyMap).
func (k CredentialsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.EditToken, k.EditUserKey, k.RevealToken}
}

// FullHelp returns the full help for the credentials pane (implements help.KeyMap).
func (k CredentialsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.EditToken, k.EditUserKey, k.RevealToken},
	}
}

// =============================================================================
// Help Overlay Keys
// =============================================================================

// HelpKeyMap defines keys for the help overlay.
type HelpKeyMap struct {
	Close key.Binding
}

// DefaultHelpKeyMap returns the default help overlay key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Close: key.NewBinding(
			key.WithKeys("?", "esc", "q", "enter", " "),
			key.WithHelp("any key", "close"),
		),
	}
}
