// Package ui provides the terminal user interface for pushover-notifier.
// This file defines message types for async operations using the Bubble Tea
// command pattern. Settings I/O, the countdown wait, and the notification
// send all report back through these messages so the event loop never blocks.
package ui

import (
	"pushover-notifier/internal/countdown"
	"pushover-notifier/internal/settings"
)

// =============================================================================
// Settings Messages
// =============================================================================

// settingsLoadedMsg is sent when the settings document has been read and
// the stored token unwrapped. warn carries non-fatal problems (unreadable
// file, undecryptable token); the settings are always usable.
type settingsLoadedMsg struct {
	settings *settings.Settings
	token    string
	warn     error
}

// settingsSavedMsg is sent when the settings document has been written.
type settingsSavedMsg struct {
	err error
}

// =============================================================================
// Countdown Messages
// =============================================================================

// startRequestedMsg asks the app to validate inputs and arm a countdown.
// Panes emit requests instead of mutating shared state so every lifecycle
// transition happens in one place.
type startRequestedMsg struct{}

// stopRequestedMsg asks the app to cancel the running countdown.
type stopRequestedMsg struct{}

// countdownDoneMsg is sent when the armed countdown settles: the full
// duration elapsed, or a stop cancelled it.
type countdownDoneMsg struct {
	state countdown.State
}

// =============================================================================
// Notification Messages
// =============================================================================

// notifySentMsg is sent when the end-of-countdown push attempt finishes.
type notifySentMsg struct {
	message string
	err     error
}

// =============================================================================
// Dialog Messages
// =============================================================================

// dialogMsg asks the app to show a modal error dialog.
type dialogMsg struct {
	title string
	body  string
}
