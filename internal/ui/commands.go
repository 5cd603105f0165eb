// Package ui provides the terminal user interface for pushover-notifier.
// This file contains tea.Cmd factories wrapping the blocking work: settings
// I/O, the countdown wait, and the notification send. Each command returns
// a corresponding message type defined in messages.go.
package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"pushover-notifier/internal/countdown"
	"pushover-notifier/internal/logger"
	"pushover-notifier/internal/notify"
	"pushover-notifier/internal/pushover"
	"pushover-notifier/internal/secret"
	"pushover-notifier/internal/settings"
)

// =============================================================================
// Settings Commands
// =============================================================================

// errTokenPlaintext tells the user their token sits on disk unprotected.
var errTokenPlaintext = errors.New(
	"the API token is not protected by the OS keyring and is stored in plaintext")

// loadSettingsCmd returns a command that reads the settings document and
// unwraps the stored token. Both steps are non-fatal: the message always
// carries usable settings, with warn set when something went wrong. A
// token that sits on disk unprotected also warns, so the keyring
// fallback never stays silent.
func loadSettingsCmd(store *settings.Store, box *secret.Box) tea.Cmd {
	return func() tea.Msg {
		s, warn := store.Load()

		var token string
		if len(s.EncryptedAPIToken) > 0 {
			t, err := box.Unwrap(s.EncryptedAPIToken)
			if err != nil {
				// Token stays blank; the user re-enters it.
				logger.Warn("stored token could not be unwrapped", "err", err)
				if warn == nil {
					warn = err
				}
			} else {
				token = t
				if !secret.Sealed(s.EncryptedAPIToken) && warn == nil {
					logger.Warn("stored token is plaintext on disk")
					warn = errTokenPlaintext
				}
			}
		}

		if !box.Protected() && warn == nil {
			logger.Warn("no keyring protection for this run")
			warn = errTokenPlaintext
		}

		return settingsLoadedMsg{settings: s, token: token, warn: warn}
	}
}

// saveSettingsCmd returns a command that wraps the token and writes the
// settings document. An empty token omits the encrypted field entirely,
// except when the document holds a blob this box cannot read: that blob
// is carried over untouched, so a keyring outage never destroys a token
// another key can still recover.
func saveSettingsCmd(store *settings.Store, box *secret.Box, token, userKey string, presets []string) tea.Cmd {
	return func() tea.Msg {
		s := &settings.Settings{
			UserKey:     userKey,
			TimePresets: append([]string(nil), presets...),
		}

		if token != "" {
			blob, err := box.Wrap(token)
			if err != nil {
				return settingsSavedMsg{err: err}
			}
			s.EncryptedAPIToken = blob
		} else if prev, _ := store.Load(); len(prev.EncryptedAPIToken) > 0 {
			if _, err := box.Unwrap(prev.EncryptedAPIToken); err != nil {
				s.EncryptedAPIToken = prev.EncryptedAPIToken
			}
		}

		err := store.Save(s)
		if err != nil {
			logger.Error("settings save failed", "err", err)
		}
		return settingsSavedMsg{err: err}
	}
}

// =============================================================================
// Countdown Commands
// =============================================================================

// waitCmd returns a command that parks on the armed countdown until it
// settles. The event loop stays free for ticks and the stop key.
func waitCmd(ctrl *countdown.Controller) tea.Cmd {
	return func() tea.Msg {
		return countdownDoneMsg{state: ctrl.Wait()}
	}
}

// =============================================================================
// Notification Commands
// =============================================================================

// sendCmd returns a command that delivers the push and, when configured,
// mirrors it as a desktop notification. The desktop mirror is best-effort
// and never fails the send.
func sendCmd(client *pushover.Client, notifier notify.Notifier, desktop, sound bool, token, user, message string) tea.Cmd {
	return func() tea.Msg {
		err := client.Send(token, user, message)
		if err != nil {
			logger.Error("push failed", "err", err)
			return notifySentMsg{message: message, err: err}
		}
		logger.Info("push sent", "message", message)

		if desktop && notifier.IsSupported() {
			var nerr error
			if sound {
				nerr = notifier.SendWithSound("pushover-notifier", message)
			} else {
				nerr = notifier.Send("pushover-notifier", message)
			}
			if nerr != nil {
				logger.Warn("desktop notification failed", "err", nerr)
			}
		}

		return notifySentMsg{message: message}
	}
}

// =============================================================================
// Request Commands
// =============================================================================

// requestStart emits a start request for the app to validate and arm.
func requestStart() tea.Msg { return startRequestedMsg{} }

// requestStop emits a stop request for the running countdown.
func requestStop() tea.Msg { return stopRequestedMsg{} }
