// Package main is the entry point for the pushover-notifier application.
// This file contains the send subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"pushover-notifier/internal/config"
	"pushover-notifier/internal/logger"
	"pushover-notifier/internal/pushover"
	"pushover-notifier/internal/secret"
	"pushover-notifier/internal/settings"
)

// sendHelpText is the help message for the send subcommand.
const sendHelpText = `pushover-notifier send - Send a push immediately

USAGE:
    pushover-notifier send [OPTIONS] [MESSAGE]

OPTIONS:
    -h, --help     Show this help message
    --debug        Verbose logging

DESCRIPTION:
    Sends MESSAGE through Pushover using the stored credentials, without
    opening the TUI. With no MESSAGE a short test notification is sent.
    Useful for checking that the token and user key work.

EXAMPLES:
    # Send a test push
    pushover-notifier send

    # Send a custom message
    pushover-notifier send "backup finished"
`

// runSend handles the "pushover-notifier send" subcommand.
func runSend(args []string) {
	fs := flag.NewFlagSet("send", flag.ExitOnError)

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	debug := fs.Bool("debug", false, "verbose logging")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, sendHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(sendHelpText)
		os.Exit(0)
	}

	message := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if message == "" {
		message = "test notification from pushover-notifier"
	}

	initCommandLogging(*debug)

	token, userKey := loadCredentials()
	if token == "" || userKey == "" {
		fmt.Fprintln(os.Stderr, "Error: no stored credentials. Run the app once, or 'pushover-notifier token set'.")
		os.Exit(1)
	}

	if err := pushover.New().Send(token, userKey, message); err != nil {
		fmt.Fprintf(os.Stderr, "Error sending push: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Push sent.")
}

// initCommandLogging sets up file logging for a one-shot subcommand,
// echoing to stderr as well since no TUI owns the terminal.
func initCommandLogging(debug bool) {
	if err := logger.Init(logger.Config{Debug: debug, Dir: config.Dir(), Echo: debug}); err != nil {
		// Subcommands work fine without a log file.
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
}

// loadCredentials reads the settings document and unwraps the token.
// Problems are reported but not fatal; missing pieces come back empty.
func loadCredentials() (token, userKey string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config: %v\n", err)
		cfg = config.Default()
	}

	store := settings.NewStore(cfg.GetDataDir())
	s, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: settings: %v\n", err)
	}

	box, err := secret.Open()
	if err != nil {
		// A plaintext blob is still readable without the keyring.
		fmt.Fprintf(os.Stderr, "Warning: secret store: %v\n", err)
		box = secret.Unprotected()
	}

	if len(s.EncryptedAPIToken) > 0 {
		token, err = box.Unwrap(s.EncryptedAPIToken)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: stored token unusable: %v\n", err)
			token = ""
		}
	}

	return token, s.UserKey
}
