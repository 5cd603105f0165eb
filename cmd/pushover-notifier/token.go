// Package main is the entry point for the pushover-notifier application.
// This file contains the token subcommand handler.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"pushover-notifier/internal/config"
	"pushover-notifier/internal/secret"
	"pushover-notifier/internal/settings"
)

// tokenHelpText is the help message for the token subcommand.
const tokenHelpText = `pushover-notifier token - Manage the stored API token

USAGE:
    pushover-notifier token <COMMAND>

COMMANDS:
    set       Prompt for a new API token and store it
    clear     Remove the stored API token
    status    Report whether a token is stored and how it is protected

OPTIONS:
    -h, --help     Show this help message

DESCRIPTION:
    The API token is sealed with a key held in the OS keyring when one is
    available, and stored alongside the other settings. 'set' reads the
    token from the terminal without echoing it.

EXAMPLES:
    # Store a token
    pushover-notifier token set

    # Check what is stored
    pushover-notifier token status
`

// runToken handles the "pushover-notifier token" subcommand.
func runToken(args []string) {
	fs := flag.NewFlagSet("token", flag.ExitOnError)

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, tokenHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag || fs.NArg() == 0 {
		fmt.Print(tokenHelpText)
		if fs.NArg() == 0 && !*helpFlag {
			os.Exit(1)
		}
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config: %v\n", err)
		cfg = config.Default()
	}
	store := settings.NewStore(cfg.GetDataDir())

	switch fs.Arg(0) {
	case "set":
		tokenSet(store)
	case "clear":
		tokenClear(store)
	case "status":
		tokenStatus(store)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown token command %q\n\n", fs.Arg(0))
		fmt.Fprint(os.Stderr, tokenHelpText)
		os.Exit(1)
	}
}

// tokenSet prompts for a token and stores it sealed.
func tokenSet(store *settings.Store) {
	token, err := readToken()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading token: %v\n", err)
		os.Exit(1)
	}
	if token == "" {
		fmt.Fprintln(os.Stderr, "Error: empty token")
		os.Exit(1)
	}

	box, err := secret.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening secret store: %v\n", err)
		os.Exit(1)
	}
	blob, err := box.Wrap(token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sealing token: %v\n", err)
		os.Exit(1)
	}

	s, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: settings: %v\n", err)
	}
	s.EncryptedAPIToken = blob
	if err := store.Save(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
		os.Exit(1)
	}

	if box.Protected() {
		fmt.Println("Token stored (sealed with OS keyring).")
	} else {
		fmt.Println("Token stored (plaintext; no OS keyring available).")
	}
}

// tokenClear removes the stored token.
func tokenClear(store *settings.Store) {
	s, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: settings: %v\n", err)
	}
	if len(s.EncryptedAPIToken) == 0 {
		fmt.Println("No token stored.")
		return
	}
	s.EncryptedAPIToken = nil
	if err := store.Save(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Token cleared.")
}

// tokenStatus reports on the stored token without revealing it.
func tokenStatus(store *settings.Store) {
	s, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: settings: %v\n", err)
	}
	if len(s.EncryptedAPIToken) == 0 {
		fmt.Println("Token: not stored")
		return
	}
	if secret.Sealed(s.EncryptedAPIToken) {
		fmt.Println("Token: stored, sealed with OS keyring")
	} else {
		fmt.Println("Token: stored in plaintext (no OS keyring)")
	}
}

// readToken reads a token from stdin, without echo when stdin is a
// terminal.
func readToken() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "API token: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
