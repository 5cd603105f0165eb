// Package main is the entry point for the pushover-notifier application.
// This file contains the doctor subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"

	"pushover-notifier/internal/config"
	"pushover-notifier/internal/countdown"
	"pushover-notifier/internal/secret"
	"pushover-notifier/internal/settings"
)

// doctorHelpText is the help message for the doctor subcommand.
const doctorHelpText = `pushover-notifier doctor - Run environment diagnostics

USAGE:
    pushover-notifier doctor

OPTIONS:
    -h, --help     Show this help message

DESCRIPTION:
    Checks the configuration file, the settings document, the OS keyring,
    and the stored time presets, and reports anything that would keep the
    app from working. Exits non-zero when a check fails.
`

// runDoctor handles the "pushover-notifier doctor" subcommand.
func runDoctor(args []string) {
	fs := flag.NewFlagSet("doctor", flag.ExitOnError)

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, doctorHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(doctorHelpText)
		os.Exit(0)
	}

	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: config file parses
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Config file: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		cfg = config.Default()
		hasError = true
	} else {
		fmt.Printf("✓ Config file: OK\n")
	}
	fmt.Printf("   Config dir: %s\n", config.Dir())
	fmt.Printf("   Data dir:   %s\n", cfg.GetDataDir())

	// Check 2: settings document parses
	store := settings.NewStore(cfg.GetDataDir())
	s, err := store.Load()
	if err != nil {
		fmt.Printf("❌ Settings file: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Settings file: OK\n")
	}

	// Check 3: keyring availability (warning only; the app falls back
	// to plaintext token storage)
	if secret.Available() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   No keyring available; the API token is stored in plaintext\n")
	}

	// Check 4: stored token usable
	if err := checkToken(s); err != nil {
		fmt.Printf("❌ Stored token: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else if len(s.EncryptedAPIToken) == 0 {
		fmt.Printf("⚠ Stored token: WARNING\n")
		fmt.Printf("   No token stored; set one in the app or with 'pushover-notifier token set'\n")
	} else {
		fmt.Printf("✓ Stored token: OK\n")
	}

	// Check 5: presets valid
	if err := checkPresets(s); err != nil {
		fmt.Printf("❌ Time presets: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Time presets: OK\n")
	}

	// Check 6: default duration valid
	if cfg.UX.DefaultDuration != "" {
		if _, err := countdown.ParseDuration(cfg.UX.DefaultDuration); err != nil {
			fmt.Printf("❌ Default duration: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Default duration: OK\n")
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		os.Exit(1)
	}
	fmt.Println("All diagnostics passed!")
}

// checkToken verifies that a stored token blob can still be opened.
func checkToken(s *settings.Settings) error {
	if len(s.EncryptedAPIToken) == 0 {
		return nil
	}
	box, err := secret.Open()
	if err != nil {
		return fmt.Errorf("open secret store: %w", err)
	}
	if _, err := box.Unwrap(s.EncryptedAPIToken); err != nil {
		return fmt.Errorf("unwrap stored token: %w", err)
	}
	return nil
}

// checkPresets validates every populated preset slot.
func checkPresets(s *settings.Settings) error {
	for i := 0; i < settings.PresetCount; i++ {
		p := s.Preset(i)
		if p == settings.EmptyPreset {
			continue
		}
		if _, err := countdown.ParseDuration(p); err != nil {
			return fmt.Errorf("preset %d (%q): %w", i+1, p, err)
		}
	}
	return nil
}
