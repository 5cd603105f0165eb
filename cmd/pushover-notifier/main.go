// Package main is the entry point for the pushover-notifier application.
// It loads configuration, initializes the settings store and secret box,
// and starts the TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	"pushover-notifier/internal/config"
	"pushover-notifier/internal/logger"
	"pushover-notifier/internal/secret"
	"pushover-notifier/internal/settings"
	"pushover-notifier/internal/ui"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `pushover-notifier - A countdown timer that pings your phone

USAGE:
    pushover-notifier [OPTIONS]
    pushover-notifier <command> [ARGS]

COMMANDS:
    send [MESSAGE]   Send a push immediately with stored credentials
    token set        Store the Pushover API token
    token clear      Remove the stored API token
    token status     Show whether a token is stored and how
    doctor           Check configuration, settings, and keyring health

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information
    --debug          Verbose logging (also echoed to stderr by subcommands)

DESCRIPTION:
    pushover-notifier counts down a duration you pick and, when it
    elapses, sends a single Pushover notification reporting the elapsed
    time. Credentials and duration presets are remembered between runs;
    the API token is sealed with a key held in the OS keyring.

KEYBINDINGS:
    Global:
        Tab          Switch between panes
        ?            Show help overlay
        q            Quit (saves settings)

    Countdown Pane:
        Space        Start/stop the countdown
        x            Stop the countdown
        d            Edit the duration (hh:mm:ss)
        1, 2, 3      Use a preset duration

    Credentials Pane:
        t            Edit the API token (masked)
        u            Edit the user key
        r            Reveal/hide the token

DATA STORAGE:
    Settings (user key, sealed token, presets) live in
    settings.json under the per-user config directory, in
    a PushoverNotifier folder.

CONFIGURATION:
    Optional config file: ~/.config/pushover-notifier/config.yaml
    (theme colors, key bindings, default duration, desktop mirror).

EXAMPLES:
    # Start the app
    pushover-notifier

    # Store the API token without opening the TUI
    pushover-notifier token set

    # Fire a test push
    pushover-notifier send "hello from the terminal"

    # Check the environment
    pushover-notifier doctor
`

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "send":
			runSend(os.Args[2:])
			return
		case "token":
			runToken(os.Args[2:])
			return
		case "doctor":
			runDoctor(os.Args[2:])
			return
		}
	}

	// Define flags
	showVersion := flag.Bool("version", false, "show version information")
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := flag.Bool("help", false, "show help message")
	flag.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	debug := flag.Bool("debug", false, "verbose logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
	}

	flag.Parse()

	// Handle version flag
	if *showVersion {
		fmt.Printf("pushover-notifier version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	// Handle help flag
	if *showHelp {
		fmt.Print(helpText)
		os.Exit(0)
	}

	// Reject unknown arguments
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown arguments: %v\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration (from ~/.config/pushover-notifier/config.yaml or defaults)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Log to a file; the TUI owns the terminal.
	if err := logger.Init(logger.Config{Debug: *debug, Dir: config.Dir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting", "version", version)

	// Open the secret box. A keyring error does not block the app, but
	// the run continues deliberately unprotected and says so.
	box, err := secret.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; continuing without token protection\n", err)
		logger.Warn("keyring error, continuing unprotected", "err", err)
		box = secret.Unprotected()
	}
	if !box.Protected() {
		logger.Warn("OS keyring unavailable, the API token will be stored in plaintext")
	}

	// Settings store in the configured data directory
	store := settings.NewStore(cfg.GetDataDir())

	// Create styles from theme config
	styles := ui.NewStylesFromTheme(&cfg.Theme)

	// Create app config with keys and UX settings
	appCfg := &ui.AppConfig{
		Keys:                  &cfg.Keys,
		ConfirmQuit:           cfg.UX.ConfirmQuit,
		ShowOnboarding:        cfg.UX.ShowOnboarding,
		NarrowLayoutThreshold: cfg.UX.NarrowLayoutThreshold,
		DefaultDuration:       cfg.UX.DefaultDuration,
		DesktopNotify:         cfg.Notifications.Enabled,
		NotifySound:           cfg.Notifications.Sound,
	}

	// Run the TUI
	if err := ui.Run(store, box, styles, appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
