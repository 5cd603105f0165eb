// Package config handles configuration loading and defaults for the
// pushover-notifier app. Configuration is read from XDG-compliant paths
// (typically ~/.config/pushover-notifier/config.yaml); the settings
// document with credentials and presets lives elsewhere, in the data
// directory.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"pushover-notifier/internal/fsutil"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// DataDir overrides the directory holding settings.json
	// (default: the per-user config dir, e.g. ~/.config/PushoverNotifier)
	DataDir string `yaml:"data_dir,omitempty"`

	// Theme customizes the visual appearance
	Theme ThemeConfig `yaml:"theme,omitempty"`

	// Keys customizes keyboard shortcuts
	Keys KeysConfig `yaml:"keys,omitempty"`

	// UX customizes user experience settings
	UX UXConfig `yaml:"ux,omitempty"`

	// Notifications configures the desktop mirror of the Pushover send
	Notifications NotificationConfig `yaml:"notifications,omitempty"`
}

// NotificationConfig defines desktop notification settings. These only
// mirror the end-of-countdown push locally; the push itself is not
// optional.
type NotificationConfig struct {
	// Enabled shows a desktop notification when the countdown ends
	Enabled bool `yaml:"enabled,omitempty"`

	// Sound plays the platform notification sound as well
	Sound bool `yaml:"sound,omitempty"`
}

// ThemeConfig defines color and style settings.
type ThemeConfig struct {
	// Primary color for focused elements (hex, e.g., "#FF5733")
	Primary string `yaml:"primary,omitempty"`

	// Accent color for highlights (hex)
	Accent string `yaml:"accent,omitempty"`

	// Muted color for secondary text (hex)
	Muted string `yaml:"muted,omitempty"`

	// Background color (hex)
	Background string `yaml:"background,omitempty"`

	// Text color (hex)
	Text string `yaml:"text,omitempty"`
}

// KeysConfig defines customizable keyboard shortcuts.
// Each field accepts a comma-separated list of key bindings.
// Examples: "q,ctrl+c", "tab", "j,down"
type KeysConfig struct {
	// Global keys
	Quit     string `yaml:"quit,omitempty"`      // default: "q,ctrl+c"
	Help     string `yaml:"help,omitempty"`      // default: "?"
	NextPane string `yaml:"next_pane,omitempty"` // default: "tab"

	// Countdown keys
	StartStop    string `yaml:"start_stop,omitempty"`    // default: "space,enter"
	Stop         string `yaml:"stop,omitempty"`          // default: "x"
	EditDuration string `yaml:"edit_duration,omitempty"` // default: "d"
	Preset1      string `yaml:"preset_1,omitempty"`      // default: "1"
	Preset2      string `yaml:"preset_2,omitempty"`      // default: "2"
	Preset3      string `yaml:"preset_3,omitempty"`      // default: "3"

	// Credential keys
	EditToken   string `yaml:"edit_token,omitempty"`    // default: "t"
	EditUserKey string `yaml:"edit_user_key,omitempty"` // default: "u"
	RevealToken string `yaml:"reveal_token,omitempty"`  // default: "r"

	// Input keys
	Confirm string `yaml:"confirm,omitempty"` // default: "enter"
	Cancel  string `yaml:"cancel,omitempty"`  // default: "esc"
}

// UXConfig defines user experience settings.
type UXConfig struct {
	// ConfirmQuit asks before quitting while a countdown is running
	ConfirmQuit bool `yaml:"confirm_quit,omitempty"` // default: true

	// ShowOnboarding shows the welcome screen until credentials exist
	ShowOnboarding bool `yaml:"show_onboarding,omitempty"` // default: true

	// NarrowLayoutThreshold is the terminal width below which to use stacked layout
	NarrowLayoutThreshold int `yaml:"narrow_layout_threshold,omitempty"` // default: 80

	// DefaultDuration is the duration field's starting value (hh:mm:ss)
	DefaultDuration string `yaml:"default_duration,omitempty"` // default: "00:01:00"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		Theme: ThemeConfig{
			Primary:    "#7C3AED", // Violet
			Accent:     "#10B981", // Emerald
			Muted:      "#6B7280", // Gray
			Background: "",        // Terminal default
			Text:       "",        // Terminal default
		},
		Keys: KeysConfig{
			// Defaults are empty strings, which means use built-in defaults
		},
		UX: UXConfig{
			ConfirmQuit:           true,
			ShowOnboarding:        true,
			NarrowLayoutThreshold: 80,
			DefaultDuration:       "00:01:00",
		},
		Notifications: NotificationConfig{
			Enabled: false, // Pushover is the primary channel
			Sound:   false,
		},
	}
}

// defaultDataDir returns the directory settings.json lives in when no
// override is configured. The capitalized name is part of the on-disk
// format shared with earlier releases.
func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".pushover-notifier"
	}
	return filepath.Join(base, "PushoverNotifier")
}

// Dir returns the configuration directory path (XDG compliant). Logs
// are kept under it as well.
func Dir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pushover-notifier")
	}

	// Fall back to ~/.config/pushover-notifier
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pushover-notifier")
}

// configPath returns the path to the config file.
func configPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads configuration from disk, merging with defaults.
// If no config file exists, returns default configuration.
func Load() (*Config, error) {
	cfg := Default()

	path := configPath()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// Parse YAML and merge with defaults
	var userCfg Config
	if err := yaml.Unmarshal(data, &userCfg); err != nil {
		return nil, err
	}

	var doc yaml.Node
	_ = yaml.Unmarshal(data, &doc) // best-effort; fall back to conservative merge if this fails

	// Merge user config with defaults (presence-aware for booleans)
	cfg.mergeFromYAML(&userCfg, &doc)

	return cfg, nil
}

// mergeNonEmpty applies non-empty values from other to c.
// It intentionally does not touch booleans (those require presence-aware merging).
func (c *Config) mergeNonEmpty(other *Config) {
	if other.DataDir != "" {
		c.DataDir = other.DataDir
	}

	// Theme merging
	if other.Theme.Primary != "" {
		c.Theme.Primary = other.Theme.Primary
	}
	if other.Theme.Accent != "" {
		c.Theme.Accent = other.Theme.Accent
	}
	if other.Theme.Muted != "" {
		c.Theme.Muted = other.Theme.Muted
	}
	if other.Theme.Background != "" {
		c.Theme.Background = other.Theme.Background
	}
	if other.Theme.Text != "" {
		c.Theme.Text = other.Theme.Text
	}

	// Keys merging
	if other.Keys.Quit != "" {
		c.Keys.Quit = other.Keys.Quit
	}
	if other.Keys.Help != "" {
		c.Keys.Help = other.Keys.Help
	}
	if other.Keys.NextPane != "" {
		c.Keys.NextPane = other.Keys.NextPane
	}
	if other.Keys.StartStop != "" {
		c.Keys.StartStop = other.Keys.StartStop
	}
	if other.Keys.Stop != "" {
		c.Keys.Stop = other.Keys.Stop
	}
	if other.Keys.EditDuration != "" {
		c.Keys.EditDuration = other.Keys.EditDuration
	}
	if other.Keys.Preset1 != "" {
		c.Keys.Preset1 = other.Keys.Preset1
	}
	if other.Keys.Preset2 != "" {
		c.Keys.Preset2 = other.Keys.Preset2
	}
	if other.Keys.Preset3 != "" {
		c.Keys.Preset3 = other.Keys.Preset3
	}
	if other.Keys.EditToken != "" {
		c.Keys.EditToken = other.Keys.EditToken
	}
	if other.Keys.EditUserKey != "" {
		c.Keys.EditUserKey = other.Keys.EditUserKey
	}
	if other.Keys.RevealToken != "" {
		c.Keys.RevealToken = other.Keys.RevealToken
	}
	if other.Keys.Confirm != "" {
		c.Keys.Confirm = other.Keys.Confirm
	}
	if other.Keys.Cancel != "" {
		c.Keys.Cancel = other.Keys.Cancel
	}

	// UX ints/strings (booleans are presence-aware in mergeFromYAML)
	if other.UX.NarrowLayoutThreshold > 0 {
		c.UX.NarrowLayoutThreshold = other.UX.NarrowLayoutThreshold
	}
	if other.UX.DefaultDuration != "" {
		c.UX.DefaultDuration = other.UX.DefaultDuration
	}
}

func (c *Config) mergeFromYAML(other *Config, doc *yaml.Node) {
	// Fall back to conservative behavior if we can't inspect presence.
	if doc == nil || len(doc.Content) == 0 {
		// Avoid clobbering defaults with zero-values: only apply
		// non-empty strings and non-zero ints.
		c.mergeNonEmpty(other)
		return
	}

	// First apply all non-empty string-ish merges.
	c.mergeNonEmpty(other)

	// Now re-apply booleans only when present in YAML.
	if yamlHasPath(doc, "ux", "confirm_quit") {
		c.UX.ConfirmQuit = other.UX.ConfirmQuit
	}
	if yamlHasPath(doc, "ux", "show_onboarding") {
		c.UX.ShowOnboarding = other.UX.ShowOnboarding
	}
	if yamlHasPath(doc, "ux", "narrow_layout_threshold") && other.UX.NarrowLayoutThreshold > 0 {
		c.UX.NarrowLayoutThreshold = other.UX.NarrowLayoutThreshold
	}

	if yamlHasPath(doc, "notifications", "enabled") {
		c.Notifications.Enabled = other.Notifications.Enabled
	}
	if yamlHasPath(doc, "notifications", "sound") {
		c.Notifications.Sound = other.Notifications.Sound
	}
}

func yamlHasPath(doc *yaml.Node, path ...string) bool {
	if doc == nil || len(path) == 0 {
		return false
	}

	// Document -> root mapping.
	n := doc
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	for _, key := range path {
		if n == nil || n.Kind != yaml.MappingNode {
			return false
		}
		var next *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			v := n.Content[i+1]
			if k.Kind == yaml.ScalarNode && k.Value == key {
				next = v
				break
			}
		}
		if next == nil {
			return false
		}
		n = next
	}
	return true
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	path := configPath()
	if path == "" {
		return nil
	}

	// Create config directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return fsutil.WriteFileAtomic(path, data, 0600)
}

// GetDataDir returns the resolved settings directory path.
func (c *Config) GetDataDir() string {
	if c.DataDir != "" {
		// Expand ~ if present
		if c.DataDir == "~" {
			home, err := os.UserHomeDir()
			if err == nil {
				return home
			}
			return c.DataDir
		}

		if strings.HasPrefix(c.DataDir, "~/") || strings.HasPrefix(c.DataDir, `~\`) {
			home, err := os.UserHomeDir()
			if err == nil {
				trimmed := strings.TrimPrefix(c.DataDir, "~/")
				trimmed = strings.TrimPrefix(trimmed, `~\`)
				trimmed = strings.TrimPrefix(trimmed, `\`)
				return filepath.Join(home, trimmed)
			}
		}
		return c.DataDir
	}
	return defaultDataDir()
}
