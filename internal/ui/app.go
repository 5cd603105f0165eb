// Package ui provides the terminal user interface for pushover-notifier.
// This file contains the main App model which coordinates the panes and
// drives the countdown lifecycle using the Bubble Tea architecture.
package ui

import (
	"errors"
	"strings"
	"time"

	"pushover-notifier/internal/config"
	"pushover-notifier/internal/countdown"
	"pushover-notifier/internal/logger"
	"pushover-notifier/internal/notify"
	"pushover-notifier/internal/pushover"
	"pushover-notifier/internal/secret"
	"pushover-notifier/internal/settings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PaneID identifies each pane in the application.
type PaneID int

const (
	PaneCountdown PaneID = iota
	PaneCredentials
)

// LayoutMode determines how panes are arranged based on terminal width.
type LayoutMode int

const (
	// LayoutWide shows both panes side-by-side.
	LayoutWide LayoutMode = iota
	// LayoutNarrow shows only the focused pane with a tab bar.
	LayoutNarrow
)

// AppConfig holds user configuration for the app behavior.
type AppConfig struct {
	Keys                  *config.KeysConfig
	ConfirmQuit           bool
	ShowOnboarding        bool
	NarrowLayoutThreshold int
	DefaultDuration       string
	DesktopNotify         bool
	NotifySound           bool
}

// App is the main application model that coordinates the panes. It owns
// the one countdown session: panes emit start/stop requests, and every
// lifecycle transition, status change, and cleanup happens here on the
// single event loop.
type App struct {
	store    *settings.Store
	box      *secret.Box
	client   *pushover.Client
	notifier notify.Notifier
	ctrl     *countdown.Controller

	styles        *Styles
	config        *AppConfig
	countdownPane *CountdownPane
	credsPane     *CredentialsPane
	helpOverlay   *HelpOverlay
	dialog        *dialogState
	confirmQuit   bool
	activePane    PaneID
	layoutMode    LayoutMode
	sending       bool
	showHelp      bool
	showWelcome   bool
	width         int
	height        int
	status        string
	statusErr     bool
	statusUntil   time.Time
	quitting      bool

	// Key bindings
	keys     GlobalKeyMap
	helpKeys HelpKeyMap

	// Pane positions for mouse click detection (x coordinates)
	countdownPaneStart int
	countdownPaneEnd   int
	credsPaneStart     int
	credsPaneEnd       int
	contentTop         int // Y coordinate where content starts
}

// dialogState is a modal error dialog; any key dismisses it.
type dialogState struct {
	title string
	body  string
}

// NewApp creates a new application. Settings loading is deferred to
// Init() to keep the constructor non-blocking.
func NewApp(store *settings.Store, box *secret.Box, styles *Styles, cfg *AppConfig) *App {
	// Use default config if nil
	if cfg == nil {
		cfg = &AppConfig{
			Keys:                  &config.KeysConfig{},
			ConfirmQuit:           true,
			ShowOnboarding:        true,
			NarrowLayoutThreshold: 80,
			DefaultDuration:       "00:01:00",
		}
	}
	if cfg.Keys == nil {
		cfg.Keys = &config.KeysConfig{}
	}
	if cfg.DefaultDuration == "" {
		cfg.DefaultDuration = "00:01:00"
	}

	ctrl := countdown.New()

	// Create panes with config-aware key bindings
	countdownPane := NewCountdownPaneWithKeys(ctrl, styles, cfg.Keys, cfg.DefaultDuration)
	credsPane := NewCredentialsPaneWithKeys(styles, cfg.Keys)
	helpOverlay := NewHelpOverlay(styles)

	app := &App{
		store:         store,
		box:           box,
		client:        pushover.New(),
		notifier:      notify.New(),
		ctrl:          ctrl,
		styles:        styles,
		config:        cfg,
		countdownPane: countdownPane,
		credsPane:     credsPane,
		helpOverlay:   helpOverlay,
		activePane:    PaneCountdown,
		keys:          NewGlobalKeyMap(cfg.Keys),
		helpKeys:      DefaultHelpKeyMap(),
	}

	// Set initial focus
	countdownPane.SetFocused(true)
	credsPane.SetFocused(false)

	return app
}

// tickMsg is sent periodically for time updates.
type tickMsg time.Time

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the tick and loads the settings document asynchronously.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		loadSettingsCmd(a.store, a.box),
	)
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle async and request messages first (before key handling), so
	// countdown and settings results are processed regardless of which
	// pane is active or what overlay is up.
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		a.countdownPane.SetPresets(msg.settings.TimePresets)
		a.credsPane.SetCredentials(msg.token, msg.settings.UserKey)
		if msg.warn != nil {
			a.SetStatus("Settings: "+msg.warn.Error(), true)
			a.showDialog("Settings problem", msg.warn.Error())
		}
		if a.config.ShowOnboarding && !a.credsPane.HasCredentials() {
			a.showWelcome = true
		}
		return a, nil

	case settingsSavedMsg:
		if msg.err != nil {
			a.SetStatus("Save settings: "+msg.err.Error(), true)
		}
		return a, nil

	case startRequestedMsg:
		return a, a.startCountdown()

	case stopRequestedMsg:
		// Cooperative cancel; the parked wait reports Cancelled.
		a.ctrl.Stop()
		return a, nil

	case countdownDoneMsg:
		return a.handleCountdownDone(msg)

	case notifySentMsg:
		return a.handleNotifySent(msg)

	case dialogMsg:
		a.showDialog(msg.title, msg.body)
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.showWelcome {
			a.showWelcome = false
			return a, nil
		}

		if a.dialog != nil {
			a.dialog = nil
			return a, nil
		}

		if a.confirmQuit {
			switch msg.String() {
			case "y", "Y", "enter":
				a.confirmQuit = false
				return a.quit()
			case "n", "N", "esc":
				a.confirmQuit = false
				a.SetStatus("Canceled", false)
				return a, nil
			default:
				return a, nil
			}
		}

		// Help overlay takes priority
		if a.showHelp {
			if key.Matches(msg, a.helpKeys.Close) {
				a.showHelp = false
				return a, nil
			}
			return a, nil
		}

		// Check if any pane is in input mode
		inInputMode := a.countdownPane.IsEditing() || a.credsPane.IsEditing()

		if !inInputMode {
			// Global keys only when not in input mode
			switch {
			case key.Matches(msg, a.keys.Quit):
				if a.config.ConfirmQuit && a.sessionActive() {
					a.confirmQuit = true
					return a, nil
				}
				return a.quit()

			case key.Matches(msg, a.keys.Help):
				a.showHelp = true
				return a, nil

			case key.Matches(msg, a.keys.NextPane):
				a.switchPane()
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tickMsg:
		if a.status != "" && !a.statusUntil.IsZero() && time.Now().After(a.statusUntil) {
			a.status = ""
			a.statusErr = false
			a.statusUntil = time.Time{}
		}
		return a, tickCmd()
	}

	// Forward to active pane (only if help is not shown)
	if !a.showHelp {
		switch a.activePane {
		case PaneCountdown:
			cmd := a.countdownPane.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		case PaneCredentials:
			cmd := a.credsPane.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return a, tea.Batch(cmds...)
}

// sessionActive reports whether the one session is still in flight.
// The send phase belongs to the session: the countdown has settled but
// the notification result has not landed yet.
func (a *App) sessionActive() bool {
	return a.ctrl.Running() || a.sending
}

// startCountdown validates the inputs and arms a session. Validation
// failures show a dialog and change nothing: no session exists until
// every check passes. While a session is active, including the send
// phase, the request is ignored.
func (a *App) startCountdown() tea.Cmd {
	if a.sessionActive() {
		return nil
	}

	if !a.credsPane.HasCredentials() {
		a.showDialog("Missing credentials",
			"Enter your Pushover API token and user key before starting.")
		return nil
	}

	text := a.countdownPane.DurationString()
	d, err := countdown.ParseDuration(text)
	if err != nil {
		a.showDialog("Invalid duration",
			"\""+text+"\" is not a valid duration. Use hh:mm:ss, e.g. 00:05:00.")
		return nil
	}
	if d <= 0 {
		a.showDialog("Invalid duration", "The duration must be greater than zero.")
		return nil
	}

	if err := a.ctrl.Start(d); err != nil {
		a.showDialog("Cannot start", err.Error())
		return nil
	}

	logger.Info("countdown armed", "duration", text)
	return waitCmd(a.ctrl)
}

// handleCountdownDone reacts to the session settling. Completion moves
// straight into the send; cancellation cleans up immediately.
func (a *App) handleCountdownDone(msg countdownDoneMsg) (tea.Model, tea.Cmd) {
	switch msg.state {
	case countdown.StateCompleted:
		message := countdown.FormatDuration(a.ctrl.Duration()) + " has elapsed"
		a.sending = true
		a.SetStatus("Sending notification…", false)
		return a, sendCmd(
			a.client, a.notifier,
			a.config.DesktopNotify, a.config.NotifySound,
			a.credsPane.Token(), a.credsPane.UserKey(), message,
		)

	case countdown.StateCancelled:
		a.ctrl.Reset()
		a.SetStatus("Stopped by user", false)
		logger.Info("countdown stopped by user")
		return a, nil

	default:
		a.ctrl.Reset()
		return a, nil
	}
}

// handleNotifySent finishes the session after the send attempt. Cleanup
// runs on every path: whatever happened, the controller goes back to
// idle and the start key works again.
func (a *App) handleNotifySent(msg notifySentMsg) (tea.Model, tea.Cmd) {
	a.sending = false
	if msg.err != nil {
		a.ctrl.Fail(msg.err)
		a.SetStatus("Send failed: "+msg.err.Error(), true)
		a.showDialog("Notification failed", sendErrorBody(msg.err))
	} else {
		a.SetStatus("Notification sent successfully", false)
	}

	a.ctrl.Reset()
	return a, nil
}

// sendErrorBody extracts the dialog body for a failed send. API answers
// surface Pushover's raw response text; transport errors their message.
func sendErrorBody(err error) string {
	var apiErr *pushover.APIError
	if errors.As(err, &apiErr) && apiErr.Body != "" {
		return apiErr.Body
	}
	return err.Error()
}

// quit stops any running session, saves the settings document once, and
// exits.
func (a *App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	a.ctrl.Stop()
	return a, tea.Sequence(
		saveSettingsCmd(a.store, a.box,
			a.credsPane.Token(), a.credsPane.UserKey(),
			a.countdownPane.Presets()),
		tea.Quit,
	)
}

// handleMouse processes clicks: overlays dismiss, tabs and panes focus.
func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return a, nil
	}

	if a.showWelcome {
		a.showWelcome = false
		return a, nil
	}
	if a.dialog != nil {
		a.dialog = nil
		return a, nil
	}
	if a.confirmQuit {
		a.confirmQuit = false
		a.SetStatus("Canceled", false)
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// In narrow mode, check for tab bar clicks
	if a.layoutMode == LayoutNarrow && msg.Y == a.contentTop-1 {
		if msg.X < a.width/2 {
			a.setActivePane(PaneCountdown)
		} else {
			a.setActivePane(PaneCredentials)
		}
		return a, nil
	}

	// Determine which pane was clicked (in wide mode)
	clickedPane := a.paneAtPosition(msg.X)
	if clickedPane >= 0 && clickedPane != a.activePane {
		a.setActivePane(clickedPane)
	}

	return a, nil
}

// switchPane cycles through panes.
func (a *App) switchPane() {
	switch a.activePane {
	case PaneCountdown:
		a.setActivePane(PaneCredentials)
	case PaneCredentials:
		a.setActivePane(PaneCountdown)
	}
}

// setActivePane sets the active pane and updates focus states.
func (a *App) setActivePane(pane PaneID) {
	a.activePane = pane

	a.countdownPane.SetFocused(pane == PaneCountdown)
	a.credsPane.SetFocused(pane == PaneCredentials)
}

// paneAtPosition returns which pane is at the given X coordinate.
// Returns -1 if no pane is at that position.
func (a *App) paneAtPosition(x int) PaneID {
	if a.layoutMode == LayoutNarrow {
		// In narrow mode, return the active pane
		return a.activePane
	}

	if x >= a.countdownPaneStart && x < a.countdownPaneEnd {
		return PaneCountdown
	}
	if x >= a.credsPaneStart && x < a.credsPaneEnd {
		return PaneCredentials
	}
	return -1
}

// updateLayout recalculates pane sizes based on terminal dimensions.
func (a *App) updateLayout() {
	// Leave room for title bar (2) and help bar (1)
	contentHeight := a.height - 4
	if contentHeight < 10 {
		contentHeight = 10
	}

	// Content starts after title bar (1 line title + 1 line space)
	a.contentTop = 1

	// Update help overlay size
	a.helpOverlay.SetSize(a.width, a.height)

	totalWidth := a.width - 4

	// Determine layout mode based on configured threshold
	threshold := a.config.NarrowLayoutThreshold
	if threshold <= 0 {
		threshold = 80 // Default threshold
	}

	if a.width < threshold {
		// Narrow mode: single focused pane with tab bar
		a.layoutMode = LayoutNarrow

		// In narrow mode, leave room for tab bar (1 line)
		narrowHeight := contentHeight - 1
		if narrowHeight < 8 {
			narrowHeight = 8
		}

		// Give full width to both panes (only focused one will be shown)
		paneWidth := totalWidth
		if paneWidth < 20 {
			paneWidth = 20
		}

		a.countdownPane.SetSize(paneWidth, narrowHeight)
		a.credsPane.SetSize(paneWidth, narrowHeight)

		// In narrow mode, both panes occupy the same space
		a.countdownPaneStart = 0
		a.countdownPaneEnd = a.width
		a.credsPaneStart = 0
		a.credsPaneEnd = a.width
		// Content starts after tab bar in narrow mode
		a.contentTop = 2
	} else {
		// Wide mode: two panes side-by-side
		a.layoutMode = LayoutWide

		countdownWidth := (totalWidth * 45) / 100
		if countdownWidth > 46 {
			countdownWidth = 46
		}
		credsWidth := totalWidth - countdownWidth - 1
		if credsWidth > 60 {
			credsWidth = 60
		}

		a.countdownPane.SetSize(countdownWidth, contentHeight)
		a.credsPane.SetSize(credsWidth, contentHeight)

		// Calculate pane positions (with 1 space gap between panes)
		a.countdownPaneStart = 0
		a.countdownPaneEnd = countdownWidth
		a.credsPaneStart = countdownWidth + 1
		a.credsPaneEnd = a.credsPaneStart + credsWidth
	}
}

// View renders the entire app.
func (a *App) View() string {
	if a.quitting {
		return a.renderGoodbye()
	}

	if a.showWelcome {
		return a.renderWelcome()
	}

	if a.dialog != nil {
		return a.renderDialog()
	}

	if a.confirmQuit {
		return a.renderConfirmQuit()
	}

	// Show help overlay if active
	if a.showHelp {
		return a.helpOverlay.View()
	}

	var b strings.Builder

	// Title bar
	titleBar := a.renderTitleBar()
	b.WriteString(titleBar)
	b.WriteString("\n")

	// Main content - switch based on layout mode
	switch a.layoutMode {
	case LayoutNarrow:
		b.WriteString(a.renderNarrowContent())
	default:
		b.WriteString(a.renderWideContent())
	}
	b.WriteString("\n")

	// Help bar
	helpBar := a.renderHelpBar()
	b.WriteString(helpBar)

	return b.String()
}

func (a *App) renderWelcome() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorPrimary).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorPrimary).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	mutedStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted).
		Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to pushover-notifier"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("Set your Pushover credentials first: Tab to the\n"))
	b.WriteString(bodyStyle.Render("credentials pane, 't' for the token, 'u' for the\n"))
	b.WriteString(bodyStyle.Render("user key. Then pick a duration and press space.\n"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press any key to continue"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) renderDialog() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorDanger).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorDanger).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.dialog.title))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(truncateText(a.dialog.body, 200)))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Press any key to dismiss"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) renderConfirmQuit() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorWarning).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorWarning).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Quit while counting down?"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("The countdown will be stopped and no notification sent."))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[y/enter] quit    [n/esc] keep counting"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

// renderWideContent renders both panes side by side.
func (a *App) renderWideContent() string {
	countdownView := a.countdownPane.View()
	credsView := a.credsPane.View()

	return lipgloss.JoinHorizontal(lipgloss.Top, countdownView, " ", credsView)
}

// renderNarrowContent renders the focused pane with a tab bar.
func (a *App) renderNarrowContent() string {
	var b strings.Builder

	// Tab bar at top
	b.WriteString(a.renderPaneTabs())
	b.WriteString("\n")

	// Only render the active pane
	switch a.activePane {
	case PaneCountdown:
		b.WriteString(a.countdownPane.View())
	case PaneCredentials:
		b.WriteString(a.credsPane.View())
	}

	return b.String()
}

// renderPaneTabs renders a tab bar showing available panes.
func (a *App) renderPaneTabs() string {
	// Tab labels
	tabs := []struct {
		id    PaneID
		label string
	}{
		{PaneCountdown, "Countdown"},
		{PaneCredentials, "Credentials"},
	}

	// Create tab styles
	activeTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorPrimary).
		Bold(true)
	inactiveTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var parts []string
	for _, tab := range tabs {
		label := tab.label
		if tab.id == a.activePane {
			// Active tab: highlighted with brackets
			label = activeTabStyle.Render("[" + label + "]")
		} else {
			// Inactive tab: muted
			label = inactiveTabStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}

	// Center the tabs
	tabBar := strings.Join(parts, "  ")
	padding := (a.width - lipgloss.Width(tabBar)) / 2
	if padding > 0 {
		tabBar = strings.Repeat(" ", padding) + tabBar
	}

	return tabBar
}

// renderGoodbye shows a short exit message.
func (a *App) renderGoodbye() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  See you later!\n")
	b.WriteString("\n")
	return b.String()
}

// renderTitleBar creates the top title bar with the countdown indicator.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleStyle.Render(" pushover-notifier ")

	// Countdown status indicator
	var countdownStatus string
	if a.countdownPane.sending() {
		countdownStatus = a.styles.CountdownSendingStyle.Render("↑ sending")
	} else if a.ctrl.Running() {
		remaining := countdown.FormatDuration(a.ctrl.Remaining())
		countdownStatus = a.styles.CountdownRunningStyle.Render("▶ " + remaining)
	}

	// Current date/time
	now := time.Now()
	dateStr := now.Format("Mon Jan 2 · 15:04")
	date := a.styles.DateStyle.Render(dateStr)

	// Calculate spacing
	titleWidth := lipgloss.Width(title)
	statusWidth := lipgloss.Width(countdownStatus)
	dateWidth := lipgloss.Width(date)

	usedWidth := titleWidth + statusWidth + dateWidth
	spacerWidth := a.width - usedWidth - 4
	if spacerWidth < 2 {
		spacerWidth = 2
	}

	// Build the title bar
	var parts []string
	parts = append(parts, title)

	// Distribute spacing
	leftSpacer := strings.Repeat(" ", spacerWidth/2)
	rightSpacer := strings.Repeat(" ", spacerWidth-spacerWidth/2)

	parts = append(parts, leftSpacer)

	if countdownStatus != "" {
		parts = append(parts, countdownStatus)
	}

	parts = append(parts, rightSpacer)
	parts = append(parts, date)

	return strings.Join(parts, "")
}

// renderHelpBar creates the bottom help bar with context-sensitive hints.
func (a *App) renderHelpBar() string {
	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		return a.styles.StatusStyle.Render(a.status)
	}

	// Input mode help
	if a.countdownPane.IsEditing() || a.credsPane.IsEditing() {
		return a.styles.RenderHelp(
			"enter", "save",
			"esc", "cancel",
		)
	}

	// Normal mode help based on active pane
	switch a.activePane {
	case PaneCountdown:
		if a.ctrl.Running() {
			return a.styles.RenderHelp(
				"space", "stop",
				"tab", "pane",
				"?", "help",
			)
		}
		return a.styles.RenderHelp(
			"space", "start",
			"d", "duration",
			"1-3", "presets",
			"tab", "pane",
			"?", "help",
		)
	case PaneCredentials:
		return a.styles.RenderHelp(
			"t", "token",
			"u", "user key",
			"r", "reveal",
			"tab", "pane",
			"?", "help",
		)
	}

	return ""
}

// SetStatus sets a status message to display to the user.
func (a *App) SetStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	ttl := 5 * time.Second
	if isErr {
		ttl = 8 * time.Second
	}
	a.statusUntil = time.Now().Add(ttl)
}

// showDialog raises the modal error dialog.
func (a *App) showDialog(title, body string) {
	a.dialog = &dialogState{title: title, body: body}
}

// truncateText shortens text to maxLen with ellipsis if needed.
func truncateText(text string, maxLen int) string {
	if runewidth.StringWidth(text) <= maxLen {
		return text
	}
	return runewidth.Truncate(text, maxLen, "..")
}

// Run starts the Bubble Tea program with the given settings store,
// secret box, styles, and config.
func Run(store *settings.Store, box *secret.Box, styles *Styles, cfg *AppConfig) error {
	app := NewApp(store, box, styles, cfg)
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Enable mouse support
	)
	_, err := p.Run()
	return err
}
