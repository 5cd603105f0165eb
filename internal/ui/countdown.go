// Package ui provides the terminal user interface for pushover-notifier.
package ui

import (
	"fmt"
	"strings"

	"pushover-notifier/internal/config"
	"pushover-notifier/internal/countdown"
	"pushover-notifier/internal/settings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CountdownPane shows the countdown state, the chosen duration, and the
// preset shortcuts. It emits start/stop requests; the app owns the
// lifecycle transitions.
type CountdownPane struct {
	ctrl     *countdown.Controller
	presets  []string
	duration string
	focused  bool
	width    int
	height   int
	editing  bool // Is the duration field being edited?
	input    textinput.Model
	styles   *Styles

	// Key bindings
	keys      CountdownKeyMap
	inputKeys InputKeyMap
}

// NewCountdownPane creates a new countdown pane with default key bindings.
func NewCountdownPane(ctrl *countdown.Controller, styles *Styles) *CountdownPane {
	return NewCountdownPaneWithKeys(ctrl, styles, &config.KeysConfig{}, "00:01:00")
}

// NewCountdownPaneWithKeys creates a new countdown pane with custom key
// bindings and starting duration.
func NewCountdownPaneWithKeys(ctrl *countdown.Controller, styles *Styles, keyCfg *config.KeysConfig, defaultDuration string) *CountdownPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	if _, err := countdown.ParseDuration(defaultDuration); err != nil {
		defaultDuration = "00:01:00"
	}

	ti := textinput.New()
	ti.Placeholder = "hh:mm:ss"
	ti.CharLimit = 8
	ti.Width = 12

	return &CountdownPane{
		ctrl:      ctrl,
		presets:   append([]string(nil), settings.DefaultPresets[:]...),
		duration:  defaultDuration,
		input:     ti,
		styles:    styles,
		keys:      NewCountdownKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// SetSize sets the pane dimensions.
func (p *CountdownPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets whether this pane is focused.
func (p *CountdownPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *CountdownPane) IsFocused() bool {
	return p.focused
}

// IsEditing returns whether the duration field is being edited.
func (p *CountdownPane) IsEditing() bool {
	return p.editing
}

// Presets returns the preset shortcuts currently shown in the pane.
func (p *CountdownPane) Presets() []string {
	return append([]string(nil), p.presets...)
}

// SetPresets replaces the preset shortcuts shown in the pane.
func (p *CountdownPane) SetPresets(presets []string) {
	p.presets = append([]string(nil), presets...)
}

// DurationString returns the currently chosen duration text.
func (p *CountdownPane) DurationString() string {
	return p.duration
}

// SetDurationString sets the chosen duration text. Invalid values are
// ignored; the field keeps its previous value.
func (p *CountdownPane) SetDurationString(s string) {
	if _, err := countdown.ParseDuration(s); err == nil {
		p.duration = s
	}
}

// Update handles messages for the countdown pane.
func (p *CountdownPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	// If we're editing the duration, handle input
	if p.editing {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, p.inputKeys.Confirm):
				text := strings.TrimSpace(p.input.Value())
				if text == "" {
					p.editing = false
					p.input.Reset()
					return nil
				}
				if _, err := countdown.ParseDuration(text); err != nil {
					// Keep editing so the value can be corrected.
					return func() tea.Msg {
						return dialogMsg{
							title: "Invalid duration",
							body:  fmt.Sprintf("%q is not a valid duration. Use hh:mm:ss, e.g. 00:05:00.", text),
						}
					}
				}
				p.duration = text
				p.editing = false
				p.input.Reset()
				return nil

			case key.Matches(msg, p.inputKeys.Cancel):
				p.editing = false
				p.input.Reset()
				return nil
			}
		}

		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	// Normal mode
	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.StartStop):
			if p.ctrl.Running() {
				return requestStop
			}
			return requestStart

		case key.Matches(msg, p.keys.Stop):
			if p.ctrl.Running() {
				return requestStop
			}

		case key.Matches(msg, p.keys.EditDuration):
			// The duration is fixed while a session is armed.
			if p.ctrl.Running() {
				return nil
			}
			p.editing = true
			p.input.SetValue(p.duration)
			p.input.Focus()
			return textinput.Blink

		case key.Matches(msg, p.keys.Preset1):
			p.applyPreset(0)
		case key.Matches(msg, p.keys.Preset2):
			p.applyPreset(1)
		case key.Matches(msg, p.keys.Preset3):
			p.applyPreset(2)
		}
	}

	return nil
}

// applyPreset copies preset slot i into the duration field. Empty slots
// and a running session leave the field untouched.
func (p *CountdownPane) applyPreset(i int) {
	if p.ctrl.Running() {
		return
	}
	if i < 0 || i >= len(p.presets) {
		return
	}
	if p.presets[i] == settings.EmptyPreset {
		return
	}
	p.duration = p.presets[i]
}

// sending reports whether the session is past its deadline: either the
// settle already landed, or the last tick read zero remaining while the
// timer is about to fire.
func (p *CountdownPane) sending() bool {
	switch p.ctrl.State() {
	case countdown.StateCompleted:
		return true
	case countdown.StateRunning:
		return p.ctrl.Remaining() == 0
	default:
		return false
	}
}

// View renders the countdown pane.
func (p *CountdownPane) View() string {
	var b strings.Builder

	// Title
	title := p.styles.PaneTitleStyle.Render("⏰  COUNTDOWN")
	b.WriteString(title)
	b.WriteString("\n")

	// Separator
	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n\n")

	switch {
	case p.sending():
		b.WriteString("  " + p.styles.CountdownSendingStyle.Render("↑ Sending notification…"))
		b.WriteString("\n")

	case p.ctrl.Running():
		b.WriteString("  " + p.styles.CountdownRunningStyle.Render("▶ Counting down"))
		b.WriteString("\n\n")
		remaining := countdown.FormatDuration(p.ctrl.Remaining())
		b.WriteString("    " + p.styles.CountdownRunningStyle.Render(remaining))
		b.WriteString("\n\n")
		b.WriteString("  " + p.styles.StatLabelStyle.Render("Press space to stop"))
		b.WriteString("\n")

	default:
		b.WriteString("  " + p.styles.CountdownIdleStyle.Render("■ Waiting"))
		b.WriteString("\n\n")
		b.WriteString("  " + p.styles.StatLabelStyle.Render("Duration: ") + p.styles.StatValueStyle.Render(p.duration))
		b.WriteString("\n\n")

		// Preset shortcuts
		b.WriteString("  " + p.styles.StatLabelStyle.Render("Presets:"))
		b.WriteString("\n")
		for i, preset := range p.presets {
			label := preset
			if preset == settings.EmptyPreset {
				label = "—"
			}
			b.WriteString(fmt.Sprintf("    %s %s\n",
				p.styles.PresetKeyStyle.Render(fmt.Sprintf("[%d]", i+1)),
				p.styles.PresetValueStyle.Render(label),
			))
		}

		b.WriteString("\n")
		b.WriteString("  " + p.styles.StatLabelStyle.Render("Press space to start"))
		b.WriteString("\n")
	}

	// Input field when editing the duration
	if p.editing {
		b.WriteString("\n")
		prompt := p.styles.InputPromptStyle.Render("Duration: ")
		b.WriteString("  " + prompt + p.input.View())
		b.WriteString("\n")
	}

	// Apply pane style
	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}
