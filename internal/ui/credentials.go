// Package ui provides the terminal user interface for pushover-notifier.
package ui

import (
	"strings"

	"pushover-notifier/internal/config"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// credentialField identifies which credential is being edited.
type credentialField int

const (
	editNone credentialField = iota
	editToken
	editUserKey
)

// CredentialsPane edits and displays the Pushover credentials. The token
// field is masked unless reveal is toggled; edits only live in memory
// until the settings document is saved on quit.
type CredentialsPane struct {
	token   string
	userKey string
	reveal  bool
	focused bool
	width   int
	height  int
	editing credentialField
	input   textinput.Model
	styles  *Styles

	// Key bindings
	keys      CredentialsKeyMap
	inputKeys InputKeyMap
}

// NewCredentialsPane creates a new credentials pane with default key bindings.
func NewCredentialsPane(styles *Styles) *CredentialsPane {
	return NewCredentialsPaneWithKeys(styles, &config.KeysConfig{})
}

// NewCredentialsPaneWithKeys creates a new credentials pane with custom
// key bindings.
func NewCredentialsPaneWithKeys(styles *Styles, keyCfg *config.KeysConfig) *CredentialsPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}

	ti := textinput.New()
	ti.CharLimit = 64

	return &CredentialsPane{
		input:     ti,
		styles:    styles,
		keys:      NewCredentialsKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// SetSize sets the pane dimensions.
func (p *CredentialsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-16)
}

// SetFocused sets whether this pane is focused.
func (p *CredentialsPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *CredentialsPane) IsFocused() bool {
	return p.focused
}

// IsEditing returns whether a credential field is being edited.
func (p *CredentialsPane) IsEditing() bool {
	return p.editing != editNone
}

// Token returns the in-memory API token.
func (p *CredentialsPane) Token() string {
	return p.token
}

// UserKey returns the in-memory user key.
func (p *CredentialsPane) UserKey() string {
	return p.userKey
}

// HasCredentials reports whether both credentials are present.
func (p *CredentialsPane) HasCredentials() bool {
	return p.token != "" && p.userKey != ""
}

// SetCredentials replaces the in-memory credentials, typically from the
// loaded settings document.
func (p *CredentialsPane) SetCredentials(token, userKey string) {
	p.token = strings.TrimSpace(token)
	p.userKey = strings.TrimSpace(userKey)
}

// Update handles messages for the credentials pane.
func (p *CredentialsPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	// If we're editing a field, handle input
	if p.editing != editNone {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, p.inputKeys.Confirm):
				value := strings.TrimSpace(p.input.Value())
				switch p.editing {
				case editToken:
					p.token = value
				case editUserKey:
					p.userKey = value
				}
				p.stopEditing()
				return nil

			case key.Matches(msg, p.inputKeys.Cancel):
				p.stopEditing()
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
		case key.Matches(msg, p.keys.EditToken):
			return p.startEditing(editToken)

		case key.Matches(msg, p.keys.EditUserKey):
			return p.startEditing(editUserKey)

		case key.Matches(msg, p.keys.RevealToken):
			p.reveal = !p.reveal
		}
	}

	return nil
}

// startEditing opens the input for the given field, pre-filled with the
// current value. The token input echoes masked characters.
func (p *CredentialsPane) startEditing(field credentialField) tea.Cmd {
	p.editing = field

	switch field {
	case editToken:
		p.input.Placeholder = "API token"
		p.input.EchoMode = textinput.EchoPassword
		p.input.EchoCharacter = '•'
		p.input.SetValue(p.token)
	case editUserKey:
		p.input.Placeholder = "User key"
		p.input.EchoMode = textinput.EchoNormal
		p.input.SetValue(p.userKey)
	}

	p.input.Focus()
	return textinput.Blink
}

func (p *CredentialsPane) stopEditing() {
	p.editing = editNone
	p.input.Reset()
	p.input.EchoMode = textinput.EchoNormal
}

// View renders the credentials pane.
func (p *CredentialsPane) View() string {
	var b strings.Builder

	// Title
	title := p.styles.PaneTitleStyle.Render("🔑  CREDENTIALS")
	b.WriteString(title)
	b.WriteString("\n")

	// Separator
	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n\n")

	// Token line
	b.WriteString("  " + p.styles.StatLabelStyle.Render("API token: "))
	switch {
	case p.token == "":
		b.WriteString(p.styles.CredentialUnsetStyle.Render("not set"))
	case p.reveal:
		b.WriteString(p.styles.CredentialSetStyle.Render(p.truncateValue(p.token)))
	default:
		b.WriteString(p.styles.CredentialMaskedStyle.Render(maskToken(p.token)))
	}
	b.WriteString("\n")

	// User key line
	b.WriteString("  " + p.styles.StatLabelStyle.Render("User key:  "))
	if p.userKey == "" {
		b.WriteString(p.styles.CredentialUnsetStyle.Render("not set"))
	} else {
		b.WriteString(p.styles.CredentialSetStyle.Render(p.truncateValue(p.userKey)))
	}
	b.WriteString("\n")

	// Input field when editing
	if p.editing != editNone {
		b.WriteString("\n")
		prompt := "Token: "
		if p.editing == editUserKey {
			prompt = "User key: "
		}
		b.WriteString("  " + p.styles.InputPromptStyle.Render(prompt) + p.input.View())
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString("  " + p.styles.StatLabelStyle.Render("t edit token · u edit user key · r reveal"))
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

// truncateValue shortens a credential to the pane width so revealing a
// long token never wraps the layout.
func (p *CredentialsPane) truncateValue(value string) string {
	available := p.width - 16
	if available < 8 {
		available = 8
	}
	return runewidth.Truncate(value, available, "…")
}

// maskToken renders a fixed-length run of dots. The real length is
// hidden too; a shoulder-surfer learns nothing from the display.
func maskToken(token string) string {
	if token == "" {
		return ""
	}
	return strings.Repeat("•", 10)
}
