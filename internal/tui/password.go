package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/service"
)

// PasswordModel is the password change form: old password, new
// password, and confirmation. The existing secret is re-encrypted under
// the new password; devices keep working.
type PasswordModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewPasswordModel(ctx context.Context, auth service.AuthService) *PasswordModel {
	oldInput := textinput.New()
	oldInput.Placeholder = "current password"
	oldInput.CharLimit = 256
	oldInput.Width = 40
	oldInput.EchoMode = textinput.EchoPassword
	oldInput.EchoCharacter = '*'
	oldInput.Focus()

	newInput := textinput.New()
	newInput.Placeholder = "new password"
	newInput.CharLimit = 256
	newInput.Width = 40
	newInput.EchoMode = textinput.EchoPassword
	newInput.EchoCharacter = '*'

	confirmInput := textinput.New()
	confirmInput.Placeholder = "repeat new password"
	confirmInput.CharLimit = 256
	confirmInput.Width = 40
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	return &PasswordModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{oldInput, newInput, confirmInput},
	}
}

func (m *PasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *PasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(passwordChangedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		m.errMsg = ""
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		return m, func() tea.Msg { return NavigateTo{Page: "tokens"} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "tokens"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			oldPass := m.inputs[0].Value()
			newPass := m.inputs[1].Value()
			confirm := m.inputs[2].Value()

			switch {
			case oldPass == "" || newPass == "":
				m.errMsg = "both passwords are required"
				return m, nil
			case newPass != confirm:
				m.errMsg = "passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdChange(oldPass, newPass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *PasswordModel) View() string {
	labels := []string{"Current ", "New     ", "Repeat  "}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\nChanging password...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CHANGE PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *PasswordModel) cmdChange(oldPass, newPass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return passwordChangedMsg{err: auth.ChangePassword(ctx, oldPass, newPass)}
	}
}

func (m *PasswordModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *PasswordModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
