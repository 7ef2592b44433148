package tui

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/service"
)

// RecoveryModel drives the two-step account recovery: first it requests
// the recovery mail for an email address, then it collects the mailed
// recovery key, the new password with confirmation, and optionally the
// path to a saved recovery file. Without a file the user must toggle the
// explicit secret-loss acknowledgement before the form submits.
type RecoveryModel struct {
	ctx  context.Context
	auth service.AuthService

	started    bool
	submitting bool
	errMsg     string
	status     string

	inputs           []textinput.Model
	focus            int
	acceptSecretLoss bool
}

const (
	recoveryFieldEmail = iota
	recoveryFieldKey
	recoveryFieldPassword
	recoveryFieldConfirm
	recoveryFieldFile
)

func NewRecoveryModel(ctx context.Context, auth service.AuthService) *RecoveryModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	keyInput := textinput.New()
	keyInput.Placeholder = "recovery key from the mail"
	keyInput.CharLimit = 256
	keyInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "new password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	confirmInput := textinput.New()
	confirmInput.Placeholder = "repeat new password"
	confirmInput.CharLimit = 256
	confirmInput.Width = 40
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	fileInput := textinput.New()
	fileInput.Placeholder = "path to recovery file (optional)"
	fileInput.CharLimit = 4096
	fileInput.Width = 40

	return &RecoveryModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{emailInput, keyInput, passwordInput, confirmInput, fileInput},
	}
}

func (m *RecoveryModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RecoveryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case recoveryStartedMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		m.started = true
		m.errMsg = ""
		m.status = "Recovery mail sent, enter the key from it below"
		m.focusField(recoveryFieldKey)
		return m, nil

	case recoveryDoneMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "ctrl+a":
			m.acceptSecretLoss = !m.acceptSecretLoss
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			if !m.started {
				return m.submitStart()
			}
			return m.submitRecovery()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RecoveryModel) submitStart() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(m.inputs[recoveryFieldEmail].Value())
	if email == "" {
		m.errMsg = "email is required"
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx := m.ctx
	auth := m.auth
	return m, func() tea.Msg {
		return recoveryStartedMsg{err: auth.StartRecovery(ctx, email)}
	}
}

func (m *RecoveryModel) submitRecovery() (tea.Model, tea.Cmd) {
	params := service.RecoverParams{
		Email:            strings.TrimSpace(m.inputs[recoveryFieldEmail].Value()),
		RecoveryKey:      strings.TrimSpace(m.inputs[recoveryFieldKey].Value()),
		NewPassword:      m.inputs[recoveryFieldPassword].Value(),
		ConfirmPassword:  m.inputs[recoveryFieldConfirm].Value(),
		AcceptSecretLoss: m.acceptSecretLoss,
	}

	if params.RecoveryKey == "" || params.NewPassword == "" {
		m.errMsg = "recovery key and new password are required"
		return m, nil
	}

	if path := strings.TrimSpace(m.inputs[recoveryFieldFile].Value()); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			m.errMsg = "read recovery file: " + err.Error()
			return m, nil
		}
		params.RecoveryFile = data
	}

	m.errMsg = ""
	m.submitting = true

	ctx := m.ctx
	auth := m.auth
	return m, func() tea.Msg {
		return recoveryDoneMsg{err: auth.Recover(ctx, params)}
	}
}

func (m *RecoveryModel) View() string {
	labels := []string{"Email   ", "Key     ", "Password", "Repeat  ", "File    "}

	var b strings.Builder

	if m.status != "" {
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	visible := 1
	if m.started {
		visible = len(m.inputs)
	}
	for i := 0; i < visible; i++ {
		b.WriteString(labels[i])
		b.WriteString(" [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.started {
		accept := "[ ]"
		if m.acceptSecretLoss {
			accept = "[x]"
		}
		b.WriteString("\n")
		b.WriteString(accept)
		b.WriteString(" I understand that without a recovery file all registered\n    chargers lose their pairing and must be re-registered (ctrl+a)\n")
	}

	if m.submitting {
		b.WriteString("\nWorking...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ACCOUNT RECOVERY", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ctrl+a: toggle acknowledgement │ enter: submit")
}

func (m *RecoveryModel) focusField(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *RecoveryModel) focusNext() {
	if !m.started {
		return
	}
	m.focusField((m.focus + 1) % len(m.inputs))
}

func (m *RecoveryModel) focusPrev() {
	if !m.started {
		return
	}
	m.focusField((m.focus - 1 + len(m.inputs)) % len(m.inputs))
}
