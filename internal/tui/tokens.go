package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/service"
)

// TokensModel is the main logged-in screen: it lists the account's
// authorization tokens and drives creation, deletion, clipboard copy of
// the share string, and the recovery file download.
type TokensModel struct {
	ctx    context.Context
	auth   service.AuthService
	tokens service.TokenService

	items   []service.TokenInfo
	idx     int
	loading bool
	status  string
	errMsg  string

	creating  bool
	nameInput textinput.Model
	useOnce   bool
}

func NewTokensModel(ctx context.Context, auth service.AuthService, tokens service.TokenService) *TokensModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "token name"
	nameInput.CharLimit = 100
	nameInput.Width = 40

	return &TokensModel{
		ctx:       ctx,
		auth:      auth,
		tokens:    tokens,
		nameInput: nameInput,
	}
}

func (m *TokensModel) Init() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *TokensModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case tokensLoadedMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		m.items = result.tokens
		if m.idx >= len(m.items) {
			m.idx = 0
		}
		return m, nil

	case tokenCreatedMsg:
		m.creating = false
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		m.status = "Token created"
		m.loading = true
		return m, m.cmdLoad()

	case tokenDeletedMsg:
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		m.status = "Token deleted"
		m.loading = true
		return m, m.cmdLoad()

	case shareCopiedMsg:
		if result.err != nil {
			m.errMsg = result.err.Error()
		} else {
			m.status = "Share string copied to clipboard"
		}
		return m, nil

	case recoveryFileSavedMsg:
		if result.err != nil {
			m.errMsg = result.err.Error()
		} else {
			m.status = "Recovery file saved as " + result.filename
		}
		return m, nil

	case logoutDoneMsg:
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: result}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.creating {
		return m.updateCreateForm(keyMsg)
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "n":
		m.creating = true
		m.useOnce = false
		m.errMsg = ""
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return m, textinput.Blink
	case "d":
		if len(m.items) == 0 {
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdDelete(m.items[m.idx].ID)
	case "c":
		if len(m.items) == 0 {
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdCopy(m.items[m.idx].Share)
	case "r":
		m.loading = true
		m.errMsg = ""
		return m, m.cmdLoad()
	case "f":
		m.errMsg = ""
		return m, m.cmdSaveRecoveryFile()
	case "p":
		return m, func() tea.Msg { return NavigateTo{Page: "password"} }
	case "l":
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *TokensModel) updateCreateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.creating = false
		return m, nil
	case "tab":
		m.useOnce = !m.useOnce
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.errMsg = "token name is required"
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdCreate(name, m.useOnce)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(tea.Msg(keyMsg))
	return m, cmd
}

func (m *TokensModel) View() string {
	if m.creating {
		return m.viewCreateForm()
	}

	var b strings.Builder

	if m.status != "" {
		b.WriteString(okStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading tokens...\n")
	case len(m.items) == 0:
		b.WriteString("No authorization tokens yet. Press n to create one.\n")
	default:
		b.WriteString(fmt.Sprintf("%-24s │ %-8s │ %s\n", "Name", "Use once", "Share"))
		b.WriteString(strings.Repeat("─", 70))
		b.WriteString("\n")
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = cursorStyle.Render(">")
			}
			name := item.PlainName
			if name == "" {
				name = "(unreadable)"
			}
			useOnce := "no"
			if item.UseOnce {
				useOnce = "yes"
			}
			b.WriteString(fmt.Sprintf("%s %-22s │ %-8s │ %s\n",
				cursor, fitText(name, 22), useOnce, fitText(item.Share, 28)))
		}

		if m.idx < len(m.items) {
			b.WriteString("\n")
			b.WriteString(shareStyle.Render(m.items[m.idx].Share))
			b.WriteString("\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("AUTHORIZATION TOKENS", strings.TrimRight(b.String(), "\n"),
		"n: new │ d: delete │ c: copy share │ f: recovery file │ p: password │ r: reload │ l: log out")
}

func (m *TokensModel) viewCreateForm() string {
	var b strings.Builder
	b.WriteString("Name     [")
	b.WriteString(m.nameInput.View())
	b.WriteString("]\n")

	useOnce := "[ ]"
	if m.useOnce {
		useOnce = "[x]"
	}
	b.WriteString("Use once ")
	b.WriteString(useOnce)
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NEW TOKEN", strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: toggle use once │ enter: create")
}

func (m *TokensModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	tokens := m.tokens
	return func() tea.Msg {
		infos, err := tokens.List(ctx)
		return tokensLoadedMsg{tokens: infos, err: err}
	}
}

func (m *TokensModel) cmdCreate(name string, useOnce bool) tea.Cmd {
	ctx := m.ctx
	tokens := m.tokens
	return func() tea.Msg {
		_, share, err := tokens.Create(ctx, name, useOnce)
		return tokenCreatedMsg{share: share, err: err}
	}
}

func (m *TokensModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	tokens := m.tokens
	return func() tea.Msg {
		return tokenDeletedMsg{err: tokens.Delete(ctx, id)}
	}
}

func (m *TokensModel) cmdCopy(share string) tea.Cmd {
	return func() tea.Msg {
		return shareCopiedMsg{err: clipboard.WriteAll(share)}
	}
}

func (m *TokensModel) cmdSaveRecoveryFile() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		filename, data, err := auth.RecoveryArtifact(ctx)
		if err != nil {
			return recoveryFileSavedMsg{err: err}
		}
		if err := os.WriteFile(filename, data, 0o600); err != nil {
			return recoveryFileSavedMsg{err: err}
		}
		return recoveryFileSavedMsg{filename: filename}
	}
}

func (m *TokensModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}
