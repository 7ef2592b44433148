package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type MenuModel struct {
	items  []string
	pages  []string
	idx    int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Log in", "Create account", "Recover account"},
		pages: []string{"login", "register", "recovery"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(registerDoneMsg); ok && done.err == nil {
		m.status = "Account " + done.email + " created, you can log in now"
		return m, nil
	}
	if done, ok := msg.(logoutDoneMsg); ok {
		if done.err != nil {
			m.status = "Logged out locally; the server could not be reached"
		} else {
			m.status = "Logged out"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
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
	case "enter":
		page := m.pages[m.idx]
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(okStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(item)
		b.WriteString("\n")
	}

	return renderPage("REMOTE ACCESS", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move")
}
