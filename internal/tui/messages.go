package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/service"
)

// NavigateTo switches the router to another page. An optional payload is
// delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type loginDoneMsg struct {
	email string
	err   error
}

type registerDoneMsg struct {
	email string
	err   error
}

type logoutDoneMsg struct {
	err error
}

type tokensLoadedMsg struct {
	tokens []service.TokenInfo
	err    error
}

type tokenCreatedMsg struct {
	share string
	err   error
}

type tokenDeletedMsg struct {
	err error
}

type shareCopiedMsg struct {
	err error
}

type recoveryStartedMsg struct {
	err error
}

type recoveryDoneMsg struct {
	err error
}

type passwordChangedMsg struct {
	err error
}

type recoveryFileSavedMsg struct {
	filename string
	err      error
}
