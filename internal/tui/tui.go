package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/service"
)

// ErrUserQuit is returned when the program ends because the user hit
// Ctrl+C rather than because of a failure.
var ErrUserQuit = errors.New("quit by user")

// TUI owns the page set and runs the Bubble Tea program.
type TUI struct {
	auth   service.AuthService
	tokens service.TokenService
}

func New(auth service.AuthService, tokens service.TokenService) *TUI {
	return &TUI{auth: auth, tokens: tokens}
}

// Run blocks until the user quits. With loggedIn set the program opens
// straight on the token list, skipping the menu; this is the case when
// a cached session was resumed at startup.
func (t *TUI) Run(ctx context.Context, loggedIn bool) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.auth),
		"register": NewRegisterModel(ctx, t.auth),
		"recovery": NewRecoveryModel(ctx, t.auth),
		"tokens":   NewTokensModel(ctx, t.auth, t.tokens),
		"password": NewPasswordModel(ctx, t.auth),
	}

	startPage := "menu"
	if loggedIn {
		startPage = "tokens"
	}
	root := NewRootModel(pages, startPage)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
