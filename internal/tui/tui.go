package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndtruong/vango-client/internal/logger"
	"github.com/ndtruong/vango-client/internal/service"
)

// ErrUserQuit is returned by Run when the user exits with Ctrl+C.
var ErrUserQuit = errors.New("đã thoát chương trình")

// Page names registered with [RootModel]. pageLogin matches
// [nav.ScreenLogin] so session-expiry redirects land on the sign-in screen.
const (
	pageMenu     = "Menu"
	pageLogin    = "Login"
	pageRegister = "Register"
	pageHome     = "Home"
)

// TUI is the terminal shell of the VanGo client.
type TUI struct {
	services  *service.Services
	navigator *Navigator
	log       *logger.Logger
}

func New(services *service.Services, navigator *Navigator, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		navigator: navigator,
		log:       log,
	}
}

// Run builds the page set, starts the Bubble Tea program, and blocks until
// the user exits. The navigator is ready for programmatic screen switches
// for the duration of the run.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.Auth),
		pageRegister: NewRegisterModel(ctx, t.services.Auth),
		pageHome:     NewHomeModel(ctx, t.services.Auth, t.services.Ship),
	}

	root := NewRootModel(pages, pageMenu, t.navigator.markReady)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.navigator.attach(program)
	defer t.navigator.markStopped()

	finalModel, err := program.Run()
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
