package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndtruong/vango-client/models"
)

// NavigateTo switches the active page of [RootModel]. An optional Payload is
// delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the async login command.
type LoginResult struct {
	Err  error
	Auth *models.AuthData
}

// RegisterResult is produced by the async registration command.
type RegisterResult struct {
	Err  error
	Auth *models.AuthData
}

// RegisterSuccessNotice is passed to the home page after a successful
// registration.
type RegisterSuccessNotice struct {
	FullName string
}

type shipRequestsLoadedMsg struct {
	items []models.ShipRequest
	err   error
}

type loggedOutMsg struct {
	err error
}
