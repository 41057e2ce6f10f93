package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/greenjets/bladerunner-portal/models"
)

// NavigateTo switches the active page of the [RootModel] router. Payload, when
// set, is delivered to the destination page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is emitted by the login page after the admin login call
// completes.
type LoginResult struct {
	User models.User
	Err  error
}

type usersLoadedMsg struct {
	users []models.User
	err   error
}

type approvalDoneMsg struct {
	user models.User
	err  error
}

type deleteDoneMsg struct {
	err error
}

type clearStatusMsg struct{}
