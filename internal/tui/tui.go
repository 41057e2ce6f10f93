package tui

import (
	"context"
	"errors"

	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/service"
	"github.com/greenjets/bladerunner-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned when the operator leaves the console with Ctrl+C
// instead of logging out.
var ErrUserQuit = errors.New("user quit the console")

// TUI is the interactive admin console. It runs two Bubble Tea programs in
// sequence: the admin login form and the user management loop.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are not provided")
	}
	return &TUI{services: services, logger: log}, nil
}

// Run drives the console session: login, then the users screen, looping back
// to login whenever the operator logs out.
func (t *TUI) Run(ctx context.Context) error {
	for {
		admin, err := t.loginFlow(ctx)
		if err != nil {
			return err
		}

		logout, err := t.usersLoop(ctx, admin)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
	}
}

func (t *TUI) loginFlow(ctx context.Context) (models.User, error) {
	root := NewRootModel(map[string]tea.Model{
		"login": NewLoginModel(ctx, t.services.ConsoleAdminService),
	}, "login")

	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

func (t *TUI) usersLoop(ctx context.Context, admin models.User) (logout bool, err error) {
	model := newUsersModel(ctx, t.services.ConsoleAdminService, admin)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(usersModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
