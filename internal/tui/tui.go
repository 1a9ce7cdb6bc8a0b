package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/service"
	"github.com/ndmitry/go-note-keeper/models"
)

// TUI drives the two interactive flows of the terminal client: the
// authentication flow and the main notes loop. Each flow runs its own
// Bubble Tea program in the alternate screen buffer.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the welcome/login/register screens until the user either
// authenticates or quits. On success the returned account is the one issued
// by the server; the bearer token is already stored in the adapter.
func (t *TUI) LoginFlow(ctx context.Context) (models.Account, error) {
	model := newLoginAppModel(ctx, t.services, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Account{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.Account{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.Account{}, result.err
	}

	return result.resultAccount, nil
}

// MainLoop runs the notes list/detail/form screens for an authenticated
// account. It returns logout=true when the user asked to switch accounts,
// in which case the caller is expected to restart the login flow.
func (t *TUI) MainLoop(ctx context.Context, account models.Account) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services, account, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
