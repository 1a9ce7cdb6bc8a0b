package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/service"
	"github.com/ndmitry/go-note-keeper/internal/tui"
)

// App is the terminal client application. It owns the client services and
// the TUI and sequences the login flow into the main notes loop.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and tui are required")
	}
	return &App{services: services, tui: ui, logger: log}, nil
}

// Run blocks until the user quits. A logout from the main loop restarts the
// login flow with a fresh session.
func (a *App) Run() error {
	ctx := context.Background()

	account, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("login flow: %w", err)
	}

	a.logger.Info().Str("external_id", account.ExternalID).Msg("user authenticated")

	logout, err := a.tui.MainLoop(ctx, account)
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	if logout {
		a.services.AuthService.Logout()
		return a.Run()
	}

	return nil
}
