package service

import (
	"context"
	"fmt"

	"github.com/ndmitry/go-note-keeper/internal/adapter"
	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/validators"
	"github.com/ndmitry/go-note-keeper/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		validator: validators.NewAccountValidator(),
		logger:    logger,
	}
}

// Register validates the credentials with the same rules the server applies,
// so obvious mistakes are rejected without a round trip.
func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.Account{}, mapAdapterError(err)
	}

	return account, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.Account{}, mapAdapterError(err)
	}

	return account, nil
}

func (a *clientAuthService) Me(ctx context.Context) (models.Account, error) {
	account, err := a.adapter.Me(ctx)
	if err != nil {
		return models.Account{}, mapAdapterError(err)
	}

	return account, nil
}

func (a *clientAuthService) LoggedIn() bool {
	return a.adapter.Token() != ""
}

func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
}
