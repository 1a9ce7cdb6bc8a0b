// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ndmitry/go-note-keeper/internal/config"
	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/store"
	"github.com/ndmitry/go-note-keeper/internal/utils"
	"github.com/ndmitry/go-note-keeper/internal/validators"
	"github.com/ndmitry/go-note-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and JWT token
// lifecycle using an AccountRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// accountRepository is the data-access layer used to create and
	// look up accounts.
	accountRepository store.AccountRepository

	// validator checks register and login payloads before any
	// persistence work happens.
	validator validators.Validator

	// uuidGenerator supplies internal account ids.
	uuidGenerator *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AccountRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(accountRepository store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		validator:         validators.NewAccountValidator(),
		uuidGenerator:     utils.NewUUIDGenerator(),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Register creates a new account.
//
// The external id, display name and password are validated first. If the
// external id already belongs to a placeholder account auto-created by the
// bot surface, registration completes that account instead of failing;
// the person keeps every note the bot stored for them before they signed up.
//
// Returns the persisted account or:
//   - a validation error wrapped in ErrInvalidDataProvided
//   - store.ErrAccountAlreadyExists if the external id is taken by a
//     fully registered account
//   - a wrapped storage error on repository failure
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("external_id", req.ExternalID).Msg("invalid registration data provided")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}

	account := models.Account{
		ExternalID:   req.ExternalID,
		DisplayName:  strings.TrimSpace(req.DisplayName),
		PasswordHash: string(passwordHash),
	}

	existing, err := a.accountRepository.FindAccountByExternalID(ctx, req.ExternalID)
	switch {
	case err == nil && existing.IsPlaceholder():
		account.ID = existing.ID
		account.CreatedAt = existing.CreatedAt
		if err = a.accountRepository.CompleteAccount(ctx, account); err != nil {
			log.Err(err).Str("external_id", req.ExternalID).Msg("placeholder completion ended with error")
			return models.Account{}, fmt.Errorf("placeholder completion ended with error: %w", err)
		}
		return account, nil

	case err == nil:
		return models.Account{}, store.ErrAccountAlreadyExists

	case !errors.Is(err, store.ErrAccountNotFound):
		log.Err(err).Str("external_id", req.ExternalID).Msg("account lookup ended with error")
		return models.Account{}, fmt.Errorf("account lookup ended with error: %w", err)
	}

	account.ID = a.uuidGenerator.Generate()
	account.CreatedAt = time.Now().UTC()
	if err = a.accountRepository.CreateAccount(ctx, account); err != nil {
		log.Err(err).Str("external_id", req.ExternalID).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return account, nil
}

// Login authenticates an existing account.
//
// Unknown external ids, placeholder accounts and wrong passwords are all
// normalised to ErrWrongPassword so the response does not reveal whether
// an account exists.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("external_id", req.ExternalID).Msg("invalid login data provided")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.accountRepository.FindAccountByExternalID(ctx, req.ExternalID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Account{}, ErrWrongPassword
		}
		log.Err(err).Str("external_id", req.ExternalID).Msg("account search by external id failed")
		return models.Account{}, fmt.Errorf("account search by external id failed: %w", err)
	}

	if account.IsPlaceholder() {
		log.Warn().Str("external_id", req.ExternalID).Msg("login attempt on placeholder account")
		return models.Account{}, ErrWrongPassword
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("external_id", req.ExternalID).Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	return account, nil
}

// Resolve returns the account with the given external id. Used by the
// /auth/me endpoint after token validation.
func (a *authService) Resolve(ctx context.Context, externalID string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if externalID == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByExternalID(ctx, externalID)
	if err != nil {
		log.Err(err).Str("external_id", externalID).Msg("account search by external id failed")
		return models.Account{}, fmt.Errorf("account search by external id failed: %w", err)
	}

	return account, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the account's external id
// as the "sub" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.ExternalID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
