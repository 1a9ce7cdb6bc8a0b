// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ndmitry/go-note-keeper/internal/config"
	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/store"
	"github.com/ndmitry/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock: store.AccountRepository
// ─────────────────────────────────────────────

type mockAccountRepository struct {
	createFn   func(ctx context.Context, account models.Account) error
	findFn     func(ctx context.Context, externalID string) (models.Account, error)
	completeFn func(ctx context.Context, account models.Account) error
}

func (m *mockAccountRepository) CreateAccount(ctx context.Context, account models.Account) error {
	if m.createFn != nil {
		return m.createFn(ctx, account)
	}
	return nil
}

func (m *mockAccountRepository) FindAccountByExternalID(ctx context.Context, externalID string) (models.Account, error) {
	if m.findFn != nil {
		return m.findFn(ctx, externalID)
	}
	return models.Account{}, store.ErrAccountNotFound
}

func (m *mockAccountRepository) CompleteAccount(ctx context.Context, account models.Account) error {
	if m.completeFn != nil {
		return m.completeFn(ctx, account)
	}
	return nil
}

func testAuthConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "note-keeper",
		TokenDuration: time.Hour,
	}
}

func validRegister() models.RegisterRequest {
	return models.RegisterRequest{
		ExternalID:  "123456789012345678",
		DisplayName: "John",
		Password:    "secret-password",
	}
}

func TestRegister_NewAccount(t *testing.T) {
	var created models.Account
	repo := &mockAccountRepository{
		createFn: func(ctx context.Context, account models.Account) error {
			created = account
			return nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	account, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	assert.Equal(t, "123456789012345678", account.ExternalID)
	assert.Equal(t, "John", account.DisplayName)
	assert.NotEmpty(t, account.ID)
	assert.False(t, account.CreatedAt.IsZero())

	require.NotEmpty(t, created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret-password")))
}

func TestRegister_CompletesPlaceholder(t *testing.T) {
	placeholder := models.Account{
		ID:          "existing-id",
		ExternalID:  "123456789012345678",
		DisplayName: "User_123456789012345678",
		CreatedAt:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	completed := false
	repo := &mockAccountRepository{
		findFn: func(ctx context.Context, externalID string) (models.Account, error) {
			return placeholder, nil
		},
		completeFn: func(ctx context.Context, account models.Account) error {
			completed = true
			require.Equal(t, "existing-id", account.ID)
			require.Equal(t, "John", account.DisplayName)
			require.NotEmpty(t, account.PasswordHash)
			return nil
		},
		createFn: func(ctx context.Context, account models.Account) error {
			t.Fatal("CreateAccount must not be called for placeholder completion")
			return nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	account, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)
	require.True(t, completed)

	// the placeholder id and creation time survive registration
	assert.Equal(t, "existing-id", account.ID)
	assert.Equal(t, placeholder.CreatedAt, account.CreatedAt)
}

func TestRegister_DuplicateExternalID(t *testing.T) {
	repo := &mockAccountRepository{
		findFn: func(ctx context.Context, externalID string) (models.Account, error) {
			return models.Account{ExternalID: externalID, PasswordHash: "$2a$10$existing"}, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.Register(context.Background(), validRegister())
	require.ErrorIs(t, err, store.ErrAccountAlreadyExists)
}

func TestRegister_InvalidData(t *testing.T) {
	svc := NewAuthService(&mockAccountRepository{}, testAuthConfig(), logger.Nop())

	tests := []struct {
		name   string
		mutate func(*models.RegisterRequest)
	}{
		{"bad external id", func(r *models.RegisterRequest) { r.ExternalID = "123" }},
		{"short display name", func(r *models.RegisterRequest) { r.DisplayName = "x" }},
		{"short password", func(r *models.RegisterRequest) { r.Password = "12345" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)

			_, err := svc.Register(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockAccountRepository{
		findFn: func(ctx context.Context, externalID string) (models.Account, error) {
			return models.Account{ExternalID: externalID, DisplayName: "John", PasswordHash: string(hash)}, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	account, err := svc.Login(context.Background(), models.LoginRequest{
		ExternalID: "123456789012345678",
		Password:   "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "John", account.DisplayName)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)

	repo := &mockAccountRepository{
		findFn: func(ctx context.Context, externalID string) (models.Account, error) {
			return models.Account{ExternalID: externalID, PasswordHash: string(hash)}, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		ExternalID: "123456789012345678",
		Password:   "not-the-password",
	})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownAccount(t *testing.T) {
	svc := NewAuthService(&mockAccountRepository{}, testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		ExternalID: "123456789012345678",
		Password:   "secret-password",
	})
	// unknown accounts look identical to wrong passwords
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_PlaceholderAccount(t *testing.T) {
	repo := &mockAccountRepository{
		findFn: func(ctx context.Context, externalID string) (models.Account, error) {
			return models.Account{ExternalID: externalID}, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		ExternalID: "123456789012345678",
		Password:   "secret-password",
	})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestResolve_Success(t *testing.T) {
	repo := &mockAccountRepository{
		findFn: func(ctx context.Context, externalID string) (models.Account, error) {
			return models.Account{ExternalID: externalID, DisplayName: "John"}, nil
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	account, err := svc.Resolve(context.Background(), "123456789012345678")
	require.NoError(t, err)
	assert.Equal(t, "John", account.DisplayName)
}

func TestResolve_NotFound(t *testing.T) {
	svc := NewAuthService(&mockAccountRepository{}, testAuthConfig(), logger.Nop())

	_, err := svc.Resolve(context.Background(), "123456789012345678")
	require.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestCreateToken_And_ParseToken_RoundTrip(t *testing.T) {
	svc := NewAuthService(&mockAccountRepository{}, testAuthConfig(), logger.Nop())

	token, err := svc.CreateToken(context.Background(), models.Account{ExternalID: "123456789012345678"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678", parsed.ExternalID)
}

func TestParseToken_Invalid(t *testing.T) {
	svc := NewAuthService(&mockAccountRepository{}, testAuthConfig(), logger.Nop())

	_, err := svc.ParseToken(context.Background(), "garbage.token.value")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestCreateToken_MissingSignKey(t *testing.T) {
	cfg := testAuthConfig()
	cfg.TokenSignKey = ""
	svc := NewAuthService(&mockAccountRepository{}, cfg, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.Account{ExternalID: "123456789012345678"})
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestRegister_RepositoryFailure(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &mockAccountRepository{
		createFn: func(ctx context.Context, account models.Account) error {
			return repoErr
		},
	}
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.Register(context.Background(), validRegister())
	require.ErrorIs(t, err, repoErr)
}
