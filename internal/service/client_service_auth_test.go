package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ndmitry/go-note-keeper/internal/adapter"
	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/mock"
	"github.com/ndmitry/go-note-keeper/internal/store"
	"github.com/ndmitry/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClientAuthSvc — хелпер для создания clientAuthService с мок-адаптером
func newTestClientAuthSvc(t *testing.T, ctrl *gomock.Controller) (ClientAuthService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAuthService(mockAdapter, logger.Nop())
	return svc, mockAdapter
}

func validClientRegister() models.RegisterRequest {
	return models.RegisterRequest{
		ExternalID:  "123456789012345678",
		DisplayName: "alice",
		Password:    "secret-password",
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()
	req := validClientRegister()

	mockAdapter.EXPECT().Register(ctx, req).Return(models.Account{
		ExternalID:  req.ExternalID,
		DisplayName: req.DisplayName,
	}, nil)

	account, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, req.ExternalID, account.ExternalID)
}

func TestClientAuthService_Register_LocalValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// адаптер не должен вызываться при невалидных данных
	svc, _ := newTestClientAuthSvc(t, ctrl)

	tests := []struct {
		name   string
		mutate func(r *models.RegisterRequest)
	}{
		{name: "short external id", mutate: func(r *models.RegisterRequest) { r.ExternalID = "42" }},
		{name: "non-numeric external id", mutate: func(r *models.RegisterRequest) { r.ExternalID = "12345678901234567a" }},
		{name: "display name too short", mutate: func(r *models.RegisterRequest) { r.DisplayName = "a" }},
		{name: "password too short", mutate: func(r *models.RegisterRequest) { r.Password = "12345" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validClientRegister()
			tt.mutate(&req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestClientAuthService_Register_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()
	req := validClientRegister()

	mockAdapter.EXPECT().Register(ctx, req).
		Return(models.Account{}, fmt.Errorf("%w: external id already registered", adapter.ErrConflict))

	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, store.ErrAccountAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()
	req := models.LoginRequest{ExternalID: "123456789012345678", Password: "secret-password"}

	mockAdapter.EXPECT().Login(ctx, req).Return(models.Account{ExternalID: req.ExternalID}, nil)

	account, err := svc.Login(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, req.ExternalID, account.ExternalID)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()
	req := models.LoginRequest{ExternalID: "123456789012345678", Password: "wrong-pass"}

	mockAdapter.EXPECT().Login(ctx, req).
		Return(models.Account{}, fmt.Errorf("%w: invalid external id/password", adapter.ErrUnauthorized))

	_, err := svc.Login(ctx, req)
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientAuthService_Login_LocalValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.LoginRequest{ExternalID: "not-numeric", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Me / LoggedIn ────────────────────────────────────────────────────────────

func TestClientAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Me(ctx).Return(models.Account{DisplayName: "alice"}, nil)

	account, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", account.DisplayName)
}

func TestClientAuthService_Me_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Me(ctx).
		Return(models.Account{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, "Unauthorized"))

	_, err := svc.Me(ctx)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestClientAuthService_LoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)

	gomock.InOrder(
		mockAdapter.EXPECT().Token().Return(""),
		mockAdapter.EXPECT().Token().Return("tok-123"),
	)

	assert.False(t, svc.LoggedIn())
	assert.True(t, svc.LoggedIn())
}

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)

	gomock.InOrder(
		mockAdapter.EXPECT().SetToken(""),
		mockAdapter.EXPECT().Token().Return(""),
	)

	svc.Logout()
	assert.False(t, svc.LoggedIn())
}

func TestClientAuthService_UnknownErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	netErr := errors.New("dial tcp: connection refused")
	mockAdapter.EXPECT().Me(ctx).Return(models.Account{}, netErr)

	_, err := svc.Me(ctx)
	assert.ErrorIs(t, err, netErr)
}
