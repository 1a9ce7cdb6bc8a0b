// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ndmitry/go-note-keeper/internal/config"
	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/service"
	"github.com/ndmitry/go-note-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.Account, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.Account, error)
	resolveFn     func(ctx context.Context, externalID string) (models.Account, error)
	createTokenFn func(ctx context.Context, account models.Account) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Resolve(ctx context.Context, externalID string) (models.Account, error) {
	return m.resolveFn(ctx, externalID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	return m.createTokenFn(ctx, account)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock NoteService
// ─────────────────────────────────────────────

// mockNoteService implements service.NoteService for unit tests.
type mockNoteService struct {
	createFn    func(ctx context.Context, ownerExternalID string, req models.CreateNoteRequest) (models.Note, error)
	listFn      func(ctx context.Context, ownerExternalID, search, serverID string, limit uint64) ([]models.Note, error)
	getFn       func(ctx context.Context, ownerExternalID, noteID string) (models.Note, error)
	updateFn    func(ctx context.Context, ownerExternalID, noteID string, req models.UpdateNoteRequest) (models.Note, error)
	deleteFn    func(ctx context.Context, ownerExternalID, noteID string) error
	botCreateFn func(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)
	botListFn   func(ctx context.Context, externalID string, limit uint64) ([]models.Note, error)
	botSearchFn func(ctx context.Context, externalID, query string, limit uint64) ([]models.Note, error)
	botDeleteFn func(ctx context.Context, noteID string) error
}

func (m *mockNoteService) CreateNote(ctx context.Context, ownerExternalID string, req models.CreateNoteRequest) (models.Note, error) {
	return m.createFn(ctx, ownerExternalID, req)
}

func (m *mockNoteService) ListNotes(ctx context.Context, ownerExternalID, search, serverID string, limit uint64) ([]models.Note, error) {
	return m.listFn(ctx, ownerExternalID, search, serverID, limit)
}

func (m *mockNoteService) GetNote(ctx context.Context, ownerExternalID, noteID string) (models.Note, error) {
	return m.getFn(ctx, ownerExternalID, noteID)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, ownerExternalID, noteID string, req models.UpdateNoteRequest) (models.Note, error) {
	return m.updateFn(ctx, ownerExternalID, noteID, req)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, ownerExternalID, noteID string) error {
	return m.deleteFn(ctx, ownerExternalID, noteID)
}

func (m *mockNoteService) BotCreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	return m.botCreateFn(ctx, req)
}

func (m *mockNoteService) BotListNotes(ctx context.Context, externalID string, limit uint64) ([]models.Note, error) {
	return m.botListFn(ctx, externalID, limit)
}

func (m *mockNoteService) BotSearchNotes(ctx context.Context, externalID, query string, limit uint64) ([]models.Note, error) {
	return m.botSearchFn(ctx, externalID, query, limit)
}

func (m *mockNoteService) BotDeleteNote(ctx context.Context, noteID string) error {
	return m.botDeleteFn(ctx, noteID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testExternalID  = "123456789012345678"
	testBearerToken = "Bearer stub-token"
)

// newNotesHandler builds a Handler around the given service mocks.
// An empty botKey leaves the bot surface open.
func newNotesHandler(t *testing.T, auth service.AuthService, notes service.NoteService, botKey string) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
		NoteService: notes,
	}
	return NewHandler(svcs, config.App{BotAPIKey: botKey, Version: "test"}, logger.Nop())
}

// okAuth returns an AuthService mock whose ParseToken accepts any token
// and resolves it to testExternalID.
func okAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{SignedString: tokenString, ExternalID: testExternalID}, nil
		},
	}
}

// serveRequest routes the request through the full chi router so that
// the middleware chain and URL params behave as in production.
func serveRequest(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// jsonBody serialises v to a JSON request body reader.
func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

// sampleNote is a convenience fixture used across multiple tests.
var sampleNote = models.Note{
	ID:              "0191f3a0-0000-7000-8000-000000000001",
	OwnerExternalID: testExternalID,
	Content:         "remember the raid at 9pm",
	Context:         models.NoteContext{ServerID: "srv-1", ServerName: "guild"},
}
