// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ndmitry/go-note-keeper/internal/service"
	"github.com/ndmitry/go-note-keeper/internal/store"
	"github.com/ndmitry/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// POST /api/notes — dashboard variant
// ─────────────────────────────────────────────

func TestCreateNote_WithBearerToken(t *testing.T) {
	notes := &mockNoteService{
		createFn: func(ctx context.Context, ownerExternalID string, req models.CreateNoteRequest) (models.Note, error) {
			assert.Equal(t, testExternalID, ownerExternalID)
			assert.Equal(t, "remember the raid at 9pm", req.Content)
			return sampleNote, nil
		},
		botCreateFn: func(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
			t.Fatal("bot creation must not be used when a bearer token is present")
			return models.Note{}, nil
		},
	}
	h := newNotesHandler(t, okAuth(), notes, "")

	body := models.CreateNoteRequest{Content: "remember the raid at 9pm"}
	req := httptest.NewRequest(http.MethodPost, "/api/notes", jsonBody(t, body))
	req.Header.Set("Authorization", testBearerToken)
	rr := serveRequest(h, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, sampleNote.ID, got.ID)
	assert.Equal(t, testExternalID, got.OwnerExternalID)
}

func TestCreateNote_TokenOwnerOverridesBodyExternalID(t *testing.T) {
	notes := &mockNoteService{
		createFn: func(ctx context.Context, ownerExternalID string, req models.CreateNoteRequest) (models.Note, error) {
			// владелец берётся из токена, а не из тела запроса
			assert.Equal(t, testExternalID, ownerExternalID)
			return sampleNote, nil
		},
	}
	h := newNotesHandler(t, okAuth(), notes, "")

	body := models.CreateNoteRequest{ExternalID: "876543210987654321", Content: "hijack attempt"}
	req := httptest.NewRequest(http.MethodPost, "/api/notes", jsonBody(t, body))
	req.Header.Set("Authorization", testBearerToken)
	rr := serveRequest(h, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateNote_InvalidBearerToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newNotesHandler(t, auth, &mockNoteService{}, "")

	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{"content":"x"}`))
	req.Header.Set("Authorization", "Bearer expired")
	rr := serveRequest(h, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ─────────────────────────────────────────────
// POST /api/notes — bot variant (no bearer token)
// ─────────────────────────────────────────────

func TestCreateNote_BotVariant(t *testing.T) {
	notes := &mockNoteService{
		botCreateFn: func(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
			assert.Equal(t, testExternalID, req.ExternalID)
			return sampleNote, nil
		},
		createFn: func(ctx context.Context, ownerExternalID string, req models.CreateNoteRequest) (models.Note, error) {
			t.Fatal("dashboard creation must not be used without a bearer token")
			return models.Note{}, nil
		},
	}
	h := newNotesHandler(t, &mockAuthService{}, notes, "")

	body := models.CreateNoteRequest{ExternalID: testExternalID, Content: "from the bot"}
	req := httptest.NewRequest(http.MethodPost, "/api/notes", jsonBody(t, body))
	rr := serveRequest(h, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateNote_BotVariant_KeyRequired(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{name: "correct key", key: "shared-secret", wantStatus: http.StatusOK},
		{name: "wrong key", key: "guess", wantStatus: http.StatusUnauthorized},
		{name: "missing key", key: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &mockNoteService{
				botCreateFn: func(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
					return sampleNote, nil
				},
			}
			h := newNotesHandler(t, &mockAuthService{}, notes, "shared-secret")

			body := models.CreateNoteRequest{ExternalID: testExternalID, Content: "from the bot"}
			req := httptest.NewRequest(http.MethodPost, "/api/notes", jsonBody(t, body))
			if tt.key != "" {
				req.Header.Set("X-Bot-Key", tt.key)
			}
			rr := serveRequest(h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCreateNote_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "empty content", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "storage failure", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &mockNoteService{
				createFn: func(ctx context.Context, ownerExternalID string, req models.CreateNoteRequest) (models.Note, error) {
					return models.Note{}, tt.err
				},
			}
			h := newNotesHandler(t, okAuth(), notes, "")

			req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{"content":""}`))
			req.Header.Set("Authorization", testBearerToken)
			rr := serveRequest(h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCreateNote_MalformedJSON(t *testing.T) {
	h := newNotesHandler(t, okAuth(), &mockNoteService{}, "")

	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader("{broken"))
	req.Header.Set("Authorization", testBearerToken)
	rr := serveRequest(h, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ─────────────────────────────────────────────
// GET /api/notes
// ─────────────────────────────────────────────

func TestListNotes_QueryParamsForwarded(t *testing.T) {
	notes := &mockNoteService{
		listFn: func(ctx context.Context, ownerExternalID, search, serverID string, limit uint64) ([]models.Note, error) {
			assert.Equal(t, testExternalID, ownerExternalID)
			assert.Equal(t, "raid", search)
			assert.Equal(t, "srv-1", serverID)
			assert.Equal(t, uint64(25), limit)
			return []models.Note{sampleNote}, nil
		},
	}
	h := newNotesHandler(t, okAuth(), notes, "")

	req := httptest.NewRequest(http.MethodGet, "/api/notes?search=raid&server_id=srv-1&limit=25", nil)
	req.Header.Set("Authorization", testBearerToken)
	rr := serveRequest(h, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got []models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, sampleNote.ID, got[0].ID)
}

func TestListNotes_NoParamsMeansZeroLimit(t *testing.T) {
	notes := &mockNoteService{
		listFn: func(ctx context.Context, ownerExternalID, search, serverID string, limit uint64) ([]models.Note, error) {
			assert.Empty(t, search)
			assert.Empty(t, serverID)
			assert.Zero(t, limit)
			return []models.Note{}, nil
		},
	}
	h := newNotesHandler(t, okAuth(), notes, "")

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", testBearerToken)
	rr := serveRequest(h, req)

	require.Equal(t, http.StatusOK, rr.Code)
	// пустой список сериализуется как [], а не null
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestListNotes_InvalidLimit(t *testing.T) {
	h := newNotesHandler(t, okAuth(), &mockNoteService{}, "")

	req := httptest.NewRequest(http.MethodGet, "/api/notes?limit=banana", nil)
	req.Header.Set("Authorization", testBearerToken)
	rr := serveRequest(h, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListNotes_WithoutToken(t *testing.T) {
	h := newNotesHandler(t, &mockAuthService{}, &mockNoteService{}, "")

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	rr := serveRequest(h, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ─────────────────────────────────────────────
// GET /api/notes/{noteID}
// ─────────────────────────────────────────────

func TestGetNote_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		getFn      func(ctx context.Context, ownerExternalID, noteID string) (models.Note, error)
		wantStatus int
	}{
		{
			name: "owned note is returned",
			getFn: func(ctx context.Context, ownerExternalID, noteID string) (models.Note, error) {
				assert.Equal(t, testExternalID, ownerExternalID)
				assert.Equal(t, sampleNote.ID, noteID)
				return sampleNote, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown note maps to 404",
			getFn: func(ctx context.Context, ownerExternalID, noteID string) (models.Note, error) {
				return models.Note{}, store.ErrNoteNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "foreign note maps to 403",
			getFn: func(ctx context.Context, ownerExternalID, noteID string) (models.Note, error) {
				return models.Note{}, service.ErrNotOwner
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "storage failure maps to 500",
			getFn: func(ctx context.Context, ownerExternalID, noteID string) (models.Note, error) {
				return models.Note{}, store.ErrExecutingQuery
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &mockNoteService{getFn: tt.getFn}
			h := newNotesHandler(t, okAuth(), notes, "")

			req := httptest.NewRequest(http.MethodGet, "/api/notes/"+sampleNote.ID, nil)
			req.Header.Set("Authorization", testBearerToken)
			rr := serveRequest(h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ─────────────────────────────────────────────
// PUT /api/notes/{noteID}
// ─────────────────────────────────────────────

func TestUpdateNote_Success(t *testing.T) {
	updated := sampleNote
	updated.Content = "rescheduled to 10pm"

	notes := &mockNoteService{
		updateFn: func(ctx context.Context, ownerExternalID, noteID string, req models.UpdateNoteRequest) (models.Note, error) {
			assert.Equal(t, testExternalID, ownerExternalID)
			assert.Equal(t, sampleNote.ID, noteID)
			assert.Equal(t, "rescheduled to 10pm", req.Content)
			return updated, nil
		},
	}
	h := newNotesHandler(t, okAuth(), notes, "")

	req := httptest.NewRequest(http.MethodPut, "/api/notes/"+sampleNote.ID,
		jsonBody(t, models.UpdateNoteRequest{Content: "rescheduled to 10pm"}))
	req.Header.Set("Authorization", testBearerToken)
	rr := serveRequest(h, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "rescheduled to 10pm", got.Content)
}

func TestUpdateNote_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "empty content", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "unknown note", err: store.ErrNoteNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign note", err: service.ErrNotOwner, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &mockNoteService{
				updateFn: func(ctx context.Context, ownerExternalID, noteID string, req models.UpdateNoteRequest) (models.Note, error) {
					return models.Note{}, tt.err
				},
			}
			h := newNotesHandler(t, okAuth(), notes, "")

			req := httptest.NewRequest(http.MethodPut, "/api/notes/"+sampleNote.ID,
				strings.NewReader(`{"content":"x"}`))
			req.Header.Set("Authorization", testBearerToken)
			rr := serveRequest(h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ─────────────────────────────────────────────
// DELETE /api/notes/{noteID}
// ─────────────────────────────────────────────

func TestDeleteNote_Success(t *testing.T) {
	notes := &mockNoteService{
		deleteFn: func(ctx context.Context, ownerExternalID, noteID string) error {
			assert.Equal(t, testExternalID, ownerExternalID)
			assert.Equal(t, sampleNote.ID, noteID)
			return nil
		},
	}
	h := newNotesHandler(t, okAuth(), notes, "")

	req := httptest.NewRequest(http.MethodDelete, "/api/notes/"+sampleNote.ID, nil)
	req.Header.Set("Authorization", testBearerToken)
	rr := serveRequest(h, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Note deleted successfully", resp.Message)
}

func TestDeleteNote_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown note", err: store.ErrNoteNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign note", err: service.ErrNotOwner, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &mockNoteService{
				deleteFn: func(ctx context.Context, ownerExternalID, noteID string) error {
					return tt.err
				},
			}
			h := newNotesHandler(t, okAuth(), notes, "")

			req := httptest.NewRequest(http.MethodDelete, "/api/notes/"+sampleNote.ID, nil)
			req.Header.Set("Authorization", testBearerToken)
			rr := serveRequest(h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
