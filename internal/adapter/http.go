package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/ndmitry/go-note-keeper/internal/config"
	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/utils"
	"github.com/ndmitry/go-note-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// response and stored via SetToken, and the account identity is read back
// from the token's subject claim.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	return h.obtainToken(ctx, "/api/auth/register", req, req.DisplayName)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// response and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	return h.obtainToken(ctx, "/api/auth/login", req, "")
}

// obtainToken runs one of the token-issuing auth calls. The server returns
// the token both in the Authorization header and in the JSON body; the body
// is authoritative, the header is a fallback.
func (h *httpServerAdapter) obtainToken(ctx context.Context, path string, body any, displayName string) (models.Account, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&tokenResp).
		Post(path)
	if err != nil {
		return models.Account{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	token := tokenResp.AccessToken
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.Account{}, fmt.Errorf("auth parse bearer token: %w", err)
		}
	}

	externalID, err := utils.ParseExternalIDFromJWT(token)
	if err != nil {
		return models.Account{}, fmt.Errorf("auth parse external id: %w", err)
	}

	h.SetToken(token)
	return models.Account{ExternalID: externalID, DisplayName: displayName}, nil
}

// Me implements [ServerAdapter]. It GETs the authenticated account record
// from GET /api/auth/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.Account, error) {
	var account models.Account

	resp, err := h.authedRequest(ctx).
		SetResult(&account).
		Get("/api/auth/me")
	if err != nil {
		return models.Account{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// CreateNote implements [ServerAdapter]. It POSTs the note to
// POST /api/notes with the bearer token attached, so the server assigns
// ownership from the token rather than the request body.
func (h *httpServerAdapter) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&note).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// ListNotes implements [ServerAdapter]. It GETs /api/notes with the optional
// search, server_id and limit query parameters.
func (h *httpServerAdapter) ListNotes(ctx context.Context, search, serverID string, limit uint64) ([]models.Note, error) {
	req := h.authedRequest(ctx)
	if search != "" {
		req.SetQueryParam("search", search)
	}
	if serverID != "" {
		req.SetQueryParam("server_id", serverID)
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}

	resp, err := req.Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode list notes response: %w", err)
	}

	return notes, nil
}

// GetNote implements [ServerAdapter]. It GETs /api/notes/{id}.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetResult(&note).
		Get("/api/notes/" + url.PathEscape(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote implements [ServerAdapter]. It PUTs the new content to
// PUT /api/notes/{id} and returns the updated note.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID string, req models.UpdateNoteRequest) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&note).
		Put("/api/notes/" + url.PathEscape(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// DeleteNote implements [ServerAdapter]. It sends DELETE /api/notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/notes/" + url.PathEscape(noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
