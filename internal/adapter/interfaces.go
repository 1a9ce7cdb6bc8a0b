// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating with
// the note-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/ndmitry/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the note-keeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server. On success it
	// stores the returned bearer token via SetToken and returns the account
	// identity extracted from the token. Returns an error if the request
	// fails or the server responds with a non-2xx status.
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)

	// Login authenticates with the server. On success it stores the returned
	// bearer token via SetToken and returns the account identity extracted
	// from the token. Returns an error if the request fails or the server
	// responds with a non-2xx status.
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)

	// Me fetches the authenticated account record. Requires a valid bearer
	// token to be set.
	Me(ctx context.Context) (models.Account, error)

	// CreateNote stores a new note owned by the authenticated account.
	// Requires a valid bearer token.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// ListNotes returns the authenticated account's notes, newest first,
	// optionally narrowed by a content search and a server id. A zero limit
	// leaves the page size to the server. Requires a valid bearer token.
	ListNotes(ctx context.Context, search, serverID string, limit uint64) ([]models.Note, error)

	// GetNote fetches a single owned note by id. Requires a valid bearer
	// token.
	GetNote(ctx context.Context, noteID string) (models.Note, error)

	// UpdateNote replaces the content of an owned note. Requires a valid
	// bearer token. Returns [ErrForbidden] (wrapped) if the note belongs to
	// another account.
	UpdateNote(ctx context.Context, noteID string, req models.UpdateNoteRequest) (models.Note, error)

	// DeleteNote removes an owned note. Requires a valid bearer token.
	// Returns [ErrForbidden] (wrapped) if the note belongs to another
	// account, [ErrNotFound] (wrapped) if it does not exist.
	DeleteNote(ctx context.Context, noteID string) error
}
