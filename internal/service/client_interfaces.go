package service

import (
	"context"

	"github.com/ndmitry/go-note-keeper/models"
)

// ClientAuthService defines the client-side contract for account registration
// and authentication against the remote server.
type ClientAuthService interface {
	// Register validates the credentials locally, creates the account on the
	// server and stores the issued bearer token in the adapter.
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)

	// Login validates the credentials locally and authenticates against the
	// server, storing the issued bearer token in the adapter.
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)

	// Me fetches the authenticated account record from the server.
	Me(ctx context.Context) (models.Account, error)

	// LoggedIn reports whether a bearer token is currently held.
	LoggedIn() bool

	// Logout drops the held bearer token.
	Logout()
}

// ClientNoteService defines the client-side contract for note management.
// All operations work against the remote server through the adapter; there is
// no local persistence.
type ClientNoteService interface {
	// Create validates the content locally and stores a new note on the
	// server, owned by the authenticated account.
	Create(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// List returns the account's notes, newest first, optionally narrowed by
	// a content search and a server id. A zero limit leaves the page size to
	// the server.
	List(ctx context.Context, search, serverID string, limit uint64) ([]models.Note, error)

	// Get fetches a single owned note by id.
	Get(ctx context.Context, noteID string) (models.Note, error)

	// Update validates the content locally and replaces the content of an
	// owned note on the server.
	Update(ctx context.Context, noteID string, req models.UpdateNoteRequest) (models.Note, error)

	// Delete removes an owned note on the server.
	Delete(ctx context.Context, noteID string) error
}
