package service

import (
	"context"

	"github.com/ndmitry/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// AuthService handles account registration, credential verification and
// JWT token lifecycle.
type AuthService interface {
	// Register creates a new account, or completes a placeholder
	// account previously auto-created by the bot surface.
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)

	// Login verifies the credentials and returns the account.
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)

	// Resolve returns the account with the given external id.
	Resolve(ctx context.Context, externalID string) (models.Account, error)

	// CreateToken issues a signed JWT for the given account.
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)

	// ParseToken validates a raw JWT string and extracts the owner's
	// external id.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService implements the note operations of both the authenticated
// dashboard surface and the unauthenticated bot surface.
type NoteService interface {
	// CreateNote stores a new note owned by ownerExternalID.
	CreateNote(ctx context.Context, ownerExternalID string, req models.CreateNoteRequest) (models.Note, error)

	// ListNotes returns the owner's notes, newest first, optionally
	// narrowed by a case-insensitive content search and a server id.
	// A zero limit applies the default dashboard page size.
	ListNotes(ctx context.Context, ownerExternalID string, search, serverID string, limit uint64) ([]models.Note, error)

	// GetNote returns a single note after checking ownership.
	GetNote(ctx context.Context, ownerExternalID, noteID string) (models.Note, error)

	// UpdateNote replaces the content of an owned note and refreshes
	// its updated_at timestamp.
	UpdateNote(ctx context.Context, ownerExternalID, noteID string, req models.UpdateNoteRequest) (models.Note, error)

	// DeleteNote removes an owned note.
	DeleteNote(ctx context.Context, ownerExternalID, noteID string) error

	// BotCreateNote stores a note keyed off the caller-supplied
	// external id, auto-creating a placeholder account if needed.
	BotCreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// BotListNotes returns the newest notes of an external id.
	// A zero limit applies the bot default.
	BotListNotes(ctx context.Context, externalID string, limit uint64) ([]models.Note, error)

	// BotSearchNotes searches an external id's notes by content.
	// A zero limit applies the bot default.
	BotSearchNotes(ctx context.Context, externalID, query string, limit uint64) ([]models.Note, error)

	// BotDeleteNote removes a note by id without any ownership check.
	// The trust boundary is the shared bot key enforced at the
	// transport layer, when configured.
	BotDeleteNote(ctx context.Context, noteID string) error
}
