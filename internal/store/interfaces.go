// SPDX-License-Identifier: Apache-2.0

// Package store contains the persistence layer: SQL connections,
// schema migrations and repositories for accounts and notes.
//
// Two backends are supported. A DSN starting with postgres:// (or
// postgresql://) opens a PostgreSQL connection through the pgx stdlib
// driver; any other DSN is treated as a path to an SQLite database
// file. Repositories are backend-agnostic: queries are built with
// squirrel using the placeholder format of the active dialect.
package store

import (
	"context"
	"time"

	"github.com/ndmitry/go-note-keeper/models"
)

// AccountRepository persists user accounts keyed by their external
// chat-platform identifier.
type AccountRepository interface {
	// CreateAccount inserts a new account. Returns
	// ErrAccountAlreadyExists if the external id is already taken.
	CreateAccount(ctx context.Context, account models.Account) error

	// FindAccountByExternalID returns the account with the given
	// external id, or ErrAccountNotFound.
	FindAccountByExternalID(ctx context.Context, externalID string) (models.Account, error)

	// CompleteAccount fills in the display name and password hash of
	// an existing placeholder account. Returns ErrAccountNotFound if
	// no row was updated.
	CompleteAccount(ctx context.Context, account models.Account) error
}

// NoteFilter narrows down a note listing. OwnerExternalID is
// mandatory; the other fields are optional.
type NoteFilter struct {
	OwnerExternalID string
	// Search is matched case-insensitively as a substring of the
	// note content.
	Search string
	// ServerID restricts results to notes taken on one server.
	ServerID string
	// Limit caps the number of returned notes. Zero means no cap.
	Limit uint64
}

// NoteRepository persists notes.
type NoteRepository interface {
	// CreateNote inserts a new note.
	CreateNote(ctx context.Context, note models.Note) error

	// ListNotes returns notes matching the filter, newest first.
	ListNotes(ctx context.Context, filter NoteFilter) ([]models.Note, error)

	// GetNoteByID returns the note with the given id, or
	// ErrNoteNotFound.
	GetNoteByID(ctx context.Context, id string) (models.Note, error)

	// UpdateNoteContent replaces the content of a note. Returns
	// ErrNoteNotFound if no row was updated.
	UpdateNoteContent(ctx context.Context, id string, content string, updatedAt time.Time) error

	// DeleteNote removes a note. Returns ErrNoteNotFound if no row
	// was deleted.
	DeleteNote(ctx context.Context, id string) error
}
