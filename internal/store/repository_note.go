// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/models"
)

// NoteRepo is the SQL implementation of [NoteRepository].
type NoteRepo struct {
	db  *DB
	log *logger.Logger
}

// NewNoteRepo constructs a [NoteRepo] on top of an open database.
func NewNoteRepo(db *DB, log *logger.Logger) *NoteRepo {
	log.Debug().Msg("creating note repository")
	return &NoteRepo{db: db, log: log}
}

// CreateNote implements [NoteRepository].
func (r *NoteRepo) CreateNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertNoteQuery(note)
	if err != nil {
		log.Error().Err(err).Msg("failed to build insert note query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.conn.ExecContext(ctx, query, args...); err != nil {
		log.Error().Err(err).
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("failed to insert note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ListNotes implements [NoteRepository].
func (r *NoteRepo) ListNotes(ctx context.Context, filter NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectNotesQuery(filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to build select notes query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("failed to query notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Error().Err(scanErr).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// GetNoteByID implements [NoteRepository].
func (r *NoteRepo) GetNoteByID(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectNoteByIDQuery(id)
	if err != nil {
		log.Error().Err(err).Msg("failed to build select note query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.conn.QueryRowContext(ctx, query, args...)
	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Error().Err(err).
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("failed to scan note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// UpdateNoteContent implements [NoteRepository].
func (r *NoteRepo) UpdateNoteContent(ctx context.Context, id string, content string, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.updateNoteContentQuery(id, content, updatedAt)
	if err != nil {
		log.Error().Err(err).Msg("failed to build update note query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("failed to update note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// DeleteNote implements [NoteRepository].
func (r *NoteRepo) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteNoteQuery(id)
	if err != nil {
		log.Error().Err(err).Msg("failed to build delete note query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID, &note.OwnerExternalID, &note.Content,
		&note.Context.ServerID, &note.Context.ServerName,
		&note.Context.ChannelID, &note.Context.ChannelName,
		&note.CreatedAt, &note.UpdatedAt,
	)
	return note, err
}
