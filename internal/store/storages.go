package store

import (
	"context"
	"strings"

	"github.com/ndmitry/go-note-keeper/internal/logger"
)

// Storages bundles all repositories behind a single constructor.
type Storages struct {
	Account AccountRepository
	Note    NoteRepository

	db *DB
}

// NewStorages opens the database selected by the DSN, applies pending
// migrations and wires up the repositories. A postgres:// or
// postgresql:// DSN selects PostgreSQL; anything else is treated as a
// path to an SQLite file.
func NewStorages(ctx context.Context, dsn string, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err = NewConnectPostgres(ctx, dsn, log)
	} else {
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Error().Err(err).Msg("failed to apply migrations")
		_ = db.Close()
		return nil, err
	}
	log.Info().Str("dialect", db.dialect).Msg("database ready")

	return &Storages{
		Account: NewAccountRepo(db, log),
		Note:    NewNoteRepo(db, log),
		db:      db,
	}, nil
}

// Close closes the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
