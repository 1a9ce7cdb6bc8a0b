package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
	"github.com/ndmitry/go-note-keeper/internal/logger"
)

// NewConnectSQLite opens (creating if necessary) an SQLite database
// file and verifies it with a ping. The pool is capped at a single
// connection because the driver serializes writers anyway.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		file, createErr := os.Create(path)
		if createErr != nil {
			log.Error().Err(createErr).Str("path", path).Msg("failed to create sqlite database file")
			return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, createErr)
		}
		_ = file.Close()
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to open sqlite connection")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("failed to ping sqlite")
		return nil, fmt.Errorf("%w: %w", ErrPingingDatabase, err)
	}

	return &DB{
		conn:    conn,
		dialect: DialectSQLite,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		log:     log,
	}, nil
}

// isSQLiteUniqueViolation reports whether err is an SQLite
// unique-constraint violation.
func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return errors.Is(sqliteErr.ExtendedCode, sqlite3.ErrConstraintUnique) ||
			errors.Is(sqliteErr.ExtendedCode, sqlite3.ErrConstraintPrimaryKey)
	}
	return false
}
