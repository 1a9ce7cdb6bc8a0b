package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ndmitry/go-note-keeper/internal/logger"
)

const postgresMaxOpenConns = 10

// NewConnectPostgres opens a PostgreSQL connection pool using the pgx
// stdlib driver and verifies it with a ping.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Error().Err(err).Msg("failed to open postgres connection")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	conn.SetMaxOpenConns(postgresMaxOpenConns)

	if err = conn.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("failed to ping postgres")
		return nil, fmt.Errorf("%w: %w", ErrPingingDatabase, err)
	}

	return &DB{
		conn:    conn,
		dialect: DialectPostgres,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		log:     log,
	}, nil
}

// isPostgresUniqueViolation reports whether err is a PostgreSQL
// unique-constraint violation (SQLSTATE 23505).
func isPostgresUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}
