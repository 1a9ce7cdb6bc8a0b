package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/migrations"
)

// Supported SQL dialects. The values double as goose dialect names.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// DB is a dialect-aware wrapper over *sql.DB shared by all
// repositories.
type DB struct {
	conn    *sql.DB
	dialect string
	builder sq.StatementBuilderType
	log     *logger.Logger
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.conn, db.dialect)
}

// Ping verifies the connection is alive.
func (db *DB) Ping() error {
	return db.conn.Ping()
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// isUniqueViolation reports whether err is a unique-constraint
// violation in the active dialect.
func (db *DB) isUniqueViolation(err error) bool {
	switch db.dialect {
	case DialectPostgres:
		return isPostgresUniqueViolation(err)
	case DialectSQLite:
		return isSQLiteUniqueViolation(err)
	default:
		return false
	}
}
