package store

import "errors"

// Domain errors returned by repositories. Services map these to their
// own error taxonomy.
var (
	ErrAccountAlreadyExists = errors.New("account with given external id already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrNoteNotFound         = errors.New("note not found")
)

// Low-level errors wrapping SQL failures.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing query")
	ErrScanningRow      = errors.New("error scanning row")
	ErrScanningRows     = errors.New("error scanning rows")
	ErrOpeningDatabase  = errors.New("error opening database connection")
	ErrPingingDatabase  = errors.New("error pinging database")
)
