package config

import (
	"errors"
	"time"
)

// Validation errors returned when required configuration values are absent.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided
	// through any configuration source. The server refuses to start without
	// one rather than falling back to a baked-in default secret.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrMissingDatabaseDSN indicates that no database connection string was
	// provided through any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")
)

// Defaults applied by validation for optional fields.
const (
	defaultTokenDuration  = 24 * time.Hour
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 30 * time.Second
	defaultServerURL      = "http://localhost:8080"
	defaultClientTimeout  = 15 * time.Second
)
