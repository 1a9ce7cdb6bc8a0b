// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup, and fills in defaults
// for the optional fields.
//
// The signing key and the database DSN are required; everything else has a
// sensible default. Client-only builds use [ClientConfig.validate] instead,
// which does not require the server secrets.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "note-keeper"
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	return nil
}

// ValidateServer enforces the fields only the server process needs.
// Kept separate from validate so that the client can reuse the same merged
// config without carrying server secrets. Called from cmd/server at startup.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" {
		cfg.Adapter.ServerURL = defaultServerURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultClientTimeout
	}

	return nil
}
