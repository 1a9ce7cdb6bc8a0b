package models

import "time"

// Account represents a registered user of the notes dashboard.
// Accounts are keyed externally by the chat-platform user id and internally
// by a generated UUID. Sensitive fields must never leave trusted boundaries.
type Account struct {
	// ID is the internal unique identifier of the account (UUIDv7).
	// Generated at creation, immutable.
	ID string `json:"id"`

	// ExternalID is the caller-supplied numeric chat-platform user id.
	// Unique across all accounts, immutable after registration.
	ExternalID string `json:"external_id"`

	// DisplayName is a free-text label shown in the dashboard.
	DisplayName string `json:"display_name"`

	// PasswordHash is the bcrypt hash of the account password.
	// Empty for placeholder accounts auto-created by the bot surface;
	// such accounts cannot log in until they complete registration.
	// Never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// IsPlaceholder reports whether the account was auto-created by the bot
// surface and has not yet completed registration.
func (a Account) IsPlaceholder() bool {
	return a.PasswordHash == ""
}
