package models

import "time"

// Note is a single text note owned by exactly one account's external id.
// Notes are associated by external id rather than the internal account id,
// so the bot surface can create notes for users that never registered on
// the dashboard.
type Note struct {
	// ID is the unique identifier of the note (UUIDv7).
	ID string `json:"id"`

	// OwnerExternalID is the external id of the owning account.
	OwnerExternalID string `json:"owner_external_id"`

	// Content is the free-text body of the note. Always non-empty.
	Content string `json:"content"`

	// Context carries the optional originating server/channel tags.
	Context NoteContext `json:"context"`

	// CreatedAt is set once at creation.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt equals CreatedAt at creation and is refreshed on every
	// content edit.
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteContext holds the optional tags describing where a note originated.
// All fields are independently optional.
type NoteContext struct {
	ServerID    string `json:"server_id,omitempty"`
	ServerName  string `json:"server_name,omitempty"`
	ChannelID   string `json:"channel_id,omitempty"`
	ChannelName string `json:"channel_name,omitempty"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
