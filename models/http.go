package models

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	// ExternalID is the numeric chat-platform user id (17-19 digits).
	ExternalID string `json:"external_id"`

	// DisplayName is the dashboard label, 2-32 characters after trimming.
	DisplayName string `json:"display_name"`

	// Password is the plain-text password, minimum 6 characters.
	// Only ever transmitted, never stored.
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	ExternalID string `json:"external_id"`
	Password   string `json:"password"`
}

// CreateNoteRequest is the JSON body of POST /api/notes.
//
// ExternalID is only honoured on the unauthenticated bot variant; when the
// request carries a valid bearer token the owner is always the
// authenticated account and the field is ignored.
type CreateNoteRequest struct {
	ExternalID  string `json:"external_id,omitempty"`
	Content     string `json:"content"`
	ServerID    string `json:"server_id,omitempty"`
	ServerName  string `json:"server_name,omitempty"`
	ChannelID   string `json:"channel_id,omitempty"`
	ChannelName string `json:"channel_name,omitempty"`
}

// Context assembles the optional origin tags into a [NoteContext].
func (r CreateNoteRequest) Context() NoteContext {
	return NoteContext{
		ServerID:    r.ServerID,
		ServerName:  r.ServerName,
		ChannelID:   r.ChannelID,
		ChannelName: r.ChannelName,
	}
}

// UpdateNoteRequest is the JSON body of PUT /api/notes/{id}.
type UpdateNoteRequest struct {
	Content string `json:"content"`
}
