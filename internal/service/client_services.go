package service

import (
	"github.com/ndmitry/go-note-keeper/internal/adapter"
	"github.com/ndmitry/go-note-keeper/internal/logger"
)

// ClientServices bundles the client-side services behind a single
// constructor, mirroring [Services] on the server side.
type ClientServices struct {
	AuthService ClientAuthService
	NoteService ClientNoteService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, logger),
		NoteService: NewClientNoteService(serverAdapter, logger),
	}
}
