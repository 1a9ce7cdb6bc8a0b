// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"strings"

	"github.com/ndmitry/go-note-keeper/internal/adapter"
	"github.com/ndmitry/go-note-keeper/internal/app"
	"github.com/ndmitry/go-note-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error, so the TUI can match sentinel values regardless of which
// side of the wire produced them.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return ErrWrongPassword
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrNotOwner

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrNoteNotFound

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrAccountAlreadyExists
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
