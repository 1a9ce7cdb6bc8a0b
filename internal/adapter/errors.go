// SPDX-License-Identifier: Apache-2.0

package adapter

import "errors"

// Sentinel errors returned by [ServerAdapter] implementations. Each value
// corresponds to a class of server responses; mapHTTPError wraps them with the
// response body so callers can match with [errors.Is] while still logging the
// server's message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
