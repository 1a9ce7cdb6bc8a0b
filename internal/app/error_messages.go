// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// note-keeper server handlers and the client error mapper.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails validation (e.g. empty content, malformed external id).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned when the supplied external
	// id/password combination does not match a registered account.
	MsgInvalidCredentials = "invalid external id/password"

	// MsgExternalIDAlreadyRegistered is returned when registration is
	// attempted for an external id that already completed registration.
	MsgExternalIDAlreadyRegistered = "external id already registered"

	// MsgInvalidLimit is returned when the limit query parameter is not a
	// non-negative integer.
	MsgInvalidLimit = "invalid limit parameter"

	// MsgNoteDeleted confirms a successful note deletion on both the
	// dashboard and the bot surface.
	MsgNoteDeleted = "Note deleted successfully"

	// MsgAPIRunning is the health check response body.
	MsgAPIRunning = "Notes API is running"
)
