// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ExternalIDCtxKey is the key used to store the authenticated account's
// external id in the context. Used together with
// GetExternalIDFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ExternalIDCtxKey, "123456789012345678")
var ExternalIDCtxKey = contextKey("externalID")

// GetExternalIDFromContext retrieves the authenticated account's external
// id from the context.
//
// Returns the external id and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetExternalIDFromContext(ctx context.Context) (string, bool) {
	externalID, ok := ctx.Value(ExternalIDCtxKey).(string)
	return externalID, ok
}
