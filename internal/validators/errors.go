package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidExternalID  = errors.New("external id must be a numeric chat-platform id of 17-19 digits")
	ErrInvalidDisplayName = errors.New("display name must be 2-32 characters long")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrEmptyContent       = errors.New("note content cannot be empty")
)
