package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotOwner is returned when an authenticated note operation
	// targets a note owned by a different account.
	ErrNotOwner = errors.New("note belongs to another account")

	// ErrEmptySearchQuery is returned by the bot search operation when
	// no query was supplied.
	ErrEmptySearchQuery = errors.New("search query cannot be empty")
)
