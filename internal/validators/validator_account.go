package validators

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ndmitry/go-note-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldExternalID targets the numeric chat-platform user id.
	FieldExternalID = "external_id"

	// FieldDisplayName targets the dashboard label of an account.
	FieldDisplayName = "display_name"

	// FieldPassword targets the plain-text password of a register or
	// login request.
	FieldPassword = "password"
)

const (
	minExternalIDDigits = 17
	maxExternalIDDigits = 19

	// minExternalIDValue is the smallest id value real chat platforms
	// hand out; anything below it is rejected as malformed.
	minExternalIDValue = 100_000_000_000_000_000

	minDisplayNameLen = 2
	maxDisplayNameLen = 32

	minPasswordLen = 6
)

// AccountValidator validates registration and login payloads.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExternalID, FieldDisplayName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldExternalID:
			if !IsValidExternalID(req.ExternalID) {
				return ErrInvalidExternalID
			}
		case FieldDisplayName:
			trimmed := strings.TrimSpace(req.DisplayName)
			if n := utf8.RuneCountInString(trimmed); n < minDisplayNameLen || n > maxDisplayNameLen {
				return ErrInvalidDisplayName
			}
		case FieldPassword:
			if len(req.Password) < minPasswordLen {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExternalID, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldExternalID:
			if !IsValidExternalID(req.ExternalID) {
				return ErrInvalidExternalID
			}
		case FieldPassword:
			if len(req.Password) < minPasswordLen {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsValidExternalID reports whether s looks like a real chat-platform
// user id: digits only, 17 to 19 characters, and at least
// minExternalIDValue when parsed.
func IsValidExternalID(s string) bool {
	if len(s) < minExternalIDDigits || len(s) > maxExternalIDDigits {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	value, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return false
	}
	return value >= minExternalIDValue
}
