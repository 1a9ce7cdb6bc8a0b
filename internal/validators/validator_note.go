package validators

import (
	"context"
	"strings"

	"github.com/ndmitry/go-note-keeper/models"
)

// FieldContent targets the free-text content of a note payload.
const FieldContent = "content"

// NoteValidator validates note creation and update payloads.
//
// The external id field is only checked when present: the authenticated
// create endpoint ignores it, while the bot endpoints require it.
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateNoteRequest:
		return v.validateCreateNoteRequest(ctx, value, fields...)
	case *models.CreateNoteRequest:
		return v.validateCreateNoteRequest(ctx, *value, fields...)

	case models.UpdateNoteRequest:
		return v.validateUpdateNoteRequest(ctx, value, fields...)
	case *models.UpdateNoteRequest:
		return v.validateUpdateNoteRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateCreateNoteRequest(_ context.Context, req models.CreateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if strings.TrimSpace(req.Content) == "" {
				return ErrEmptyContent
			}
		case FieldExternalID:
			if !IsValidExternalID(req.ExternalID) {
				return ErrInvalidExternalID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateUpdateNoteRequest(_ context.Context, req models.UpdateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if strings.TrimSpace(req.Content) == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
