// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/store"
	"github.com/ndmitry/go-note-keeper/internal/utils"
	"github.com/ndmitry/go-note-keeper/internal/validators"
	"github.com/ndmitry/go-note-keeper/models"
)

// Default page sizes applied when the caller does not supply a limit.
const (
	defaultListLimit      = 100
	defaultBotListLimit   = 10
	defaultBotSearchLimit = 5
)

// placeholderNamePrefix is the display name prefix given to accounts
// auto-created by the bot surface.
const placeholderNamePrefix = "User_"

// noteService is the concrete implementation of NoteService.
type noteService struct {
	noteRepository    store.NoteRepository
	accountRepository store.AccountRepository
	validator         validators.Validator
	uuidGenerator     *utils.UUIDGenerator
	logger            *logger.Logger
}

// NewNoteService constructs a NoteService backed by the given note and
// account repositories. The account repository is needed by the bot
// surface, which auto-creates placeholder accounts for unknown ids.
func NewNoteService(noteRepository store.NoteRepository, accountRepository store.AccountRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository:    noteRepository,
		accountRepository: accountRepository,
		validator:         validators.NewNoteValidator(),
		uuidGenerator:     utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// CreateNote stores a new note owned by ownerExternalID. The external id
// field of the request body is ignored on this path; the owner always
// comes from the authenticated token.
func (s *noteService) CreateNote(ctx context.Context, ownerExternalID string, req models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if ownerExternalID == "" {
		return models.Note{}, ErrInvalidDataProvided
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Msg("invalid note data provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.storeNote(ctx, ownerExternalID, req)
}

// ListNotes implements NoteService.
func (s *noteService) ListNotes(ctx context.Context, ownerExternalID string, search, serverID string, limit uint64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if ownerExternalID == "" {
		return nil, ErrInvalidDataProvided
	}
	if limit == 0 {
		limit = defaultListLimit
	}

	notes, err := s.noteRepository.ListNotes(ctx, store.NoteFilter{
		OwnerExternalID: ownerExternalID,
		Search:          search,
		ServerID:        serverID,
		Limit:           limit,
	})
	if err != nil {
		log.Err(err).Str("owner", ownerExternalID).Msg("listing notes ended with error")
		return nil, fmt.Errorf("listing notes ended with error: %w", err)
	}

	return notes, nil
}

// GetNote implements NoteService.
func (s *noteService) GetNote(ctx context.Context, ownerExternalID, noteID string) (models.Note, error) {
	note, err := s.ownedNote(ctx, ownerExternalID, noteID)
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote implements NoteService.
func (s *noteService) UpdateNote(ctx context.Context, ownerExternalID, noteID string, req models.UpdateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Msg("invalid note data provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note, err := s.ownedNote(ctx, ownerExternalID, noteID)
	if err != nil {
		return models.Note{}, err
	}

	updatedAt := time.Now().UTC()
	if err = s.noteRepository.UpdateNoteContent(ctx, noteID, req.Content, updatedAt); err != nil {
		log.Err(err).Str("note_id", noteID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	note.Content = req.Content
	note.UpdatedAt = updatedAt
	return note, nil
}

// DeleteNote implements NoteService.
func (s *noteService) DeleteNote(ctx context.Context, ownerExternalID, noteID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.ownedNote(ctx, ownerExternalID, noteID); err != nil {
		return err
	}

	if err := s.noteRepository.DeleteNote(ctx, noteID); err != nil {
		log.Err(err).Str("note_id", noteID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

// BotCreateNote stores a note keyed off the caller-supplied external id.
// Unknown ids get a placeholder account so notes can exist before the
// person ever registers on the dashboard.
func (s *noteService) BotCreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req, validators.FieldContent, validators.FieldExternalID); err != nil {
		log.Error().Err(err).Msg("invalid bot note data provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.ensureAccount(ctx, req.ExternalID); err != nil {
		return models.Note{}, err
	}

	return s.storeNote(ctx, req.ExternalID, req)
}

// BotListNotes implements NoteService.
func (s *noteService) BotListNotes(ctx context.Context, externalID string, limit uint64) ([]models.Note, error) {
	if externalID == "" {
		return nil, ErrInvalidDataProvided
	}
	if limit == 0 {
		limit = defaultBotListLimit
	}

	return s.listForBot(ctx, store.NoteFilter{OwnerExternalID: externalID, Limit: limit})
}

// BotSearchNotes implements NoteService.
func (s *noteService) BotSearchNotes(ctx context.Context, externalID, query string, limit uint64) ([]models.Note, error) {
	if externalID == "" {
		return nil, ErrInvalidDataProvided
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrEmptySearchQuery)
	}
	if limit == 0 {
		limit = defaultBotSearchLimit
	}

	return s.listForBot(ctx, store.NoteFilter{OwnerExternalID: externalID, Search: query, Limit: limit})
}

// BotDeleteNote removes a note by id. No ownership check is performed
// here: the bot endpoint is trusted to act on behalf of any user, which
// is an authorization gap of the current design. When a bot API key is
// configured the transport layer narrows the callers that can reach it.
func (s *noteService) BotDeleteNote(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	if noteID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.noteRepository.DeleteNote(ctx, noteID); err != nil {
		log.Err(err).Str("note_id", noteID).Msg("bot note deletion ended with error")
		return fmt.Errorf("bot note deletion ended with error: %w", err)
	}

	return nil
}

// storeNote builds and persists a note with a generated id and matching
// created/updated timestamps.
func (s *noteService) storeNote(ctx context.Context, ownerExternalID string, req models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	note := models.Note{
		ID:              s.uuidGenerator.Generate(),
		OwnerExternalID: ownerExternalID,
		Content:         req.Content,
		Context:         req.Context(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.noteRepository.CreateNote(ctx, note); err != nil {
		log.Err(err).Str("owner", ownerExternalID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return note, nil
}

// ownedNote fetches a note and verifies it belongs to ownerExternalID.
// Returns store.ErrNoteNotFound for unknown ids and ErrNotOwner for
// mismatched owners; the two cases map to different HTTP statuses.
func (s *noteService) ownedNote(ctx context.Context, ownerExternalID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if ownerExternalID == "" || noteID == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	note, err := s.noteRepository.GetNoteByID(ctx, noteID)
	if err != nil {
		if !errors.Is(err, store.ErrNoteNotFound) {
			log.Err(err).Str("note_id", noteID).Msg("note lookup ended with error")
		}
		return models.Note{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	if note.OwnerExternalID != ownerExternalID {
		log.Warn().
			Str("note_id", noteID).
			Str("owner", note.OwnerExternalID).
			Str("caller", ownerExternalID).
			Msg("ownership mismatch on note access")
		return models.Note{}, ErrNotOwner
	}

	return note, nil
}

// ensureAccount makes sure an account row exists for externalID,
// creating a placeholder when the id is unknown.
func (s *noteService) ensureAccount(ctx context.Context, externalID string) error {
	log := logger.FromContext(ctx)

	_, err := s.accountRepository.FindAccountByExternalID(ctx, externalID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrAccountNotFound) {
		log.Err(err).Str("external_id", externalID).Msg("account lookup ended with error")
		return fmt.Errorf("account lookup ended with error: %w", err)
	}

	placeholder := models.Account{
		ID:          s.uuidGenerator.Generate(),
		ExternalID:  externalID,
		DisplayName: placeholderNamePrefix + externalID,
		CreatedAt:   time.Now().UTC(),
	}
	if err = s.accountRepository.CreateAccount(ctx, placeholder); err != nil {
		// another bot request may have created it concurrently
		if errors.Is(err, store.ErrAccountAlreadyExists) {
			return nil
		}
		log.Err(err).Str("external_id", externalID).Msg("placeholder account creation ended with error")
		return fmt.Errorf("placeholder account creation ended with error: %w", err)
	}

	return nil
}

// listForBot runs a filtered listing for the bot surface.
func (s *noteService) listForBot(ctx context.Context, filter store.NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := s.noteRepository.ListNotes(ctx, filter)
	if err != nil {
		log.Err(err).Str("owner", filter.OwnerExternalID).Msg("bot listing notes ended with error")
		return nil, fmt.Errorf("bot listing notes ended with error: %w", err)
	}

	return notes, nil
}
