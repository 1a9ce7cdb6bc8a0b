package service

import (
	"context"
	"fmt"

	"github.com/ndmitry/go-note-keeper/internal/adapter"
	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/validators"
	"github.com/ndmitry/go-note-keeper/models"
)

type clientNoteService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientNoteService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{
		adapter:   serverAdapter,
		validator: validators.NewNoteValidator(),
		logger:    logger,
	}
}

func (n *clientNoteService) Create(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	if err := n.validator.Validate(ctx, req, validators.FieldContent); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note, err := n.adapter.CreateNote(ctx, req)
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}

	return note, nil
}

func (n *clientNoteService) List(ctx context.Context, search, serverID string, limit uint64) ([]models.Note, error) {
	notes, err := n.adapter.ListNotes(ctx, search, serverID, limit)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return notes, nil
}

func (n *clientNoteService) Get(ctx context.Context, noteID string) (models.Note, error) {
	note, err := n.adapter.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}

	return note, nil
}

func (n *clientNoteService) Update(ctx context.Context, noteID string, req models.UpdateNoteRequest) (models.Note, error) {
	if err := n.validator.Validate(ctx, req, validators.FieldContent); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note, err := n.adapter.UpdateNote(ctx, noteID, req)
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}

	return note, nil
}

func (n *clientNoteService) Delete(ctx context.Context, noteID string) error {
	if err := n.adapter.DeleteNote(ctx, noteID); err != nil {
		return mapAdapterError(err)
	}

	return nil
}
