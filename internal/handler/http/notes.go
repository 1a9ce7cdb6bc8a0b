// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ndmitry/go-note-keeper/internal/app"
	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/utils"
	"github.com/ndmitry/go-note-keeper/models"
)

// createNote serves both note-creation surfaces. A request carrying a
// bearer token is a dashboard request and the owner is taken from the
// token; a request without one is a bot request, keyed off the
// external id in the body and subject to the bot key check.
func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	var (
		note models.Note
		err  error
	)
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenString, headerErr := getTokenFromAuthHeader(authHeader)
		if headerErr != nil {
			log.Err(headerErr).Send()
			http.Error(w, headerErr.Error(), http.StatusUnauthorized)
			return
		}

		token, tokenErr := h.services.AuthService.ParseToken(ctx, tokenString)
		if tokenErr != nil {
			log.Err(tokenErr).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		note, err = h.services.NoteService.CreateNote(ctx, token.ExternalID, req)
	} else {
		if !h.validBotKey(r) {
			log.Error().Msg("missing or wrong bot key on unauthenticated note creation")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		note, err = h.services.NoteService.BotCreateNote(ctx, req)
	}
	if err != nil {
		log.Err(err).Msg("note creation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	externalID, ok := utils.GetExternalIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no external id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	limit, err := parseLimit(query.Get("limit"))
	if err != nil {
		log.Err(err).Msg("invalid limit parameter")
		http.Error(w, app.MsgInvalidLimit, http.StatusBadRequest)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, externalID, query.Get("search"), query.Get("server_id"), limit)
	if err != nil {
		log.Err(err).Msg("listing notes failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	externalID, ok := utils.GetExternalIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no external id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, externalID, chi.URLParam(r, "noteID"))
	if err != nil {
		log.Err(err).Msg("note retrieval failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	externalID, ok := utils.GetExternalIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no external id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNote(ctx, externalID, chi.URLParam(r, "noteID"), req)
	if err != nil {
		log.Err(err).Msg("note update failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	externalID, ok := utils.GetExternalIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no external id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, externalID, chi.URLParam(r, "noteID")); err != nil {
		log.Err(err).Msg("note deletion failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNoteDeleted}, http.StatusOK)
}

// parseLimit converts the optional limit query parameter. An absent
// parameter yields zero, which services replace with their defaults.
func parseLimit(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}
