package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndmitry/go-note-keeper/internal/app"
	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/utils"
	"github.com/ndmitry/go-note-keeper/models"
)

func (h *Handler) botListNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		log.Err(err).Msg("invalid limit parameter")
		http.Error(w, app.MsgInvalidLimit, http.StatusBadRequest)
		return
	}

	notes, err := h.services.NoteService.BotListNotes(ctx, chi.URLParam(r, "id"), limit)
	if err != nil {
		log.Err(err).Msg("bot note listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) botSearchNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	limit, err := parseLimit(query.Get("limit"))
	if err != nil {
		log.Err(err).Msg("invalid limit parameter")
		http.Error(w, app.MsgInvalidLimit, http.StatusBadRequest)
		return
	}

	notes, err := h.services.NoteService.BotSearchNotes(ctx, chi.URLParam(r, "id"), query.Get("q"), limit)
	if err != nil {
		log.Err(err).Msg("bot note search failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) botDeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.NoteService.BotDeleteNote(ctx, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Msg("bot note deletion failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNoteDeleted}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAPIRunning}, http.StatusOK)
}
