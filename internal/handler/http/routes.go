package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// health check and auth endpoints, no token required
	router.Group(func(r chi.Router) {
		r.Get("/api/", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// note creation serves both surfaces: the owner comes from the
	// bearer token when one is present, from the body otherwise
	router.Post("/api/notes", h.createNote)

	// dashboard endpoints, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Get("/api/notes", h.listNotes)
		r.Get("/api/notes/{noteID}", h.getNote)
		r.Put("/api/notes/{noteID}", h.updateNote)
		r.Delete("/api/notes/{noteID}", h.deleteNote)
	})

	// bot endpoints, optionally guarded by the shared bot key.
	// The {id} segment is an external id on GET and a note id on
	// DELETE; chi requires a single param name per position.
	router.Group(func(r chi.Router) {
		r.Use(h.botKey)

		r.Get("/api/bot/notes/{id}", h.botListNotes)
		r.Get("/api/bot/notes/{id}/search", h.botSearchNotes)
		r.Delete("/api/bot/notes/{id}", h.botDeleteNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
