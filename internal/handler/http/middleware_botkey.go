package http

import (
	"net/http"

	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/utils"
)

// botKeyHeader carries the shared secret identifying the chat bot on
// unauthenticated endpoints.
const botKeyHeader = "X-Bot-Key"

// botKey is an HTTP middleware guarding the bot surface.
//
// When no bot API key is configured the middleware is a pass-through and
// the bot endpoints stay open, preserving the original deployment's
// trust model. When a key is configured, every bot request must present
// it in the X-Bot-Key header; mismatches are rejected with 401.
func (h *Handler) botKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.validBotKey(r) {
			log := logger.FromRequest(r)
			log.Error().Str("uri", r.RequestURI).Msg("missing or wrong bot key")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// validBotKey reports whether the request may use the bot surface.
// Always true when no key is configured.
func (h *Handler) validBotKey(r *http.Request) bool {
	if h.botAPIKey == "" {
		return true
	}
	return utils.SecureCompare(r.Header.Get(botKeyHeader), h.botAPIKey)
}
