package handler

import (
	"github.com/ndmitry/go-note-keeper/internal/config"
	"github.com/ndmitry/go-note-keeper/internal/handler/http"
	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/service"
)

// Handlers aggregates the transport handlers of the application. HTTP is
// currently the only transport; the container stays so that another one can
// be added without changing the wiring in cmd/server.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
