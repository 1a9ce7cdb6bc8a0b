package http

import (
	"github.com/ndmitry/go-note-keeper/internal/config"
	"github.com/ndmitry/go-note-keeper/internal/logger"
	"github.com/ndmitry/go-note-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// botAPIKey is the shared secret expected in the X-Bot-Key header
	// of unauthenticated bot requests. Empty means the bot surface is
	// open, matching the original deployment.
	botAPIKey string

	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		botAPIKey: cfg.BotAPIKey,
		version:   cfg.Version,
		logger:    logger,
	}
}
