package http

import (
	"context"

	"github.com/tchaikit/ea-dashboard/internal/config"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/service"
)

// Pinger is the slice of the database handle the health endpoint needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	db       Pinger
	cfg      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, db Pinger, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		db:       db,
		cfg:      cfg,
		logger:   logger,
	}
}
