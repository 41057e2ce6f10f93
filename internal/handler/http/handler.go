package http

import (
	"github.com/greenjets/bladerunner-portal/internal/config"
	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/service"
	"github.com/greenjets/bladerunner-portal/models"
)

// DatabaseHealthProvider reports the most recent database reachability
// snapshot. Implemented by the background health prober.
type DatabaseHealthProvider interface {
	Snapshot() models.DatabaseHealth
}

type Handler struct {
	services *service.Services
	cfg      config.StructuredConfig
	dbHealth DatabaseHealthProvider

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, dbHealth DatabaseHealthProvider, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		dbHealth: dbHealth,
		logger:   logger,
	}
}
