package service

import (
	"github.com/greenjets/bladerunner-portal/internal/config"
	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/store"
)

type Services struct {
	AuthService      AuthService
	UserAdminService UserAdminService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		UserAdminService: NewUserAdminService(storages.UserRepository, logger),
	}
}
