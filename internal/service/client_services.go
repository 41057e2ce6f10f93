package service

import (
	"github.com/greenjets/bladerunner-portal/internal/adapter"
	"github.com/greenjets/bladerunner-portal/internal/logger"
)

// ClientServices bundles the console-side services.
type ClientServices struct {
	ConsoleAdminService ConsoleAdminService
}

func NewClientServices(gateway adapter.PortalGateway, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ConsoleAdminService: NewConsoleAdminService(gateway, logger),
	}
}
