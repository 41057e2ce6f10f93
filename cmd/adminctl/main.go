package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/greenjets/bladerunner-portal/internal/adapter"
	"github.com/greenjets/bladerunner-portal/internal/config"
	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/service"
	"github.com/greenjets/bladerunner-portal/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("adminctl")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	gateway, err := adapter.NewHTTPPortalGateway(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating portal gateway")
	}

	services := service.NewClientServices(gateway, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(context.Background()); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return
		}
		log.Fatal().Err(err).Msg("console run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
