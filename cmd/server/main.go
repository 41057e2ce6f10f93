package main

import (
	"context"
	"fmt"

	"github.com/greenjets/bladerunner-portal/internal/config"
	"github.com/greenjets/bladerunner-portal/internal/handler"
	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/server"
	"github.com/greenjets/bladerunner-portal/internal/service"
	"github.com/greenjets/bladerunner-portal/internal/store"
	"github.com/greenjets/bladerunner-portal/internal/workers"
	"github.com/greenjets/bladerunner-portal/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bladerunner-portal")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing database connection")
		}
	}()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, *cfg, log)

	healthProber := workers.NewHealthProber(db, cfg.Workers.HealthProbeInterval, log)
	defer healthProber.Stop()
	workers.NewWorkers(healthProber).Run()

	handlers, err := handler.NewHandlers(services, *cfg, healthProber, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
