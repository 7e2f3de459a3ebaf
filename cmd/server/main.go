package main

import (
	"context"
	"fmt"

	"github.com/tchaikit/ea-dashboard/internal/audit"
	"github.com/tchaikit/ea-dashboard/internal/config"
	handler "github.com/tchaikit/ea-dashboard/internal/handler/http"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/server"
	"github.com/tchaikit/ea-dashboard/internal/service"
	"github.com/tchaikit/ea-dashboard/internal/store"
	"github.com/tchaikit/ea-dashboard/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ea-dashboard-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	recorder := audit.NewRecorder(storages.AuditLogRepository, log)
	services := service.NewServices(storages, recorder, cfg.App, log)

	handlers := handler.NewHandler(services, db, cfg.App, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
