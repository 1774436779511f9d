package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-custody/internal/confidential"
	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/crypto"
	"github.com/MKhiriev/go-custody/internal/handler"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/registry"
	"github.com/MKhiriev/go-custody/internal/server"
	"github.com/MKhiriev/go-custody/internal/service"
	"github.com/MKhiriev/go-custody/internal/store"
	"github.com/MKhiriev/go-custody/internal/utils"
	"github.com/MKhiriev/go-custody/internal/workers"
	"github.com/MKhiriev/go-custody/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	log := logger.NewLogger("go-custody-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}
	storages := store.NewStorages(db, log)

	ids := utils.NewUUIDGenerator()
	engine := confidential.NewEngine(crypto.NewProofVerifier(), log)
	reg := registry.NewMemoryRegistry(engine, ids, log)

	params, err := service.ComponentParams(cfg.Component, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error building component parameters")
	}
	component, err := service.RestoreOrCreateComponent(ctx, reg, engine, storages.SnapshotRepository, params, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error restoring custody component")
	}

	services, err := service.NewServices(component, reg, storages, ids, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	utils.InitHasherPool(cfg.App.HashKey)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bg := workers.NewWorkers(cfg.Workers, services.CustodyService, log)

	srv, err := server.NewServer(handlers, bg, services.CustodyService, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
