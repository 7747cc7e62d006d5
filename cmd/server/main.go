package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gumi-collection/internal/config"
	"github.com/MKhiriev/gumi-collection/internal/handler"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/server"
	"github.com/MKhiriev/gumi-collection/internal/service"
	"github.com/MKhiriev/gumi-collection/internal/store"
	"github.com/MKhiriev/gumi-collection/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println("gumi-server", buildInfo)

	log := logger.NewLogger("gumi-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configs")
	}
	if cfg.App.Version == "" && buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
