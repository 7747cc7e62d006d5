package main

import (
	"fmt"

	"github.com/MKhiriev/gumi-collection/internal/adapter"
	"github.com/MKhiriev/gumi-collection/internal/client"
	"github.com/MKhiriev/gumi-collection/internal/config"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/service"
	"github.com/MKhiriev/gumi-collection/internal/store"
	"github.com/MKhiriev/gumi-collection/internal/tui"
	"github.com/MKhiriev/gumi-collection/internal/workers"
	"github.com/MKhiriev/gumi-collection/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println("gumi-client", buildInfo)

	log := logger.NewClientLogger("gumi-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, workers.NewWorkers(services.SessionService, cfg.Workers, log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
