package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-purchase-tracker/internal/adapter"
	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/handler"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/observability"
	"github.com/MKhiriev/go-purchase-tracker/internal/server"
	"github.com/MKhiriev/go-purchase-tracker/internal/service"
	"github.com/MKhiriev/go-purchase-tracker/internal/store"
	"github.com/MKhiriev/go-purchase-tracker/internal/workers"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	exitCode := 0
	defer func() { os.Exit(exitCode) }()

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("purchase-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	ctx := context.Background()

	telemetry, err := observability.Setup(ctx, cfg.Telemetry, cfg.App.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up telemetry")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	treasury := adapter.NewTreasuryAdapter(cfg.Adapter, adapter.NewHTTPFetcher(cfg.Adapter))

	services, err := service.NewServices(storages, treasury, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	syncMetrics, err := observability.NewSyncMetrics()
	if err != nil {
		log.Warn().Err(err).Msg("currency sync metrics disabled")
	} else {
		services.CurrencySyncService.OnStatusChange(syncMetrics.Observe)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bg := workers.NewWorkers(log,
		workers.NewCurrencySyncWorker(services.CurrencySyncService, cfg.Workers, log),
	)

	srv, err := server.NewServer(handlers, cfg.Server, log,
		server.WithWorkers(bg),
		server.WithShutdownHook("telemetry", telemetry.Shutdown),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		exitCode = 1
	}
}
