package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog/internal/config"
	"github.com/MKhiriev/go-catalog/internal/events"
	handler "github.com/MKhiriev/go-catalog/internal/handler/http"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/internal/server"
	"github.com/MKhiriev/go-catalog/internal/service"
	"github.com/MKhiriev/go-catalog/internal/store"
	"github.com/MKhiriev/go-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("catalog-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("catalog-server", cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Strs("kafka_brokers", cfg.Events.KafkaBrokers).
		Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	publisher := events.NewPublisher(cfg.Events, log)
	defer publisher.Close()

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, publisher, *cfg, log)
	h := handler.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
