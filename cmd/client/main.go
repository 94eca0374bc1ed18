package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-catalog/internal/adapter"
	"github.com/MKhiriev/go-catalog/internal/client"
	"github.com/MKhiriev/go-catalog/internal/config"
	"github.com/MKhiriev/go-catalog/internal/logger"
	"github.com/MKhiriev/go-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("catalog-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("catalog-client", cfg.LogLevel)

	catalog, err := adapter.NewHTTPCatalogClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create catalog client")
	}

	app, err := client.NewApp(catalog, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		if errors.Is(err, client.ErrMissingCommand) || errors.Is(err, client.ErrUnknownCommand) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
