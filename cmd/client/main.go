package main

import (
	"fmt"

	"github.com/MKhiriev/nekmart-admin/internal/adapter"
	"github.com/MKhiriev/nekmart-admin/internal/client"
	"github.com/MKhiriev/nekmart-admin/internal/config"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("nekmart-client").Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal belongs to the UI, so logs go to a file
	log := logger.NewFileLogger("nekmart-client", cfg.App.LogFile)
	log.Info().Str("build", buildInfo.String()).Msg("starting client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	var app client.Client
	app, err = client.NewApp(serverAdapter, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		fmt.Printf("nekmart admin: %v\n", err)
		log.Fatal().Err(err).Msg("client run error")
	}
}
