package main

import (
	"os"

	"github.com/MKhiriev/go-purchase-tracker/internal/client"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("purchase-client")

	var app client.Client = client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err := app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		os.Exit(1)
	}
}
