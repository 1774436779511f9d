package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-custody/internal/client"
	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-custody-client", cfg.App.LogFile)
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var app client.Client = client.NewApp(cfg, build, log)
	if err = app.Run(); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
