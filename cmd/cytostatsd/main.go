// cytostatsd serves the statistics pipeline as a JSON HTTP service.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"cytostats/api"
	"cytostats/app"
	"cytostats/internal"
	"cytostats/internal/config"
)

func main() {
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()
	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading configuration: %v", err)
		os.Exit(1)
	}

	service := app.NewStatsService(logger)
	server := api.NewServer(service, logger)
	if err := server.ListenAndServe(":" + cfg.Server.Port); err != nil {
		logger.Error("server stopped: %v", err)
		os.Exit(1)
	}
}
