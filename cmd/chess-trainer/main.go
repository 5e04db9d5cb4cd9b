package main

import (
	"log"

	"github.com/Nicolas2912/ChessCoordinateTraining/internal/app"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/config"
	"github.com/Nicolas2912/ChessCoordinateTraining/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel))

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}
