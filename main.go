package main

import (
	"log"

	"github.com/joho/godotenv"

	"seqsense/adapters/pattern/engine"
	"seqsense/app"
	"seqsense/internal"
	"seqsense/internal/config"
	"seqsense/internal/inputparse"
	"seqsense/ui"
)

func main() {
	// Load .env file if present (ignore error in production)
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	predictor := engine.New()
	service := app.NewPredictionService(predictor, cfg.History.Size)

	server, err := ui.NewServer(cfg.Server, service, inputparse.New(), logger)
	if err != nil {
		log.Fatalf("server setup: %v", err)
	}

	go ui.ServeAdmin(cfg.Admin, cfg.Profiling, logger)

	if err := server.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
