package main

import (
	"log"
	"os"

	"entrypoint/internal/app"
	"entrypoint/internal/config"
	"entrypoint/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Setup logger
	logger := logger.New(cfg.LogLevel)

	// Run the bring-up sequence; on success this process is replaced by
	// the target command and never returns
	app := app.New(cfg, logger)
	if err := app.Run(os.Args[1:]); err != nil {
		logger.Error("Startup failed %s", err)
		os.Exit(1)
	}
}
