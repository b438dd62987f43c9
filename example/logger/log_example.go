package main

import (
	"entrypoint/pkg/logger"
)

func main() {
	// Create logger
	log := logger.New("INFO")

	// Use it
	log.Info("Starting entrypoint")
	log.WithField("version", "1.0.0").Info("Application info")

	// During bring-up
	log.WithFields(map[string]any{
		"step":   "install-crontab",
		"status": "done",
	}).Info("Bootstrap step")
}
