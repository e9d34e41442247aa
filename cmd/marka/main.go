// cmd/marka/main.go
package main

import (
	stlog "log" // for fatal errors before the logger is ready
	"os"

	"github.com/marka-dev/marka/internal/app"
	"github.com/marka-dev/marka/internal/config"
	"github.com/marka-dev/marka/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	args := flags.ParseFlags()
	if len(args) == 0 {
		stlog.Fatalf("Usage: %s [flags] <file>", os.Args[0])
	}
	filePath := args[0]

	// --- Configuration ---
	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger Initialization ---
	logFile, err := os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
	}
	defer logFile.Close()

	logger.Init(cfg.Logger.Level(), logFile, &cfg.Logger)

	logger.Infof("Starting marka...")
	logger.Debugf("Log level: %s", cfg.Logger.Level().String())
	logger.Debugf("Log file: %s", cfg.Logger.LogFilePath)
	logger.Debugf("File path: %s", filePath)

	// --- Create and Run App ---
	markaApp, err := app.NewApp(filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := markaApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("marka finished.")
}
