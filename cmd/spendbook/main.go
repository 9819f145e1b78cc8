package main

import (
	"context"
	"os"

	"spendbook/internal/cli"
	"spendbook/internal/config"
	applog "spendbook/internal/log"
	"spendbook/internal/services"
)

func main() {
	cli.LoadEnvFile()

	cfg := config.Load()
	logger := cli.SetupLogger(cfg.LogLevel)
	cli.ValidateConfig(logger, cfg)

	repo := cli.InitSQLite(logger, cfg.DBPath)
	tracker := services.NewTracker(repo, logger)

	shell := cli.NewShell(os.Stdin, os.Stdout, tracker, logger)
	runErr := shell.Run(context.Background())

	if err := tracker.Close(); err != nil {
		logger.Error("Failed to close store", applog.FieldError, err)
	}
	if runErr != nil {
		logger.Error("Shell terminated", applog.FieldError, runErr)
		os.Exit(1)
	}
}
