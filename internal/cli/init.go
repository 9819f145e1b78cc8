// Package cli provides the interactive shell and the common initialization
// helpers used by cmd/spendbook.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"spendbook/internal/config"
	applog "spendbook/internal/log"
	"spendbook/internal/storage"
)

// SetupLogger initializes structured logging on stderr so the interactive
// prompts on stdout stay clean. Sets the result as the default logger.
func SetupLogger(level string) *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(level),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// ValidateConfig validates the configuration or exits the process.
func ValidateConfig(logger *applog.Logger, cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
}

// InitSQLite initializes the SQLite repository with the given path.
// Returns the repository or exits the process on failure.
func InitSQLite(logger *applog.Logger, dbPath string) *storage.SQLiteRepository {
	repo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository",
			applog.FieldError, err,
			applog.FieldDBPath, dbPath)
		os.Exit(1)
	}
	return repo
}
