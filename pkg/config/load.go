package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, first loading a .env file
// when one is present. A missing .env file is not an error.
func Load() (*App, error) {
	logger := slog.Default()
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"ledger_base_url", cfg.Ledger.BaseURL,
		"ledger_http_timeout", cfg.Ledger.HTTPTimeout,
		"toast_duration", cfg.UI.ToastDuration,
	)
	return &cfg, nil
}
