// Package config defines the application configuration, loaded from the
// environment with optional .env support.
package config

import "time"

// Ledger configures the connection to the ledger service.
type Ledger struct {
	// BaseURL is the accounts collection resource of the ledger API.
	BaseURL     string        `envconfig:"BASE_URL" default:"http://localhost:8080/api/accounts"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// UI configures presentation behavior of the console.
type UI struct {
	// ToastDuration is how long a status message stays visible before it is
	// dismissed, unless replaced earlier.
	ToastDuration time.Duration `envconfig:"TOAST_DURATION" default:"2600ms"`
	// DashboardRecent is how many of the newest accounts the overview table shows.
	DashboardRecent int `envconfig:"DASHBOARD_RECENT" default:"5"`
}

// Log configures the logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	Prefix     string `envconfig:"PREFIX" default:"shivabank"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
}

// App is the root configuration.
type App struct {
	Env    string `envconfig:"APP_ENV" default:"development"`
	Ledger Ledger `envconfig:"LEDGER"`
	UI     UI     `envconfig:"UI"`
	Log    Log    `envconfig:"LOG"`
}
