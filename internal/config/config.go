// SPDX-License-Identifier: Apache-2.0

// Package config loads the VanGo client configuration by merging three
// sources in priority order: environment variables, an optional JSON file
// (path given via the CONFIG environment variable), and built-in defaults.
// Sources are merged with mergo; earlier sources win.
package config

import "time"

// Config is the top-level client configuration.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App contains application-level settings.
	App App `envPrefix:"APP_"`

	// API contains gateway transport settings.
	API API `envPrefix:"API_"`

	// Storage contains the local credential store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// populated via the CONFIG environment variable. When non-empty, the
	// file is parsed and merged below the environment values.
	JSONFilePath string `env:"CONFIG"`
}

// App groups application-level settings.
type App struct {
	// LogRole is the role label attached to every log entry.
	LogRole string `env:"LOG_ROLE"`
}

// API groups the settings of the request gateway.
type API struct {
	// BaseURL is the VanGo API endpoint all calls are issued against.
	BaseURL string `env:"BASE_URL"`
	// RequestTimeout bounds every outbound call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// CredentialDBPath is the SQLite file holding the session credentials.
	CredentialDBPath string `env:"CREDENTIAL_DB_PATH"`
}

// defaults returns the built-in configuration the other sources are merged
// on top of.
func defaults() *Config {
	return &Config{
		App: App{LogRole: "vango-client"},
		API: API{
			BaseURL:        "https://api.vango.vn",
			RequestTimeout: 10 * time.Second,
		},
		Storage: Storage{CredentialDBPath: "vango.db"},
	}
}

// GetClientConfig builds and validates the client configuration from the
// environment, the optional JSON file, and the defaults.
func GetClientConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
