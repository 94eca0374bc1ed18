package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the command-line client.
// It is read from environment variables only.
type ClientConfig struct {
	// Adapter holds the catalog API endpoint settings.
	Adapter ClientAdapter `envPrefix:"CATALOG_"`

	// LogLevel is a zerolog level name for diagnostic output on stderr.
	// Env: CATALOG_LOG_LEVEL
	LogLevel string `env:"CATALOG_LOG_LEVEL"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the catalog API root, e.g. "http://localhost:3000".
	// Env: CATALOG_URL
	BaseURL string `env:"URL"`

	// Token is a previously issued session token used for protected calls.
	// Env: CATALOG_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: CATALOG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig builds and validates the client configuration from the
// environment, falling back to a local server on port 3000.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = "http://localhost:3000"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	return cfg, cfg.validate()
}
