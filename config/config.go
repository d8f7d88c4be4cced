// Package config loads server settings from the environment.
//
// Settings come from environment variables (optionally populated from a
// .env file by the caller) and can be overridden by command-line flags in
// main. The zero configuration runs a local development server.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings sourced from the environment.
type Config struct {
	// Host and Port select the HTTP listen address.
	Host string `env:"HOST" envDefault:"localhost"`
	Port int    `env:"PORT" envDefault:"8080"`

	// Debug enables verbose logging with file/line information.
	Debug bool `env:"DEBUG" envDefault:"false"`

	// Ngrok tunnel settings for external access during development.
	NgrokEnabled   bool   `env:"NGROK_ENABLED" envDefault:"false"`
	NgrokAuthToken string `env:"NGROK_AUTHTOKEN"`
	NgrokDomain    string `env:"NGROK_DOMAIN"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Addr returns the HTTP listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
