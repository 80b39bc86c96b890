// Package config loads runtime settings from the environment.
//
// An optional .env file is read first (existing variables win), then the
// environment is mapped onto Config. CLI flags override the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read by Load.
const DefaultEnvFile = ".env"

// ErrNoSource indicates neither a catalog endpoint nor a library file is set.
var ErrNoSource = errors.New("no catalog source configured")

// Config holds all runtime configuration for shelf.
type Config struct {
	// Catalog source: a GraphQL endpoint or a local JSON library file
	Endpoint    string `env:"SHELF_ENDPOINT"`
	LibraryFile string `env:"SHELF_LIBRARY_FILE"`
	Library     string `env:"SHELF_LIBRARY"`
	PageSize    int    `env:"SHELF_PAGE_SIZE" envDefault:"100"`

	// Credentials
	Token     string `env:"SHELF_TOKEN"`
	TokenFile string `env:"SHELF_TOKEN_FILE"`

	// Card presentation
	Locale     string  `env:"SHELF_LOCALE"      envDefault:"en"`
	FocusScale float64 `env:"SHELF_FOCUS_SCALE" envDefault:"1.1"`
	Density    float64 `env:"SHELF_DENSITY"     envDefault:"0.1"`
	ASCII      bool    `env:"SHELF_ASCII"       envDefault:"false"`

	// Diagnostics
	Debug   bool   `env:"SHELF_DEBUG"    envDefault:"false"`
	LogFile string `env:"SHELF_LOG_FILE" envDefault:"shelf.log"`
}

// Load reads DefaultEnvFile if present and parses the environment.
func Load() (*Config, error) {
	return LoadFrom(DefaultEnvFile)
}

// LoadFrom reads the given dotenv file if present and parses the environment.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings needed to start browsing.
func (c *Config) Validate() error {
	if c.Endpoint == "" && c.LibraryFile == "" {
		return ErrNoSource
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.Density <= 0 {
		return fmt.Errorf("density must be positive, got %g", c.Density)
	}
	if c.FocusScale < 1 {
		return fmt.Errorf("focus scale must be at least 1, got %g", c.FocusScale)
	}
	return nil
}
