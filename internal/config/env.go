package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// ParseEnv loads configuration from FOLIO_* environment variables
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnvFile seeds the environment from path. Variables already set win.
// A missing file is not an error. It reports whether the file was read.
func LoadEnvFile(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	return true, nil
}

// Load reads envFile (if it exists) and then the environment
func Load(envFile string) (*Config, error) {
	if _, err := LoadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
