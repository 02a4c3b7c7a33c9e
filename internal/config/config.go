// Package config loads typed configuration structs from the environment.
// A .env file, when present, is loaded once per process before the first
// parse; real environment variables always win over file values.
package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// Load parses environment variables into the given struct pointer using
// `env` tags.
func Load(cfg any) error {
	dotenvOnce.Do(func() {
		// Missing .env is the normal case outside local development.
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// MustLoad is Load that panics on failure, for use at process startup.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
