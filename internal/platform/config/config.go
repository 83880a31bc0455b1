// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/quangdam/mercata/pkg/query"
)

// # Configuration Schema

// Config holds all runtime configuration for the Mercata API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// SchemaCacheTTL bounds how long resolved attribute definitions are
	// served from cache before being re-read from PostgreSQL.
	SchemaCacheTTL time.Duration `env:"SCHEMA_CACHE_TTL" envDefault:"5m"`

	// APITokenSecret signs and verifies the HS256 bearer tokens that gate
	// catalogue mutations.
	APITokenSecret string `env:"API_TOKEN_SECRET,required"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// AllowedOrigins returns the extra CORS origins configured via EXTRA_ORIGINS
// as a comma-separated list.
func (c *Config) AllowedOrigins() []string {
	return query.StringSlice(c.ExtraOrigins)
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
