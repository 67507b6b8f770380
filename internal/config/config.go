// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the application configuration from environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"OSITE_DB_PATH" envDefault:"./data/osite.db"`
	ServerHost string `env:"OSITE_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"OSITE_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"OSITE_ENV" envDefault:"development"`
	LogLevel   string `env:"OSITE_LOG_LEVEL" envDefault:"info"`

	// Cache configuration
	RedisURL     string `env:"OSITE_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"OSITE_CACHE_PREFIX" envDefault:"osite:"`  // Redis key prefix
	CacheTTL     int    `env:"OSITE_CACHE_TTL" envDefault:"3600"`       // Default cache TTL in seconds
	CacheMaxSize int    `env:"OSITE_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// Versioning configuration
	MaxVersions      int `env:"OSITE_MAX_VERSIONS" envDefault:"20"`      // Snapshots kept per project
	SnapshotInterval int `env:"OSITE_SNAPSHOT_INTERVAL" envDefault:"60"` // Min seconds between auto-snapshots

	// Export rate limiting
	ExportRPS   float64 `env:"OSITE_EXPORT_RPS" envDefault:"1"`   // Export requests per second per client
	ExportBurst int     `env:"OSITE_EXPORT_BURST" envDefault:"3"` // Export request burst per client
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.MaxVersions < 1 {
		return nil, fmt.Errorf("OSITE_MAX_VERSIONS must be at least 1, got %d", cfg.MaxVersions)
	}
	if cfg.SnapshotInterval < 0 {
		return nil, fmt.Errorf("OSITE_SNAPSHOT_INTERVAL must not be negative, got %d", cfg.SnapshotInterval)
	}

	return cfg, nil
}
