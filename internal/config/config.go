// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct constructed once at
// process start and passed into every component that needs it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string

	// PostgreSQL connection string for the shared Renunganku database.
	// The same value the NestJS backend uses.
	DatabaseURL string

	// CORS origin for the admin frontend. "*" allows any origin (dev only);
	// otherwise it must be a single origin such as "http://localhost:4200".
	CORSOrigin string

	// Seed credential for the default superadmin. Seeding is skipped when
	// either value is empty.
	SeedEmail    string
	SeedPassword string

	// MigrateOnly makes the process run migrations and seeding, then exit
	// without starting the HTTP server.
	MigrateOnly bool

	// Valkey (Redis-compatible) connection for login rate limiting.
	// Optional — the limiter is disabled when ValkeyHost is empty.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// LoginRateLimit is the number of login attempts allowed per client IP
	// per minute when Valkey is configured.
	LoginRateLimit int

	// TrustProxy makes the rate limiter honor X-Forwarded-For/X-Real-IP.
	// Enable only when a trusted reverse proxy sets them; otherwise the
	// headers are client-controlled.
	TrustProxy bool
}

// Load reads configuration from environment variables, applying defaults
// where appropriate. Returns an error if DATABASE_URL is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("ADMIN_HOST", "0.0.0.0"),
		Port: envOrDefault("ADMIN_BACKEND_PORT", "5000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		CORSOrigin:  envOrDefault("ADMIN_CORS_ORIGIN", "*"),

		SeedEmail:    os.Getenv("ADMIN_DEFAULT_EMAIL"),
		SeedPassword: os.Getenv("ADMIN_DEFAULT_PASSWORD"),

		MigrateOnly: parseBool(os.Getenv("ADMIN_MIGRATE_ONLY")),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		LoginRateLimit: envOrDefaultInt("LOGIN_RATE_LIMIT", 10),
		TrustProxy:     parseBool(os.Getenv("ADMIN_TRUST_PROXY")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set; use the same value as the NestJS backend")
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the Valkey address, or "" when Valkey is not configured.
func (c *Config) ValkeyAddr() string {
	if c.ValkeyHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envOrDefaultInt reads an integer environment variable with a fallback.
func envOrDefaultInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// parseBool accepts "1" and any casing of "true".
func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}
