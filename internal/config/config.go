// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

// Package config loads the service configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values from defaultConfig()
//  2. Config File: optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. Environment Variables: explicit mapping in envTransformFunc
//
// The resulting *Config is constructed once in main and passed by reference
// into the Canopy client, the backend and the HTTP server. Nothing else reads
// the environment.
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	client := canopy.NewClient(cfg.Canopy)
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Canopy   CanopyConfig   `koanf:"canopy"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// CanopyConfig configures the outbound Umbra Canopy client.
type CanopyConfig struct {
	// APIURL is the Canopy API base URL (archive search and tasking endpoints).
	APIURL string `koanf:"api_url"`

	// Token is the Canopy bearer token. Feasibility and ordering fail with an
	// authorization error when it is empty and no inbound token is forwarded.
	Token string `koanf:"token"`

	// TaskURL is the base of the human-facing task page linked from orders.
	TaskURL string `koanf:"task_url"`

	// FeasibilityTimeout is the wall-clock deadline for a feasibility request
	// to reach COMPLETED, measured from submission.
	FeasibilityTimeout time.Duration `koanf:"feasibility_timeout"`

	// PollInterval is the wait between feasibility status checks.
	PollInterval time.Duration `koanf:"poll_interval"`

	// RequestTimeout bounds each individual HTTP exchange with Canopy.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// RateLimitRPS and RateLimitBurst shape outbound traffic to Canopy.
	RateLimitRPS   float64 `koanf:"rate_limit_rps"`
	RateLimitBurst int     `koanf:"rate_limit_burst"`

	// ArchiveLimit caps the number of archive items requested per search.
	ArchiveLimit int `koanf:"archive_limit"`

	// ArchiveCacheTTL keeps archive search results for repeated identical
	// searches. Zero disables the cache.
	ArchiveCacheTTL  time.Duration `koanf:"archive_cache_ttl"`
	ArchiveCacheSize int           `koanf:"archive_cache_size"`

	// DeliveryConfigID and UserOrderID are attached to every task request.
	// Empty values are sent as null.
	DeliveryConfigID string `koanf:"delivery_config_id"`
	UserOrderID      string `koanf:"user_order_id"`

	// ForwardAuthorization forwards the inbound Authorization header to
	// Canopy instead of the configured token when the caller supplies one.
	ForwardAuthorization bool `koanf:"forward_authorization"`
}

// CatalogConfig selects which product variants are offered.
type CatalogConfig struct {
	// ArchiveCatalogEnabled offers the archive-only product alongside the
	// spotlight tasking product.
	ArchiveCatalogEnabled bool `koanf:"archive_catalog_enabled"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// PublicURL is the externally reachable base URL used for links in
	// responses (create-order links). Derived from Host and Port when empty.
	PublicURL string `koanf:"public_url"`

	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds inbound HTTP protection settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	MaxBodyBytes      int64         `koanf:"max_body_bytes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// BaseURL returns PublicURL, or an http URL built from Host and Port.
func (s ServerConfig) BaseURL() string {
	if s.PublicURL != "" {
		return strings.TrimRight(s.PublicURL, "/")
	}
	return fmt.Sprintf("http://%s", s.Addr())
}
