// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/stapi-canopy/config.yaml",
	"/etc/stapi-canopy/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultCanopyAPIURL is the production Canopy API.
const DefaultCanopyAPIURL = "https://api.canopy.umbra.space"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Canopy: CanopyConfig{
			APIURL:               DefaultCanopyAPIURL,
			Token:                "",
			TaskURL:              "https://canopy.umbra.space",
			FeasibilityTimeout:   10 * time.Second,
			PollInterval:         1 * time.Second,
			RequestTimeout:       30 * time.Second,
			RateLimitRPS:         5,
			RateLimitBurst:       10,
			ArchiveLimit:         50,
			ArchiveCacheTTL:      time.Minute,
			ArchiveCacheSize:     256,
			DeliveryConfigID:     "",
			UserOrderID:          "",
			ForwardAuthorization: false,
		},
		Catalog: CatalogConfig{
			ArchiveCatalogEnabled: false,
		},
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8001,
			PublicURL:       "",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    90 * time.Second, // feasibility polling holds the response open
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			MaxBodyBytes:      1 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in values
//  2. Config File: optional YAML config file (if exists)
//  3. Environment Variables: override any mapped setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// CANOPY_TOKEN -> canopy.token, HTTP_PORT -> server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}
	if err := processDurationFields(k); err != nil {
		return nil, fmt.Errorf("failed to process duration fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while YAML already yields slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// secondsConfigPaths are durations that also accept a bare number of seconds,
// as in FEASIBILITY_TIMEOUT=10.
var secondsConfigPaths = []string{
	"canopy.feasibility_timeout",
	"canopy.poll_interval",
	"canopy.request_timeout",
}

// processDurationFields rewrites bare integer values of secondsConfigPaths
// into durations.
func processDurationFields(k *koanf.Koanf) error {
	for _, path := range secondsConfigPaths {
		var seconds int
		switch v := k.Get(path).(type) {
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				continue // let the decoder parse "10s", "1m" and report garbage
			}
			seconds = n
		case int:
			seconds = v
		case int64:
			seconds = int(v)
		case float64:
			seconds = int(v)
		default:
			continue
		}
		if err := k.Set(path, time.Duration(seconds)*time.Second); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped so that unrelated environment
// does not leak into the configuration.
//
// Examples:
//   - CANOPY_TOKEN -> canopy.token
//   - FEASIBILITY_TIMEOUT -> canopy.feasibility_timeout
//   - HTTP_PORT -> server.port
//   - LOGLEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Canopy mappings
		"canopy_api_url":               "canopy.api_url",
		"canopy_token":                 "canopy.token",
		"canopy_url":                   "canopy.task_url",
		"feasibility_timeout":          "canopy.feasibility_timeout",
		"feasibility_poll_interval":    "canopy.poll_interval",
		"canopy_request_timeout":       "canopy.request_timeout",
		"canopy_rate_limit_rps":        "canopy.rate_limit_rps",
		"canopy_rate_limit_burst":      "canopy.rate_limit_burst",
		"canopy_archive_limit":         "canopy.archive_limit",
		"canopy_archive_cache_ttl":     "canopy.archive_cache_ttl",
		"canopy_archive_cache_size":    "canopy.archive_cache_size",
		"canopy_delivery_config_id":    "canopy.delivery_config_id",
		"canopy_user_order_id":         "canopy.user_order_id",
		"canopy_forward_authorization": "canopy.forward_authorization",

		// Catalog mappings
		"archive_catalog_enabled": "catalog.archive_catalog_enabled",

		// Server mappings
		"http_host":             "server.host",
		"http_port":             "server.port",
		"public_url":            "server.public_url",
		"fastapi_url":           "server.public_url",
		"http_read_timeout":     "server.read_timeout",
		"http_write_timeout":    "server.write_timeout",
		"http_idle_timeout":     "server.idle_timeout",
		"http_shutdown_timeout": "server.shutdown_timeout",

		// Security mappings
		"cors_origins":        "security.cors_origins",
		"rate_limit_requests": "security.rate_limit_reqs",
		"rate_limit_window":   "security.rate_limit_window",
		"disable_rate_limit":  "security.rate_limit_disabled",
		"max_body_bytes":      "security.max_body_bytes",

		// Logging mappings
		"log_level":  "logging.level",
		"loglevel":   "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
