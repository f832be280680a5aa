// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Canopy.APIURL != "https://api.canopy.umbra.space" {
		t.Errorf("Canopy.APIURL = %q, want https://api.canopy.umbra.space", cfg.Canopy.APIURL)
	}
	if cfg.Canopy.Token != "" {
		t.Errorf("Canopy.Token should be empty by default")
	}
	if cfg.Canopy.FeasibilityTimeout != 10*time.Second {
		t.Errorf("Canopy.FeasibilityTimeout = %v, want 10s", cfg.Canopy.FeasibilityTimeout)
	}
	if cfg.Canopy.PollInterval != time.Second {
		t.Errorf("Canopy.PollInterval = %v, want 1s", cfg.Canopy.PollInterval)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 8001 {
		t.Errorf("Server = %s:%d, want 127.0.0.1:8001", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Catalog.ArchiveCatalogEnabled {
		t.Error("Catalog.ArchiveCatalogEnabled should be false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"CANOPY_TOKEN", "canopy.token"},
		{"CANOPY_API_URL", "canopy.api_url"},
		{"FEASIBILITY_TIMEOUT", "canopy.feasibility_timeout"},
		{"CANOPY_URL", "canopy.task_url"},
		{"HTTP_PORT", "server.port"},
		{"FASTAPI_URL", "server.public_url"},
		{"LOGLEVEL", "logging.level"},
		{"log_level", "logging.level"},
		{"ARCHIVE_CATALOG_ENABLED", "catalog.archive_catalog_enabled"},
		{"CANOPY_ARCHIVE_CACHE_TTL", "canopy.archive_cache_ttl"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(customPath, []byte("canopy: {}"), 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, customPath)

		if got := findConfigFile(); got != customPath {
			t.Errorf("findConfigFile() = %q, want %q", got, customPath)
		}
	})

	t.Run("CONFIG_PATH with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")

		if got := findConfigFile(); got == "/non/existent/config.yaml" {
			t.Errorf("findConfigFile() returned a missing file")
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
	t.Setenv("CANOPY_TOKEN", "test-token")
	t.Setenv("CANOPY_API_URL", "http://canopy.test:8080")
	t.Setenv("FEASIBILITY_TIMEOUT", "20")
	t.Setenv("FEASIBILITY_POLL_INTERVAL", "500ms")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CANOPY_DELIVERY_CONFIG_ID", "09530dcb-eecb-4235-b409-0d6381b5e909")
	t.Setenv("CANOPY_ARCHIVE_CACHE_TTL", "0s")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Canopy.Token != "test-token" {
		t.Errorf("Canopy.Token = %q, want test-token", cfg.Canopy.Token)
	}
	if cfg.Canopy.APIURL != "http://canopy.test:8080" {
		t.Errorf("Canopy.APIURL = %q", cfg.Canopy.APIURL)
	}
	if cfg.Canopy.FeasibilityTimeout != 20*time.Second {
		t.Errorf("Canopy.FeasibilityTimeout = %v, want 20s", cfg.Canopy.FeasibilityTimeout)
	}
	if cfg.Canopy.PollInterval != 500*time.Millisecond {
		t.Errorf("Canopy.PollInterval = %v, want 500ms", cfg.Canopy.PollInterval)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Canopy.DeliveryConfigID != "09530dcb-eecb-4235-b409-0d6381b5e909" {
		t.Errorf("Canopy.DeliveryConfigID = %q", cfg.Canopy.DeliveryConfigID)
	}
	if cfg.Canopy.ArchiveCacheTTL != 0 {
		t.Errorf("Canopy.ArchiveCacheTTL = %v, want disabled", cfg.Canopy.ArchiveCacheTTL)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
canopy:
  api_url: https://api.canopy.prod.umbra-space.dev
  feasibility_timeout: 30s
server:
  port: 8080
  public_url: https://stapi.example.com/umbra/
catalog:
  archive_catalog_enabled: true
logging:
  level: warn
  format: console
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Canopy.APIURL != "https://api.canopy.prod.umbra-space.dev" {
		t.Errorf("Canopy.APIURL = %q", cfg.Canopy.APIURL)
	}
	if cfg.Canopy.FeasibilityTimeout != 30*time.Second {
		t.Errorf("Canopy.FeasibilityTimeout = %v, want 30s", cfg.Canopy.FeasibilityTimeout)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want env override 9999", cfg.Server.Port)
	}
	if got := cfg.Server.BaseURL(); got != "https://stapi.example.com/umbra" {
		t.Errorf("Server.BaseURL() = %q", got)
	}
	if !cfg.Catalog.ArchiveCatalogEnabled {
		t.Error("Catalog.ArchiveCatalogEnabled should be true from file")
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "invalid api url scheme",
			env:     map[string]string{"CANOPY_API_URL": "ftp://canopy"},
			wantErr: "CANOPY_API_URL",
		},
		{
			name:    "port out of range",
			env:     map[string]string{"HTTP_PORT": "70000"},
			wantErr: "HTTP_PORT",
		},
		{
			name:    "poll interval above deadline",
			env:     map[string]string{"FEASIBILITY_TIMEOUT": "2", "FEASIBILITY_POLL_INTERVAL": "5"},
			wantErr: "FEASIBILITY_POLL_INTERVAL",
		},
		{
			name:    "delivery config not a uuid",
			env:     map[string]string{"CANOPY_DELIVERY_CONFIG_ID": "not-a-uuid"},
			wantErr: "CANOPY_DELIVERY_CONFIG_ID",
		},
		{
			name:    "negative archive cache ttl",
			env:     map[string]string{"CANOPY_ARCHIVE_CACHE_TTL": "-1m"},
			wantErr: "CANOPY_ARCHIVE_CACHE_TTL",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"LOG_LEVEL": "chatty"},
			wantErr: "LOG_LEVEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatalf("LoadWithKoanf() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestServerConfigBaseURL(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8001}
	if got := s.BaseURL(); got != "http://127.0.0.1:8001" {
		t.Errorf("BaseURL() = %q", got)
	}
	if got := s.Addr(); got != "127.0.0.1:8001" {
		t.Errorf("Addr() = %q", got)
	}
}
