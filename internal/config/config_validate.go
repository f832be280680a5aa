// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package config

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/stapi-canopy/internal/logging"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateCanopy(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateCanopy validates the Canopy client configuration
func (c *Config) validateCanopy() error {
	if err := validateHTTPURL(c.Canopy.APIURL, "CANOPY_API_URL"); err != nil {
		return err
	}
	if c.Canopy.TaskURL != "" {
		if err := validateHTTPURL(c.Canopy.TaskURL, "CANOPY_URL"); err != nil {
			return err
		}
	}

	if c.Canopy.FeasibilityTimeout <= 0 {
		return fmt.Errorf("FEASIBILITY_TIMEOUT must be positive")
	}
	if c.Canopy.PollInterval <= 0 {
		return fmt.Errorf("FEASIBILITY_POLL_INTERVAL must be positive")
	}
	if c.Canopy.PollInterval > c.Canopy.FeasibilityTimeout {
		return fmt.Errorf("FEASIBILITY_POLL_INTERVAL (%v) must not exceed FEASIBILITY_TIMEOUT (%v)",
			c.Canopy.PollInterval, c.Canopy.FeasibilityTimeout)
	}
	if c.Canopy.RequestTimeout <= 0 {
		return fmt.Errorf("CANOPY_REQUEST_TIMEOUT must be positive")
	}

	if c.Canopy.RateLimitRPS <= 0 {
		return fmt.Errorf("CANOPY_RATE_LIMIT_RPS must be positive")
	}
	if c.Canopy.RateLimitBurst < 1 {
		return fmt.Errorf("CANOPY_RATE_LIMIT_BURST must be at least 1")
	}
	if c.Canopy.ArchiveLimit < 1 || c.Canopy.ArchiveLimit > maxArchiveLimit {
		return fmt.Errorf("CANOPY_ARCHIVE_LIMIT must be between 1 and %d", maxArchiveLimit)
	}

	if c.Canopy.ArchiveCacheTTL < 0 {
		return fmt.Errorf("CANOPY_ARCHIVE_CACHE_TTL must not be negative")
	}
	if c.Canopy.ArchiveCacheTTL > 0 && c.Canopy.ArchiveCacheSize < 1 {
		return fmt.Errorf("CANOPY_ARCHIVE_CACHE_SIZE must be at least 1 when the archive cache is enabled")
	}

	if c.Canopy.DeliveryConfigID != "" {
		if _, err := uuid.Parse(c.Canopy.DeliveryConfigID); err != nil {
			return fmt.Errorf("CANOPY_DELIVERY_CONFIG_ID must be a UUID: %w", err)
		}
	}
	return nil
}

const maxArchiveLimit = 1000

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Host == "" {
		return fmt.Errorf("HTTP_HOST is required")
	}
	if c.Server.PublicURL != "" {
		if err := validatePublicURL(c.Server.PublicURL, "PUBLIC_URL"); err != nil {
			return err
		}
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT and HTTP_WRITE_TIMEOUT must be positive")
	}
	if c.Server.WriteTimeout <= c.Canopy.FeasibilityTimeout {
		return fmt.Errorf("HTTP_WRITE_TIMEOUT (%v) must exceed FEASIBILITY_TIMEOUT (%v)",
			c.Server.WriteTimeout, c.Canopy.FeasibilityTimeout)
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateSecurity validates inbound rate limiting and body limits
func (c *Config) validateSecurity() error {
	if c.Security.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic, disabled (got %q)", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console (got %q)", c.Logging.Format)
	}
	return nil
}

// HasWildcardCORS reports whether CORS allows any origin. Logged as a
// warning at startup when the token is forwarded from callers.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
