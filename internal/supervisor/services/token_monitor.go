// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stapi-canopy/internal/logging"
	"github.com/tomtom215/stapi-canopy/internal/metrics"
)

// Token monitor defaults.
const (
	DefaultTokenCheckInterval = 5 * time.Minute
	DefaultTokenWarnBefore    = 24 * time.Hour
)

// TokenExpirySource reports when the configured Canopy token expires.
// Satisfied by *canopy.Client.
type TokenExpirySource interface {
	ConfiguredTokenExpiry() (time.Time, bool)
}

// tokenState is the outcome of one expiry check.
type tokenState int

const (
	tokenUnknown tokenState = iota
	tokenValid
	tokenExpiring
	tokenExpired
)

// TokenMonitorService periodically inspects the configured Canopy token.
// It publishes the expiry as canopy_token_expiry_timestamp_seconds and
// logs a warning once the token is within warnBefore of expiring, then an
// error once it has expired. Log lines are emitted on state changes only.
type TokenMonitorService struct {
	source     TokenExpirySource
	interval   time.Duration
	warnBefore time.Duration
	now        func() time.Time
	logger     zerolog.Logger

	last tokenState
}

// NewTokenMonitorService creates the monitor. Non-positive durations take
// the package defaults.
func NewTokenMonitorService(source TokenExpirySource, interval, warnBefore time.Duration) *TokenMonitorService {
	if interval <= 0 {
		interval = DefaultTokenCheckInterval
	}
	if warnBefore <= 0 {
		warnBefore = DefaultTokenWarnBefore
	}
	return &TokenMonitorService{
		source:     source,
		interval:   interval,
		warnBefore: warnBefore,
		now:        time.Now,
		logger:     logging.WithComponent("token-monitor"),
	}
}

// Serve implements suture.Service.
func (m *TokenMonitorService) Serve(ctx context.Context) error {
	m.check()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.check()
		}
	}
}

// String names the service in supervisor logs.
func (m *TokenMonitorService) String() string {
	return "canopy-token-monitor"
}

func (m *TokenMonitorService) check() tokenState {
	exp, ok := m.source.ConfiguredTokenExpiry()
	if !ok {
		metrics.CanopyTokenExpiry.Set(0)
		m.last = tokenUnknown
		return tokenUnknown
	}
	metrics.CanopyTokenExpiry.Set(float64(exp.Unix()))

	remaining := exp.Sub(m.now())
	state := tokenValid
	switch {
	case remaining <= 0:
		state = tokenExpired
	case remaining < m.warnBefore:
		state = tokenExpiring
	}

	if state != m.last {
		switch state {
		case tokenExpired:
			m.logger.Error().Time("expires_at", exp).Msg("Configured Canopy token has expired")
		case tokenExpiring:
			m.logger.Warn().Time("expires_at", exp).Dur("remaining", remaining).Msg("Configured Canopy token expires soon")
		case tokenValid:
			m.logger.Info().Time("expires_at", exp).Msg("Configured Canopy token is valid")
		}
	}
	m.last = state
	return state
}
