// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package api

import (
	"time"

	"github.com/tomtom215/stapi-canopy/internal/backend"
	"github.com/tomtom215/stapi-canopy/internal/config"
)

// defaultMaxBodyBytes applies when the configured limit is not positive.
const defaultMaxBodyBytes = 1 << 20

// Readiness reports whether the upstream vendor can currently be reached.
// *canopy.Client implements it through its circuit breaker.
type Readiness interface {
	Available() bool
	BreakerState() string
}

// Handler serves the STAPI endpoints.
type Handler struct {
	backend      backend.Backend
	readiness    Readiness
	baseURL      string
	maxBodyBytes int64
	version      string
	startTime    time.Time
}

// NewHandler creates the STAPI handlers. readiness may be nil, in which
// case the service always reports ready.
func NewHandler(cfg *config.Config, b backend.Backend, readiness Readiness, version string) *Handler {
	maxBody := cfg.Security.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	return &Handler{
		backend:      b,
		readiness:    readiness,
		baseURL:      cfg.Server.BaseURL(),
		maxBodyBytes: maxBody,
		version:      version,
		startTime:    time.Now(),
	}
}
