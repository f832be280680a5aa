// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/stapi-canopy/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.HealthStatus{
		Status:    "alive",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Timestamp: time.Now().UTC(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 503 while the Canopy circuit breaker is open.
//
// @Summary Readiness probe
// @Description Returns 503 while the Canopy circuit breaker is open.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Failure 503 {object} models.HealthStatus
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := "ready"
	statusCode := http.StatusOK
	checks := map[string]string{}

	if h.readiness != nil {
		checks["canopy_circuit_breaker"] = h.readiness.BreakerState()
		if !h.readiness.Available() {
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
		}
	}

	respondJSON(w, statusCode, &models.HealthStatus{
		Status:    status,
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Checks:    checks,
		Timestamp: time.Now().UTC(),
	})
}
