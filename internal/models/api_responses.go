// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package models

import (
	"time"
)

// ErrorResponse is the body of every non-2xx response.
//
// Detail carries the human-readable message in the shape STAPI clients
// already parse; Error adds a machine-readable code and the request ID.
//
//	{
//	  "detail": "No available products matching id umbra_nope",
//	  "status": "error",
//	  "error": {
//	    "code": "NOT_FOUND",
//	    "message": "No available products matching id umbra_nope",
//	    "request_id": "5b0c..."
//	  },
//	  "metadata": {"timestamp": "2026-10-18T12:00:00Z"}
//	}
type ErrorResponse struct {
	Detail   string   `json:"detail"`
	Status   string   `json:"status"`
	Error    APIError `json:"error"`
	Metadata Metadata `json:"metadata"`
}

// Metadata contains response metadata.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

// APIError represents structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: malformed body, non-point geometry, bad order id
//   - NOT_FOUND: unknown product or order
//   - UNAUTHORIZED: missing, expired or rejected Canopy token
//   - NOT_IMPLEMENTED: operation not offered by the product
//   - UPSTREAM_TIMEOUT: feasibility did not complete before the deadline
//   - INTERNAL_ERROR: any other Canopy failure
type APIError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status    string            `json:"status"`
	Version   string            `json:"version,omitempty"`
	Uptime    float64           `json:"uptime_seconds"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}
