// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package canopy

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/stapi-canopy/internal/logging"
	canopymodels "github.com/tomtom215/stapi-canopy/internal/models/canopy"
)

// Sentinel errors. Use errors.Is to classify errors returned by Client.
var (
	// ErrUnauthorized matches every authorization failure: a missing or
	// expired token, and 401/403 responses from Canopy.
	ErrUnauthorized = errors.New("canopy: unauthorized")

	// ErrNotFound matches 404 responses from Canopy.
	ErrNotFound = errors.New("canopy: not found")

	// ErrFeasibilityTimeout is returned when a feasibility request does not
	// complete before the configured deadline.
	ErrFeasibilityTimeout = errors.New("feasibility request timed out")

	// ErrInvalidOrderID is returned when an order ID is not a UUID. No
	// request is sent.
	ErrInvalidOrderID = errors.New("order id is not a valid UUID")

	// ErrCircuitOpen is returned while the circuit breaker rejects calls.
	ErrCircuitOpen = errors.New("canopy: circuit breaker open")
)

// MissingTokenMessage is reported when a token is needed and none is configured.
const MissingTokenMessage = "Time range requested includes future opportunities, canopy_token is required"

// AuthorizationError is raised before any request when no usable token is
// available. Its message is safe to return to API callers.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Is makes AuthorizationError match ErrUnauthorized.
func (e *AuthorizationError) Is(target error) bool {
	return target == ErrUnauthorized
}

// HTTPError is a non-2xx response from Canopy. Body is truncated to
// maxErrorBodySize.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// Error includes at most errorMessageBodyLimit bytes of the body.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("canopy %s %s returned status %d: %s",
		e.Method, e.Path, e.StatusCode, logging.Truncate(e.Body, errorMessageBodyLimit))
}

// Is maps status codes onto the package sentinels.
func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// clientError reports whether the response is a 4xx, which says nothing
// about Canopy's health.
func (e *HTTPError) clientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// FeasibilityFailedError is returned when Canopy ends a feasibility
// analysis in ERROR or REJECTED.
type FeasibilityFailedError struct {
	ID     string
	Status canopymodels.FeasibilityStatus
}

func (e *FeasibilityFailedError) Error() string {
	return fmt.Sprintf("feasibility %s ended with status %s", e.ID, e.Status)
}
