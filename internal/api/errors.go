// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/stapi-canopy/internal/backend"
	"github.com/tomtom215/stapi-canopy/internal/logging"
	"github.com/tomtom215/stapi-canopy/internal/models"
)

// Error codes for API responses
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeNotImplemented     = "NOT_IMPLEMENTED"
	ErrCodeUpstreamTimeout    = "UPSTREAM_TIMEOUT"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	ErrCodeRequestTooLarge    = "REQUEST_TOO_LARGE"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// errorCode maps a backend error kind to its API error code.
func errorCode(kind backend.Kind) string {
	switch kind {
	case backend.KindNotFound:
		return ErrCodeNotFound
	case backend.KindUnauthorized:
		return ErrCodeUnauthorized
	case backend.KindValidation:
		return ErrCodeValidation
	case backend.KindNotImplemented:
		return ErrCodeNotImplemented
	case backend.KindTimeout:
		return ErrCodeUpstreamTimeout
	default:
		return ErrCodeInternal
	}
}

// respondError writes the standard error body.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]any) {
	respondJSON(w, status, &models.ErrorResponse{
		Detail: message,
		Status: "error",
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// respondBackendError maps a Backend failure to its response. Only the
// caller-facing message is sent; the cause is logged.
func respondBackendError(w http.ResponseWriter, r *http.Request, err error) {
	var be *backend.Error
	if !errors.As(err, &be) {
		be = &backend.Error{Kind: backend.KindInternal, Message: "internal server error", Err: err}
	}

	status := be.HTTPStatus()
	log := logging.Ctx(r.Context())
	event := log.Debug()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(be.Err).
		Str("kind", be.Kind.String()).
		Int("status", status).
		Str("path", r.URL.Path).
		Msg(be.Message)

	respondError(w, r, status, errorCode(be.Kind), be.Message, nil)
}
