// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stapi-canopy/internal/models"
	"github.com/tomtom215/stapi-canopy/internal/validation"
)

// errProductMismatch is returned when a body names a different product
// than the path.
var errProductMismatch = errors.New("product_id in body does not match product in path")

// requestError is a decode or validation failure ready to be written.
type requestError struct {
	status  int
	code    string
	message string
	details map[string]any
}

func (e *requestError) Error() string { return e.message }

func (e *requestError) write(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, e.status, e.code, e.message, e.details)
}

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) *requestError {
	body := r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &requestError{
				status:  http.StatusRequestEntityTooLarge,
				code:    ErrCodeRequestTooLarge,
				message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			}
		}
		return &requestError{status: http.StatusBadRequest, code: ErrCodeValidation, message: "unable to read request body"}
	}
	if len(data) == 0 {
		return &requestError{status: http.StatusBadRequest, code: ErrCodeValidation, message: "request body is required"}
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return &requestError{
			status:  http.StatusBadRequest,
			code:    ErrCodeValidation,
			message: "invalid request body: " + err.Error(),
		}
	}
	return nil
}

// validateBody runs struct validation and the checks struct tags cannot
// express.
func validateBody(req *models.OpportunityRequest, full any) *requestError {
	if verr := validation.ValidateStruct(full); verr != nil {
		apiErr := verr.ToAPIError()
		return &requestError{
			status:  http.StatusBadRequest,
			code:    apiErr.Code,
			message: apiErr.Message,
			details: apiErr.Details,
		}
	}
	if req.Datetime.IsZero() {
		return &requestError{status: http.StatusBadRequest, code: ErrCodeValidation, message: "datetime is required"}
	}
	return nil
}

// resolveProductID reconciles the body product_id with the path. An empty
// path means the body must name the product.
func resolveProductID(req *models.OpportunityRequest, pathProductID string) *requestError {
	switch {
	case pathProductID == "" && req.ProductID == "":
		return &requestError{status: http.StatusBadRequest, code: ErrCodeValidation, message: "product_id is required"}
	case pathProductID == "":
		return nil
	case req.ProductID != "" && req.ProductID != pathProductID:
		return &requestError{
			status:  http.StatusBadRequest,
			code:    ErrCodeValidation,
			message: errProductMismatch.Error(),
			details: map[string]any{"path": pathProductID, "body": req.ProductID},
		}
	default:
		req.ProductID = pathProductID
		return nil
	}
}
