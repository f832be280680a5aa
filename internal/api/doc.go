// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

/*
Package api provides the STAPI HTTP surface of the service.

Routes:

  - GET  /products                               product collection
  - GET  /products/{productId}                   one product
  - POST /products/{productId}/opportunities     opportunity search
  - POST /opportunities                          opportunity search, product from body
  - POST /products/{productId}/order             create an order (201)
  - GET  /orders/{orderId}                       one order
  - GET  /health/live, /health/ready             probes
  - GET  /metrics                                Prometheus
  - GET  /swagger/*                              API documentation

Handlers decode bodies with goccy/go-json, validate them with
internal/validation and delegate to a backend.Backend. Backend failures are
mapped to a status code and an error body by respondBackendError; the
underlying vendor error is logged but never sent to the caller.

Error body:

	{
	  "detail": "No available products matching id umbra_nope",
	  "status": "error",
	  "error": {"code": "NOT_FOUND", "message": "...", "request_id": "..."},
	  "metadata": {"timestamp": "..."}
	}

Middleware stack (outermost first): request ID, request logging, RealIP,
Recoverer, CORS, Prometheus metrics, gzip, then per-group rate limiting,
security headers and bearer token capture.
*/
package api
