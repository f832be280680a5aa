// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

/*
Package middleware provides the infrastructure HTTP middleware shared by all
routes.

Key Components:

  - RequestID: request and correlation IDs in the logging context
  - RequestLogger: one structured log line per request, warn on slow or 5xx
  - PrometheusMetrics: request count and latency labelled by route pattern
  - Compression: gzip for clients that accept it

All middleware has the func(http.Handler) http.Handler shape and is
installed with chi's r.Use in internal/api:

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(middleware.DefaultSlowRequestThreshold))
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

RequestID must run first so the loggers below it see the IDs.
*/
package middleware
