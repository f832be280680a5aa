// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/stapi-canopy/internal/logging"
)

// DefaultSlowRequestThreshold is above the default feasibility timeout so
// that a normal feasibility search does not warn.
const DefaultSlowRequestThreshold = 15 * time.Second

// RequestLogger logs one line per completed request. Requests slower than
// slow, and server errors, are logged at warn level.
func RequestLogger(slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := statusOf(ww)

			log := logging.Ctx(r.Context())
			event := log.Info()
			msg := "Request completed"
			switch {
			case status >= http.StatusInternalServerError:
				event = log.Warn()
			case slow > 0 && elapsed > slow:
				event = log.Warn()
				msg = "Slow request detected"
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", elapsed).
				Str("remote_addr", r.RemoteAddr).
				Msg(msg)
		})
	}
}
