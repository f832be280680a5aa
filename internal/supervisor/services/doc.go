// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

/*
Package services adapts the service's long-running components to suture's
Serve(ctx) error contract.

# Available Services

HTTP Server (HTTPServerService):
  - Runs ListenAndServe and drains connections with Shutdown on cancel
  - A listener failure is returned so suture restarts with backoff

Token Monitor (TokenMonitorService):
  - Reads the exp claim of the configured Canopy token on an interval
  - Publishes canopy_token_expiry_timestamp_seconds
  - Logs once when the token nears expiry and again when it expires

Each service implements fmt.Stringer so supervisor events name it.
*/
package services
