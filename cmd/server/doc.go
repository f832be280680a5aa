// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

/*
Package main is the entry point for the Canopy STAPI server.

The server exposes a STAPI product, opportunity and order API and answers it
by calling the Umbra Canopy archive and tasking APIs.

# Application Architecture

	RootSupervisor ("stapi-canopy")
	├── VendorSupervisor ("vendor-layer")
	│   └── Canopy token monitor (when CANOPY_TOKEN is set)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional YAML and environment
 2. Logging: zerolog, plus an slog bridge for the supervisor
 3. Product catalog: spotlight, and the archive catalog when enabled
 4. Canopy client: rate limiter and circuit breaker around net/http
 5. Backend: routes searches to archive or feasibility by time window
 6. HTTP router: chi with CORS, rate limiting, metrics and Swagger UI
 7. Supervisor tree: runs the HTTP server until SIGINT or SIGTERM

# Configuration

	export CANOPY_TOKEN=...            # Canopy bearer token
	export PUBLIC_URL=https://stapi.example.com
	export FEASIBILITY_TIMEOUT=10s
	./stapi-canopy

See internal/config for every key and its environment variable.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
accepting connections and waits up to server.shutdown_timeout for in-flight
requests, including feasibility searches still polling Canopy.
*/
package main
