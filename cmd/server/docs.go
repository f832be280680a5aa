// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

// Package main provides the Canopy STAPI HTTP server
//
// @title Canopy STAPI
// @version 1.0
// @description STAPI (Sensor Tasking API) backend for Umbra Canopy SAR imagery.
// @description
// @description ## Opportunities
// @description
// @description A search window that lies in the past is answered from the Canopy archive.
// @description A window in the future runs a Canopy feasibility analysis and waits for it
// @description to complete. A window straddling now does both and returns the archive
// @description results first.
// @description
// @description ## Authentication
// @description
// @description Feasibility and ordering need a Canopy bearer token. The service uses its
// @description configured token, or the caller's `Authorization: Bearer` token when
// @description forwarding is enabled.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "detail": "Human-readable error message",
// @description   "status": "error",
// @description   "error": {"code": "ERROR_CODE", "message": "...", "request_id": "..."},
// @description   "metadata": {"timestamp": "2026-10-18T12:34:56Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/stapi-canopy/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8001
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Canopy bearer token, forwarded when CANOPY_FORWARD_AUTHORIZATION=true.
//
// @tag.name Products
// @tag.description Orderable product descriptors and their parameter schemas
//
// @tag.name Opportunities
// @tag.description Archive and feasibility opportunity search
//
// @tag.name Orders
// @tag.description Canopy tasking orders
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
