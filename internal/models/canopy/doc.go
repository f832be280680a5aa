// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

// Package canopy provides data models for the Umbra Canopy API.
//
// The structs mirror the request and response JSON of the endpoints this
// service calls; field names follow Canopy's camelCase (tasking) and STAC
// (archive) conventions exactly.
//
// Tasking:
//   - FeasibilityRequest / FeasibilityResponse: POST and GET /tasking/feasibilities
//   - TaskRequest / TaskResponse: POST and GET /tasking/tasks
//   - SpotlightConstraints: imaging constraints shared by both
//
// Archive:
//   - ArchiveSearchRequest: POST /archive/search (CQL2-JSON filter wrapper)
//   - ArchiveItemCollection / ArchiveItem: STAC items returned by the search
//
// Values are never retained beyond a single call.
package canopy
