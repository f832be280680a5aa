// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

// Package validation validates decoded request bodies with
// go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata after first use and is safe for concurrent use. Error messages
// name fields by their json tag and nested fields by dotted path:
//
//	order_parameters.grazingAngleDegrees must be at most 70
//
// The custom "geometry" tag accepts a *geojson.Geometry that carries
// coordinates (or, for a GeometryCollection, member geometries).
//
//	var req models.OpportunityRequest
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400 with apiErr.Code and apiErr.Message
//	}
package validation
