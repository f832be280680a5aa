// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

/*
Package models defines the STAPI wire types served by this service.

Key Components:

  - Product, ProductCollection: orderable product descriptors
  - OpportunityRequest: search window, geometry and optional CQL2 filter
  - Opportunity, OpportunityCollection: GeoJSON features describing
    archived captures or predicted imaging windows
  - OrderRequest, OrderParameters: an opportunity request plus spotlight
    order-time parameters
  - Order: a Canopy task presented as a GeoJSON feature
  - DatetimeInterval: the "start/end" ISO-8601 interval used on the wire
  - ErrorResponse, HealthStatus: service envelopes

Geometries are *geojson.Geometry from github.com/paulmach/orb, so any GeoJSON
geometry decodes; product variants decide which types they accept.

The Canopy vendor payloads live in the canopy subpackage.

Usage Example:

	var req models.OpportunityRequest
	if err := json.Unmarshal(body, &req); err != nil {
	    return err
	}
	past, future := req.Datetime.SplitAt(time.Now())
*/
package models
