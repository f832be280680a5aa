// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

// Package translator maps between STAPI models and Canopy models.
//
// Every function is pure: no I/O, no clock reads, no shared state. Functions
// that target the Canopy tasking API return ErrPointRequired when the
// request geometry is not a single point, before anything is built.
package translator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/tomtom215/stapi-canopy/internal/models"
	"github.com/tomtom215/stapi-canopy/internal/models/canopy"
)

// Imaging mode labels reported on opportunities.
const (
	ImagingModeSpotlight        = "SPOTLIGHT"
	ImagingModeSpotlightArchive = "SPOTLIGHT_ARCHIVE"
)

// TaskNamePrefix prefixes every generated Canopy task name.
const TaskNamePrefix = "stapi-sprint-"

// UnknownProductID is reported on orders fetched by ID, since Canopy tasks
// do not record which STAPI product created them.
const UnknownProductID = "unknown"

// ErrPointRequired is returned when a tasking request geometry is not a Point.
var ErrPointRequired = errors.New("geometry is restricted to a Point for this product")

// ErrInvalidConstraint is returned when filter or order parameters narrow
// the spotlight constraints outside what Canopy accepts.
var ErrInvalidConstraint = errors.New("invalid spotlight constraint")

// ArchiveItemToOpportunity converts a STAC archive item into an Opportunity.
// The grazing and azimuth angles of a captured image are single values and
// are reported as degenerate [v, v] ranges.
func ArchiveItemToOpportunity(item *canopy.ArchiveItem, productID string) models.Opportunity {
	props := item.Properties
	duration := props.EndDatetime.Sub(props.StartDatetime).Seconds()

	opp := models.Opportunity{
		Type:     models.TypeFeature,
		Geometry: item.Geometry,
		Properties: models.OpportunityProperties{
			ProductID:                 productID,
			Datetime:                  models.FormatInterval(props.StartDatetime, props.EndDatetime),
			DurationSeconds:           &duration,
			GrazingAngleDegrees:       []float64{props.GrazingAngleDegrees, props.GrazingAngleDegrees},
			TargetAzimuthAngleDegrees: []float64{props.TargetAzimuthAngleDegrees, props.TargetAzimuthAngleDegrees},
			SatelliteID:               props.Platform,
			ImagingMode:               ImagingModeSpotlightArchive,
		},
	}

	if href := item.SelfHref(); href != "" {
		opp.Links = []models.Link{{
			Href:  href,
			Rel:   "via",
			Type:  "application/geo+json",
			Title: "Canopy archive item " + item.ID,
		}}
	}
	return opp
}

// OpportunityRequestToFeasibilityRequest builds the Canopy feasibility
// request for a search window. Constraints start from the spotlight
// defaults and are narrowed by the request's CQL2 filter.
func OpportunityRequestToFeasibilityRequest(req *models.OpportunityRequest) (canopy.FeasibilityRequest, error) {
	if _, ok := req.Point(); !ok {
		return canopy.FeasibilityRequest{}, fmt.Errorf("%w: got %s", ErrPointRequired, geometryTypeName(req))
	}

	constraints := canopy.DefaultSpotlightConstraints(req.Geometry)
	if err := applyFilter(&constraints, req.Filter); err != nil {
		return canopy.FeasibilityRequest{}, err
	}
	if err := constraints.Validate(); err != nil {
		return canopy.FeasibilityRequest{}, fmt.Errorf("%w: %w", ErrInvalidConstraint, err)
	}

	return canopy.FeasibilityRequest{
		ImagingMode:          canopy.ImagingModeSpotlight,
		SpotlightConstraints: constraints,
		WindowStartAt:        req.Datetime.Start,
		WindowEndAt:          req.Datetime.End,
	}, nil
}

// FeasibilityResponseToOpportunities returns one Opportunity per window in
// a completed feasibility response. All of them carry requestGeometry, the
// geometry of the originating request; the constraints Canopy echoes back
// are used only when it is nil. orderHref is the create-order endpoint the
// returned links point at; no link is added when it is empty.
func FeasibilityResponseToOpportunities(resp *canopy.FeasibilityResponse, requestGeometry *geojson.Geometry, productID, orderHref string) []models.Opportunity {
	geometry := requestGeometry
	if geometry == nil {
		geometry = resp.FeasibilityRequest.SpotlightConstraints.Geometry
	}

	opportunities := make([]models.Opportunity, 0, len(resp.Opportunities))
	for _, o := range resp.Opportunities {
		duration := o.DurationSec
		datetime := models.FormatInterval(o.WindowStartAt, o.WindowEndAt)

		opp := models.Opportunity{
			Type:     models.TypeFeature,
			Geometry: geometry,
			Properties: models.OpportunityProperties{
				ProductID:                 productID,
				Datetime:                  datetime,
				DurationSeconds:           &duration,
				GrazingAngleDegrees:       []float64{o.GrazingAngleStartDegrees, o.GrazingAngleEndDegrees},
				TargetAzimuthAngleDegrees: []float64{o.TargetAzimuthAngleStartDegrees, o.TargetAzimuthAngleEndDegrees},
				SatelliteID:               o.SatelliteID,
				ImagingMode:               ImagingModeSpotlight,
			},
		}

		if orderHref != "" {
			opp.Links = []models.Link{{
				Href:   orderHref,
				Rel:    "create-order",
				Type:   "application/json",
				Method: "POST",
				Body: map[string]any{
					"geometry":   geometry,
					"datetime":   datetime,
					"product_id": productID,
				},
			}}
		}
		opportunities = append(opportunities, opp)
	}
	return opportunities
}

// TaskDefaults are deployment-wide values attached to every task request.
// Empty strings are sent as null.
type TaskDefaults struct {
	DeliveryConfigID string
	UserOrderID      string
}

// OpportunityRequestToTaskRequest builds the Canopy task request for an
// order. The task name is unique per call. Orders that name no product
// types get canopy.DefaultProductTypes.
func OpportunityRequestToTaskRequest(req *models.OrderRequest, defaults TaskDefaults) (canopy.TaskRequest, error) {
	if _, ok := req.Point(); !ok {
		return canopy.TaskRequest{}, fmt.Errorf("%w: got %s", ErrPointRequired, geometryTypeName(&req.OpportunityRequest))
	}

	params := req.OrderParameters
	constraints := canopy.DefaultSpotlightConstraints(req.Geometry)
	if params.SceneSize != "" {
		constraints.SceneSize = params.SceneSize
	}
	if params.GrazingAngleDegrees != nil {
		constraints.GrazingAngleMinDegrees = float64(*params.GrazingAngleDegrees)
	}
	if err := constraints.Validate(); err != nil {
		return canopy.TaskRequest{}, fmt.Errorf("%w: %w", ErrInvalidConstraint, err)
	}

	productTypes := params.ProductTypes
	if len(productTypes) == 0 {
		productTypes = slices.Clone(canopy.DefaultProductTypes)
	}

	deliveryConfigID := nullable(defaults.DeliveryConfigID)
	if params.DeliveryConfigID != nil && *params.DeliveryConfigID != "" {
		deliveryConfigID = params.DeliveryConfigID
	}

	return canopy.TaskRequest{
		TaskName:             TaskNamePrefix + uuid.NewString(),
		ImagingMode:          canopy.ImagingModeSpotlight,
		SpotlightConstraints: constraints,
		WindowStartAt:        req.Datetime.Start,
		WindowEndAt:          req.Datetime.End,
		DeliveryConfigID:     deliveryConfigID,
		UserOrderID:          nullable(defaults.UserOrderID),
		SatelliteIDs:         params.SatelliteIDs,
		ProductTypes:         productTypes,
	}, nil
}

// TaskResponseToOrder converts a Canopy task into an Order. taskURL is the
// link to the task in Canopy.
func TaskResponseToOrder(resp *canopy.TaskResponse, productID, taskURL string) models.Order {
	geometry := resp.Properties.SpotlightConstraints.Geometry
	if geometry == nil {
		geometry = resp.Geometry
	}

	return models.Order{
		ID:       resp.ID.String(),
		Type:     models.TypeFeature,
		Geometry: geometry,
		Properties: models.OrderProperties{
			ProductID: productID,
			Datetime:  models.FormatInterval(resp.Properties.WindowStartAt, resp.Properties.WindowEndAt),
			Status:    resp.Properties.Status,
		},
		Links: []models.Link{{
			Href: taskURL,
			Rel:  "task",
		}},
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func geometryTypeName(req *models.OpportunityRequest) string {
	if t := req.GeometryType(); t != "" {
		return t
	}
	return "no geometry"
}
