// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package models

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON and STAPI type discriminators.
const (
	TypeFeature           = "Feature"
	TypeFeatureCollection = "FeatureCollection"
	TypeProduct           = "Product"
	TypeProductCollection = "ProductCollection"
)

// Link is a STAPI/STAC link object. Method and Body describe an action link
// (for example create-order) that a client can replay as-is.
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Type   string `json:"type,omitempty"`
	Title  string `json:"title,omitempty"`
	Method string `json:"method,omitempty"`
	Body   any    `json:"body,omitempty"`
}

// ProviderRole is one of the STAC provider roles.
type ProviderRole string

const (
	ProviderRoleLicensor  ProviderRole = "licensor"
	ProviderRoleProducer  ProviderRole = "producer"
	ProviderRoleProcessor ProviderRole = "processor"
	ProviderRoleHost      ProviderRole = "host"
)

// Provider describes the organization behind a product.
type Provider struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Roles       []ProviderRole `json:"roles"`
	URL         string         `json:"url"`
}

// Product is an orderable product descriptor. Parameters holds the JSON
// schema of the product-specific order parameters.
type Product struct {
	Type        string         `json:"type"`
	ConformsTo  []string       `json:"conformsTo"`
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Keywords    []string       `json:"keywords,omitempty"`
	License     string         `json:"license"`
	Providers   []Provider     `json:"providers"`
	Links       []Link         `json:"links"`
	Parameters  map[string]any `json:"parameters"`
}

// ProductCollection is the body of GET /products.
type ProductCollection struct {
	Type     string    `json:"type"`
	Products []Product `json:"products"`
	Links    []Link    `json:"links"`
}

// OpportunityRequest is a search for imaging opportunities over a window.
type OpportunityRequest struct {
	ProductID string            `json:"product_id,omitempty" validate:"omitempty,max=128"`
	Datetime  DatetimeInterval  `json:"datetime"`
	Geometry  *geojson.Geometry `json:"geometry" validate:"required,geometry"`
	Filter    map[string]any    `json:"filter,omitempty"`
}

// Point returns the request geometry as a point, if it is one.
func (r *OpportunityRequest) Point() (orb.Point, bool) {
	if r.Geometry == nil || r.Geometry.Coordinates == nil {
		return orb.Point{}, false
	}
	p, ok := r.Geometry.Coordinates.(orb.Point)
	return p, ok
}

// GeometryType returns the GeoJSON type name of the request geometry, or ""
// when absent.
func (r *OpportunityRequest) GeometryType() string {
	if r.Geometry == nil || r.Geometry.Coordinates == nil {
		return ""
	}
	return r.Geometry.Coordinates.GeoJSONType()
}

// OpportunityProperties are the properties of an Opportunity feature.
type OpportunityProperties struct {
	ProductID                 string    `json:"product_id"`
	Datetime                  string    `json:"datetime"`
	DurationSeconds           *float64  `json:"duration_seconds,omitempty"`
	GrazingAngleDegrees       []float64 `json:"grazing_angle_degrees,omitempty"`
	TargetAzimuthAngleDegrees []float64 `json:"target_azimuth_angle_degrees,omitempty"`
	SatelliteID               string    `json:"satellite_id,omitempty"`
	ImagingMode               string    `json:"imaging_mode,omitempty"`
}

// Opportunity is a candidate imaging window, either already captured
// (archive) or predicted by a feasibility analysis.
type Opportunity struct {
	Type       string                `json:"type"`
	Geometry   *geojson.Geometry     `json:"geometry"`
	Properties OpportunityProperties `json:"properties"`
	Links      []Link                `json:"links,omitempty"`
}

// OpportunityCollection is the body of an opportunity search response.
type OpportunityCollection struct {
	Type     string        `json:"type"`
	Features []Opportunity `json:"features"`
	Links    []Link        `json:"links,omitempty"`
}

// NewOpportunityCollection wraps opportunities in a FeatureCollection,
// never encoding a null features array.
func NewOpportunityCollection(opportunities []Opportunity) OpportunityCollection {
	if opportunities == nil {
		opportunities = []Opportunity{}
	}
	return OpportunityCollection{Type: TypeFeatureCollection, Features: opportunities}
}

// OrderParameters are the spotlight product's order-time parameters.
type OrderParameters struct {
	SceneSize           string   `json:"sceneSize,omitempty" validate:"omitempty,oneof=5x5_KM 10x10_KM"`
	GrazingAngleDegrees *int     `json:"grazingAngleDegrees,omitempty" validate:"omitempty,min=40,max=70"`
	SatelliteIDs        []string `json:"satelliteIds,omitempty" validate:"omitempty,dive,oneof=Umbra-04 Umbra-05 Umbra-07 Umbra-08"`
	DeliveryConfigID    *string  `json:"deliveryConfigId,omitempty" validate:"omitempty,uuid"`
	ProductTypes        []string `json:"productTypes,omitempty" validate:"omitempty,dive,oneof=GEC SIDD SICD"`
}

// OrderRequest is the body of a create-order call: the opportunity window
// plus optional product parameters.
type OrderRequest struct {
	OpportunityRequest
	OrderParameters OrderParameters `json:"order_parameters"`
}

// OrderProperties are the properties of an Order feature.
type OrderProperties struct {
	ProductID string `json:"product_id"`
	Datetime  string `json:"datetime"`
	Status    string `json:"status,omitempty"`
}

// Order is a tasking order. The authoritative state lives in Canopy; the
// ID is the Canopy task UUID.
type Order struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Geometry   *geojson.Geometry `json:"geometry"`
	Properties OrderProperties   `json:"properties"`
	Links      []Link            `json:"links"`
}
