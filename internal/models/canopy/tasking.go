// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package canopy

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// ImagingMode is the Canopy imaging mode.
type ImagingMode string

const ImagingModeSpotlight ImagingMode = "SPOTLIGHT"

// Polarization of the SAR collect.
type Polarization string

const (
	PolarizationHH Polarization = "HH"
	PolarizationVV Polarization = "VV"
)

// SceneSize values accepted by Canopy spotlight tasking.
const (
	SceneSize5x5KM   = "5x5_KM"
	SceneSize10x10KM = "10x10_KM"
)

// SceneSizes lists the scene sizes offered to STAPI callers.
var SceneSizes = []string{SceneSize5x5KM, SceneSize10x10KM}

// SatelliteIDs lists the Umbra satellites that can be requested.
var SatelliteIDs = []string{"Umbra-04", "Umbra-05", "Umbra-07", "Umbra-08"}

// ProductTypes lists the deliverable product types.
var ProductTypes = []string{"GEC", "SIDD", "SICD"}

// DefaultProductTypes are requested when an order names no product types.
var DefaultProductTypes = []string{"GEC", "SICD"}

// Spotlight constraint defaults and bounds.
const (
	DefaultRangeResolutionMinMeters = 1.0
	MinRangeResolutionMeters        = 0.25
	MaxRangeResolutionMeters        = 2.0
	DefaultMultilookFactor          = 1.0
	DefaultGrazingAngleMinDegrees   = 30.0
	DefaultGrazingAngleMaxDegrees   = 70.0
	DefaultTargetAzimuthStart       = 0.0
	DefaultTargetAzimuthEnd         = 360.0
)

// SpotlightConstraints are the imaging constraints of a spotlight
// feasibility or task request.
type SpotlightConstraints struct {
	Geometry                       *geojson.Geometry `json:"geometry"`
	Polarization                   Polarization      `json:"polarization"`
	RangeResolutionMinMeters       float64           `json:"rangeResolutionMinMeters"`
	MultilookFactor                float64           `json:"multilookFactor"`
	GrazingAngleMinDegrees         float64           `json:"grazingAngleMinDegrees"`
	GrazingAngleMaxDegrees         float64           `json:"grazingAngleMaxDegrees"`
	TargetAzimuthAngleStartDegrees float64           `json:"targetAzimuthAngleStartDegrees"`
	TargetAzimuthAngleEndDegrees   float64           `json:"targetAzimuthAngleEndDegrees"`
	SceneSize                      string            `json:"sceneSize"`
}

// DefaultSpotlightConstraints returns the constraints applied when a
// request does not narrow them.
func DefaultSpotlightConstraints(geometry *geojson.Geometry) SpotlightConstraints {
	return SpotlightConstraints{
		Geometry:                       geometry,
		Polarization:                   PolarizationHH,
		RangeResolutionMinMeters:       DefaultRangeResolutionMinMeters,
		MultilookFactor:                DefaultMultilookFactor,
		GrazingAngleMinDegrees:         DefaultGrazingAngleMinDegrees,
		GrazingAngleMaxDegrees:         DefaultGrazingAngleMaxDegrees,
		TargetAzimuthAngleStartDegrees: DefaultTargetAzimuthStart,
		TargetAzimuthAngleEndDegrees:   DefaultTargetAzimuthEnd,
		SceneSize:                      SceneSize5x5KM,
	}
}

// Validate checks the bounds Canopy enforces on spotlight constraints.
func (c *SpotlightConstraints) Validate() error {
	if c.RangeResolutionMinMeters < MinRangeResolutionMeters || c.RangeResolutionMinMeters > MaxRangeResolutionMeters {
		return fmt.Errorf("rangeResolutionMinMeters must be between %.2f and %.2f, got %.2f",
			MinRangeResolutionMeters, MaxRangeResolutionMeters, c.RangeResolutionMinMeters)
	}
	if c.GrazingAngleMinDegrees < 0 || c.GrazingAngleMaxDegrees > 90 || c.GrazingAngleMinDegrees > c.GrazingAngleMaxDegrees {
		return fmt.Errorf("grazing angle range [%.1f, %.1f] is invalid",
			c.GrazingAngleMinDegrees, c.GrazingAngleMaxDegrees)
	}
	if c.SceneSize != SceneSize5x5KM && c.SceneSize != SceneSize10x10KM {
		return fmt.Errorf("sceneSize %q is not supported", c.SceneSize)
	}
	return nil
}

// FeasibilityRequest is the body of POST /tasking/feasibilities.
type FeasibilityRequest struct {
	ImagingMode          ImagingMode          `json:"imagingMode"`
	SpotlightConstraints SpotlightConstraints `json:"spotlightConstraints"`
	WindowStartAt        time.Time            `json:"windowStartAt"`
	WindowEndAt          time.Time            `json:"windowEndAt"`
}

// FeasibilityStatus is the processing state of a feasibility request.
type FeasibilityStatus string

const (
	FeasibilityStatusReceived  FeasibilityStatus = "RECEIVED"
	FeasibilityStatusCompleted FeasibilityStatus = "COMPLETED"
	FeasibilityStatusError     FeasibilityStatus = "ERROR"
	FeasibilityStatusRejected  FeasibilityStatus = "REJECTED"
)

// Terminal reports whether no further status change is expected.
func (s FeasibilityStatus) Terminal() bool {
	switch s {
	case FeasibilityStatusCompleted, FeasibilityStatusError, FeasibilityStatusRejected:
		return true
	}
	return false
}

// FeasibilityOpportunity is one imaging window found by a feasibility analysis.
type FeasibilityOpportunity struct {
	WindowStartAt                  time.Time `json:"windowStartAt"`
	WindowEndAt                    time.Time `json:"windowEndAt"`
	DurationSec                    float64   `json:"durationSec"`
	GrazingAngleStartDegrees       float64   `json:"grazingAngleStartDegrees"`
	GrazingAngleEndDegrees         float64   `json:"grazingAngleEndDegrees"`
	TargetAzimuthAngleStartDegrees float64   `json:"targetAzimuthAngleStartDegrees"`
	TargetAzimuthAngleEndDegrees   float64   `json:"targetAzimuthAngleEndDegrees"`
	SatelliteID                    string    `json:"satelliteId"`
}

// FeasibilityResponse is returned by both the create and the get
// feasibility endpoints. Opportunities is only meaningful once Status is
// COMPLETED.
type FeasibilityResponse struct {
	ID                 string                   `json:"id"`
	Status             FeasibilityStatus        `json:"status"`
	CreatedAt          time.Time                `json:"createdAt"`
	UpdatedAt          time.Time                `json:"updatedAt"`
	Opportunities      []FeasibilityOpportunity `json:"opportunities"`
	FeasibilityRequest FeasibilityRequest       `json:"feasibilityRequest"`
}

// TaskRequest is the body of POST /tasking/tasks. DeliveryConfigID and
// UserOrderID are always encoded, as null when unset.
type TaskRequest struct {
	TaskName             string               `json:"taskName"`
	ImagingMode          ImagingMode          `json:"imagingMode"`
	SpotlightConstraints SpotlightConstraints `json:"spotlightConstraints"`
	WindowStartAt        time.Time            `json:"windowStartAt"`
	WindowEndAt          time.Time            `json:"windowEndAt"`
	DeliveryConfigID     *string              `json:"deliveryConfigId"`
	UserOrderID          *string              `json:"userOrderId"`
	SatelliteIDs         []string             `json:"satelliteIds,omitempty"`
	ProductTypes         []string             `json:"productTypes,omitempty"`
}

// TaskResponseProperties are the properties of a Canopy task.
type TaskResponseProperties struct {
	SpotlightConstraints SpotlightConstraints `json:"spotlightConstraints"`
	WindowStartAt        time.Time            `json:"windowStartAt"`
	WindowEndAt          time.Time            `json:"windowEndAt"`
	TaskName             string               `json:"taskName,omitempty"`
	Status               string               `json:"status,omitempty"`
}

// TaskResponse is a Canopy task as returned by create and get.
type TaskResponse struct {
	ID         uuid.UUID              `json:"id"`
	Geometry   *geojson.Geometry      `json:"geometry"`
	Properties TaskResponseProperties `json:"properties"`
}
