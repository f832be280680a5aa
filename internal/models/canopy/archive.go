// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package canopy

import (
	"time"

	"github.com/paulmach/orb/geojson"
)

// FilterLangCQL2JSON is the only filter language the archive search accepts.
const FilterLangCQL2JSON = "cql2-json"

// ArchiveSearchRequest is the body of POST /archive/search. The search
// geometry goes in Intersects; STAPI calls the same field "geometry".
type ArchiveSearchRequest struct {
	FilterLang string            `json:"filter-lang"`
	Intersects *geojson.Geometry `json:"intersects"`
	Datetime   string            `json:"datetime"`
	ProductID  string            `json:"product_id,omitempty"`
	Filter     map[string]any    `json:"filter,omitempty"`
	Limit      int               `json:"limit,omitempty"`
}

// ArchiveItemProperties are the STAC item properties this service reads.
type ArchiveItemProperties struct {
	Datetime                  *time.Time `json:"datetime,omitempty"`
	StartDatetime             time.Time  `json:"start_datetime"`
	EndDatetime               time.Time  `json:"end_datetime"`
	Platform                  string     `json:"platform"`
	GrazingAngleDegrees       float64    `json:"umbra:grazing_angle_degrees"`
	TargetAzimuthAngleDegrees float64    `json:"umbra:target_azimuth_angle_degrees"`
	ResolutionRange           float64    `json:"sar:resolution_range,omitempty"`
	AzimuthLooks              float64    `json:"sar:looks_azimuth,omitempty"`
}

// ArchiveLink is a STAC link on an archive item.
type ArchiveLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
	Type string `json:"type,omitempty"`
}

// ArchiveItem is a single STAC item from the archive.
type ArchiveItem struct {
	ID         string                `json:"id"`
	Type       string                `json:"type"`
	Collection string                `json:"collection,omitempty"`
	Geometry   *geojson.Geometry     `json:"geometry"`
	Properties ArchiveItemProperties `json:"properties"`
	Links      []ArchiveLink         `json:"links,omitempty"`
}

// SelfHref returns the href of the item's self link, or "".
func (i *ArchiveItem) SelfHref() string {
	for _, l := range i.Links {
		if l.Rel == "self" {
			return l.Href
		}
	}
	return ""
}

// ArchiveItemCollection is the body returned by POST /archive/search.
type ArchiveItemCollection struct {
	Type     string        `json:"type"`
	Features []ArchiveItem `json:"features"`
}
