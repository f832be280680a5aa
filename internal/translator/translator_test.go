// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package translator

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tomtom215/stapi-canopy/internal/models"
	"github.com/tomtom215/stapi-canopy/internal/models/canopy"
)

var (
	t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 = time.Date(2026, 3, 1, 10, 0, 12, 0, time.UTC)
)

func pointGeometry() *geojson.Geometry {
	return geojson.NewGeometry(orb.Point{-122.42, 37.77})
}

func pointRequest(filter map[string]any) *models.OpportunityRequest {
	return &models.OpportunityRequest{
		ProductID: "umbra_spotlight",
		Datetime:  models.DatetimeInterval{Start: t0, End: t0.Add(24 * time.Hour)},
		Geometry:  pointGeometry(),
		Filter:    filter,
	}
}

func TestArchiveItemToOpportunity(t *testing.T) {
	t.Parallel()

	item := &canopy.ArchiveItem{
		ID:       "item-1",
		Geometry: geojson.NewGeometry(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}),
		Properties: canopy.ArchiveItemProperties{
			StartDatetime:             t0,
			EndDatetime:               t1,
			Platform:                  "Umbra-05",
			GrazingAngleDegrees:       52.5,
			TargetAzimuthAngleDegrees: 118,
		},
		Links: []canopy.ArchiveLink{{Href: "https://api.example/archive/item-1", Rel: "self"}},
	}

	opp := ArchiveItemToOpportunity(item, "umbra_spotlight")

	if opp.Type != models.TypeFeature {
		t.Errorf("Type = %q", opp.Type)
	}
	if opp.Geometry != item.Geometry {
		t.Error("Geometry should be the item geometry")
	}
	p := opp.Properties
	if p.ProductID != "umbra_spotlight" {
		t.Errorf("ProductID = %q", p.ProductID)
	}
	if want := "2026-03-01T10:00:00Z/2026-03-01T10:00:12Z"; p.Datetime != want {
		t.Errorf("Datetime = %q, want %q", p.Datetime, want)
	}
	if p.DurationSeconds == nil || *p.DurationSeconds != 12 {
		t.Errorf("DurationSeconds = %v, want 12", p.DurationSeconds)
	}
	if len(p.GrazingAngleDegrees) != 2 || p.GrazingAngleDegrees[0] != 52.5 || p.GrazingAngleDegrees[1] != 52.5 {
		t.Errorf("GrazingAngleDegrees = %v", p.GrazingAngleDegrees)
	}
	if len(p.TargetAzimuthAngleDegrees) != 2 || p.TargetAzimuthAngleDegrees[0] != 118 {
		t.Errorf("TargetAzimuthAngleDegrees = %v", p.TargetAzimuthAngleDegrees)
	}
	if p.SatelliteID != "Umbra-05" || p.ImagingMode != ImagingModeSpotlightArchive {
		t.Errorf("SatelliteID = %q, ImagingMode = %q", p.SatelliteID, p.ImagingMode)
	}
	if len(opp.Links) != 1 || opp.Links[0].Rel != "via" {
		t.Errorf("Links = %+v", opp.Links)
	}
}

func TestArchiveItemWithoutSelfLink(t *testing.T) {
	t.Parallel()

	opp := ArchiveItemToOpportunity(&canopy.ArchiveItem{
		Properties: canopy.ArchiveItemProperties{StartDatetime: t0, EndDatetime: t1},
	}, "p")
	if len(opp.Links) != 0 {
		t.Errorf("Links = %+v, want none", opp.Links)
	}
}

func TestOpportunityRequestToFeasibilityRequestDefaults(t *testing.T) {
	t.Parallel()

	req := pointRequest(nil)
	got, err := OpportunityRequestToFeasibilityRequest(req)
	if err != nil {
		t.Fatalf("OpportunityRequestToFeasibilityRequest() error = %v", err)
	}

	if got.ImagingMode != canopy.ImagingModeSpotlight {
		t.Errorf("ImagingMode = %q", got.ImagingMode)
	}
	if !got.WindowStartAt.Equal(req.Datetime.Start) || !got.WindowEndAt.Equal(req.Datetime.End) {
		t.Errorf("window = %v/%v", got.WindowStartAt, got.WindowEndAt)
	}
	want := canopy.DefaultSpotlightConstraints(req.Geometry)
	if got.SpotlightConstraints != want {
		t.Errorf("SpotlightConstraints = %+v, want %+v", got.SpotlightConstraints, want)
	}
}

func TestOpportunityRequestToFeasibilityRequestFilter(t *testing.T) {
	t.Parallel()

	grazing := func(op string, args ...any) map[string]any {
		return map[string]any{
			"op":   op,
			"args": append([]any{map[string]any{"property": "grazing_angle_degrees"}}, args...),
		}
	}

	tests := []struct {
		name     string
		filter   map[string]any
		wantMin  float64
		wantMax  float64
		wantSize string
		wantErr  bool
	}{
		{
			name:     "minimum",
			filter:   grazing(">=", 45.0),
			wantMin:  45,
			wantMax:  canopy.DefaultGrazingAngleMaxDegrees,
			wantSize: canopy.SceneSize5x5KM,
		},
		{
			name:     "maximum",
			filter:   grazing("<=", 60.0),
			wantMin:  canopy.DefaultGrazingAngleMinDegrees,
			wantMax:  60,
			wantSize: canopy.SceneSize5x5KM,
		},
		{
			name:     "between",
			filter:   grazing("between", 40.0, 55.0),
			wantMin:  40,
			wantMax:  55,
			wantSize: canopy.SceneSize5x5KM,
		},
		{
			name: "and with scene size",
			filter: map[string]any{
				"op": "and",
				"args": []any{
					grazing(">=", 42.0),
					map[string]any{"op": "=", "args": []any{map[string]any{"property": "scene_size"}, "10x10_KM"}},
				},
			},
			wantMin:  42,
			wantMax:  canopy.DefaultGrazingAngleMaxDegrees,
			wantSize: canopy.SceneSize10x10KM,
		},
		{
			name:     "unknown property ignored",
			filter:   map[string]any{"op": "=", "args": []any{map[string]any{"property": "cloud_cover"}, 0.0}},
			wantMin:  canopy.DefaultGrazingAngleMinDegrees,
			wantMax:  canopy.DefaultGrazingAngleMaxDegrees,
			wantSize: canopy.SceneSize5x5KM,
		},
		{name: "non numeric", filter: grazing(">=", "steep"), wantErr: true},
		{name: "unsupported op", filter: grazing("<", 50.0), wantErr: true},
		{name: "inverted range", filter: grazing("between", 60.0, 45.0), wantErr: true},
		{
			name:    "bad scene size",
			filter:  map[string]any{"op": "=", "args": []any{map[string]any{"property": "scene_size"}, "1x1_KM"}},
			wantErr: true,
		},
		{name: "missing args", filter: map[string]any{"op": ">="}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := OpportunityRequestToFeasibilityRequest(pointRequest(tt.filter))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConstraint) {
					t.Fatalf("error = %v, want ErrInvalidConstraint", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			c := got.SpotlightConstraints
			if c.GrazingAngleMinDegrees != tt.wantMin || c.GrazingAngleMaxDegrees != tt.wantMax {
				t.Errorf("grazing = [%v, %v], want [%v, %v]",
					c.GrazingAngleMinDegrees, c.GrazingAngleMaxDegrees, tt.wantMin, tt.wantMax)
			}
			if c.SceneSize != tt.wantSize {
				t.Errorf("SceneSize = %q, want %q", c.SceneSize, tt.wantSize)
			}
		})
	}
}

func TestOpportunityRequestToFeasibilityRequestRejectsPolygon(t *testing.T) {
	t.Parallel()

	req := pointRequest(nil)
	req.Geometry = geojson.NewGeometry(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})

	_, err := OpportunityRequestToFeasibilityRequest(req)
	if !errors.Is(err, ErrPointRequired) {
		t.Fatalf("error = %v, want ErrPointRequired", err)
	}
	if !strings.Contains(err.Error(), "Polygon") {
		t.Errorf("error %q should name the geometry type", err)
	}
}

func TestFeasibilityResponseToOpportunities(t *testing.T) {
	t.Parallel()

	geom := pointGeometry()
	resp := &canopy.FeasibilityResponse{
		ID:     "f-1",
		Status: canopy.FeasibilityStatusCompleted,
		FeasibilityRequest: canopy.FeasibilityRequest{
			SpotlightConstraints: canopy.DefaultSpotlightConstraints(geom),
		},
		Opportunities: []canopy.FeasibilityOpportunity{
			{WindowStartAt: t0, WindowEndAt: t1, DurationSec: 12, GrazingAngleStartDegrees: 41, GrazingAngleEndDegrees: 48, SatelliteID: "Umbra-04"},
			{WindowStartAt: t0.Add(time.Hour), WindowEndAt: t1.Add(time.Hour), DurationSec: 12},
			{WindowStartAt: t0.Add(2 * time.Hour), WindowEndAt: t1.Add(2 * time.Hour), DurationSec: 12},
		},
	}

	const href = "https://stapi.example/products/umbra_spotlight/order"
	opps := FeasibilityResponseToOpportunities(resp, geom, "umbra_spotlight", href)

	if len(opps) != 3 {
		t.Fatalf("len = %d, want 3", len(opps))
	}
	for i, o := range opps {
		if o.Geometry != geom {
			t.Errorf("[%d] Geometry should be the request geometry", i)
		}
		if o.Properties.ImagingMode != ImagingModeSpotlight {
			t.Errorf("[%d] ImagingMode = %q", i, o.Properties.ImagingMode)
		}
		if len(o.Links) != 1 || o.Links[0].Rel != "create-order" || o.Links[0].Method != "POST" || o.Links[0].Href != href {
			t.Errorf("[%d] Links = %+v", i, o.Links)
		}
	}

	first := opps[0].Properties
	if want := "2026-03-01T10:00:00Z/2026-03-01T10:00:12Z"; first.Datetime != want {
		t.Errorf("Datetime = %q, want %q", first.Datetime, want)
	}
	if first.GrazingAngleDegrees[0] != 41 || first.GrazingAngleDegrees[1] != 48 {
		t.Errorf("GrazingAngleDegrees = %v", first.GrazingAngleDegrees)
	}
	if first.SatelliteID != "Umbra-04" {
		t.Errorf("SatelliteID = %q", first.SatelliteID)
	}

	body, ok := opps[0].Links[0].Body.(map[string]any)
	if !ok || body["datetime"] != first.Datetime || body["product_id"] != "umbra_spotlight" {
		t.Errorf("create-order body = %#v", opps[0].Links[0].Body)
	}
}

func TestFeasibilityResponseToOpportunitiesEmpty(t *testing.T) {
	t.Parallel()

	opps := FeasibilityResponseToOpportunities(&canopy.FeasibilityResponse{}, pointGeometry(), "p", "")
	if opps == nil || len(opps) != 0 {
		t.Errorf("opps = %v, want empty non-nil slice", opps)
	}
}

func TestFeasibilityResponseToOpportunitiesGeometrySource(t *testing.T) {
	t.Parallel()

	requested := pointGeometry()
	echoed := geojson.NewGeometry(orb.Point{10, 20})
	windows := []canopy.FeasibilityOpportunity{{WindowStartAt: t0, WindowEndAt: t1, DurationSec: 12}}

	tests := []struct {
		name      string
		resp      *canopy.FeasibilityResponse
		requested *geojson.Geometry
		want      *geojson.Geometry
	}{
		{
			name:      "no echoed request",
			resp:      &canopy.FeasibilityResponse{ID: "f1", Status: canopy.FeasibilityStatusCompleted, Opportunities: windows},
			requested: requested,
			want:      requested,
		},
		{
			name: "echo differs from request",
			resp: &canopy.FeasibilityResponse{
				ID:                 "f1",
				Status:             canopy.FeasibilityStatusCompleted,
				FeasibilityRequest: canopy.FeasibilityRequest{SpotlightConstraints: canopy.DefaultSpotlightConstraints(echoed)},
				Opportunities:      windows,
			},
			requested: requested,
			want:      requested,
		},
		{
			name: "echo used without request geometry",
			resp: &canopy.FeasibilityResponse{
				ID:                 "f1",
				Status:             canopy.FeasibilityStatusCompleted,
				FeasibilityRequest: canopy.FeasibilityRequest{SpotlightConstraints: canopy.DefaultSpotlightConstraints(echoed)},
				Opportunities:      windows,
			},
			want: echoed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opps := FeasibilityResponseToOpportunities(tt.resp, tt.requested, "umbra_spotlight", "https://stapi.example/order")
			if len(opps) != 1 {
				t.Fatalf("len = %d, want 1", len(opps))
			}
			if opps[0].Geometry != tt.want {
				t.Errorf("Geometry = %v, want %v", opps[0].Geometry, tt.want)
			}
			body, ok := opps[0].Links[0].Body.(map[string]any)
			if !ok || body["geometry"] != tt.want {
				t.Errorf("create-order body geometry = %#v", opps[0].Links[0].Body)
			}
		})
	}
}

func TestOpportunityRequestToTaskRequest(t *testing.T) {
	t.Parallel()

	grazing := 55
	req := &models.OrderRequest{
		OpportunityRequest: *pointRequest(nil),
		OrderParameters: models.OrderParameters{
			SceneSize:           canopy.SceneSize10x10KM,
			GrazingAngleDegrees: &grazing,
			SatelliteIDs:        []string{"Umbra-07"},
			ProductTypes:        []string{"SICD"},
		},
	}

	got, err := OpportunityRequestToTaskRequest(req, TaskDefaults{
		DeliveryConfigID: "7b0a4c34-1d8d-4a6c-9a53-0e7bb3a1d2f1",
	})
	if err != nil {
		t.Fatalf("OpportunityRequestToTaskRequest() error = %v", err)
	}

	suffix, ok := strings.CutPrefix(got.TaskName, TaskNamePrefix)
	if !ok {
		t.Fatalf("TaskName = %q, want prefix %q", got.TaskName, TaskNamePrefix)
	}
	if _, err := uuid.Parse(suffix); err != nil {
		t.Errorf("TaskName suffix %q is not a UUID", suffix)
	}

	c := got.SpotlightConstraints
	if c.SceneSize != canopy.SceneSize10x10KM || c.GrazingAngleMinDegrees != 55 {
		t.Errorf("constraints = %+v", c)
	}
	if got.DeliveryConfigID == nil || *got.DeliveryConfigID != "7b0a4c34-1d8d-4a6c-9a53-0e7bb3a1d2f1" {
		t.Errorf("DeliveryConfigID = %v", got.DeliveryConfigID)
	}
	if got.UserOrderID != nil {
		t.Errorf("UserOrderID = %v, want nil", *got.UserOrderID)
	}
	if len(got.SatelliteIDs) != 1 || got.SatelliteIDs[0] != "Umbra-07" {
		t.Errorf("SatelliteIDs = %v", got.SatelliteIDs)
	}
	if len(got.ProductTypes) != 1 || got.ProductTypes[0] != "SICD" {
		t.Errorf("ProductTypes = %v", got.ProductTypes)
	}

	again, err := OpportunityRequestToTaskRequest(req, TaskDefaults{})
	if err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if again.TaskName == got.TaskName {
		t.Error("task names should be unique per call")
	}
	if again.DeliveryConfigID != nil {
		t.Errorf("DeliveryConfigID = %v, want nil", *again.DeliveryConfigID)
	}
}

func TestOpportunityRequestToTaskRequestDefaultProductTypes(t *testing.T) {
	t.Parallel()

	req := &models.OrderRequest{OpportunityRequest: *pointRequest(nil)}

	got, err := OpportunityRequestToTaskRequest(req, TaskDefaults{})
	if err != nil {
		t.Fatalf("OpportunityRequestToTaskRequest() error = %v", err)
	}
	if !slices.Equal(got.ProductTypes, []string{"GEC", "SICD"}) {
		t.Fatalf("ProductTypes = %v, want [GEC SICD]", got.ProductTypes)
	}

	got.ProductTypes[0] = "SIDD"
	if canopy.DefaultProductTypes[0] != "GEC" {
		t.Error("task request must not alias the package defaults")
	}
}

func TestOpportunityRequestToTaskRequestParameterOverridesDefault(t *testing.T) {
	t.Parallel()

	override := "0c3f4b1e-9a0b-4f0e-8f52-3b6d4f9b1a22"
	req := &models.OrderRequest{
		OpportunityRequest: *pointRequest(nil),
		OrderParameters:    models.OrderParameters{DeliveryConfigID: &override},
	}

	got, err := OpportunityRequestToTaskRequest(req, TaskDefaults{
		DeliveryConfigID: "7b0a4c34-1d8d-4a6c-9a53-0e7bb3a1d2f1",
		UserOrderID:      "po-1138",
	})
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if got.DeliveryConfigID == nil || *got.DeliveryConfigID != override {
		t.Errorf("DeliveryConfigID = %v, want %s", got.DeliveryConfigID, override)
	}
	if got.UserOrderID == nil || *got.UserOrderID != "po-1138" {
		t.Errorf("UserOrderID = %v", got.UserOrderID)
	}
}

func TestOpportunityRequestToTaskRequestRejectsMissingGeometry(t *testing.T) {
	t.Parallel()

	req := &models.OrderRequest{OpportunityRequest: models.OpportunityRequest{
		Datetime: models.DatetimeInterval{Start: t0, End: t1},
	}}
	if _, err := OpportunityRequestToTaskRequest(req, TaskDefaults{}); !errors.Is(err, ErrPointRequired) {
		t.Fatalf("error = %v, want ErrPointRequired", err)
	}
}

func TestTaskResponseToOrder(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("3d5b0c3e-6a42-4a8a-9e1e-8e5f8a3f0b11")
	constraintGeom := pointGeometry()
	resp := &canopy.TaskResponse{
		ID:       id,
		Geometry: geojson.NewGeometry(orb.Point{0, 0}),
		Properties: canopy.TaskResponseProperties{
			SpotlightConstraints: canopy.DefaultSpotlightConstraints(constraintGeom),
			WindowStartAt:        t0,
			WindowEndAt:          t1,
			Status:               "SCHEDULED",
		},
	}

	order := TaskResponseToOrder(resp, "umbra_spotlight", "https://canopy.example/tasks/"+id.String())

	if order.ID != id.String() {
		t.Errorf("ID = %q", order.ID)
	}
	if order.Geometry != constraintGeom {
		t.Error("Geometry should come from the spotlight constraints")
	}
	if order.Properties.Status != "SCHEDULED" || order.Properties.ProductID != "umbra_spotlight" {
		t.Errorf("Properties = %+v", order.Properties)
	}
	if want := "2026-03-01T10:00:00Z/2026-03-01T10:00:12Z"; order.Properties.Datetime != want {
		t.Errorf("Datetime = %q, want %q", order.Properties.Datetime, want)
	}
	if len(order.Links) != 1 || order.Links[0].Rel != "task" {
		t.Errorf("Links = %+v", order.Links)
	}

	resp.Properties.SpotlightConstraints.Geometry = nil
	if got := TaskResponseToOrder(resp, UnknownProductID, ""); got.Geometry != resp.Geometry {
		t.Error("Geometry should fall back to the task geometry")
	}
}
