// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package catalog

import (
	"github.com/tomtom215/stapi-canopy/internal/models"
	"github.com/tomtom215/stapi-canopy/internal/models/canopy"
)

// Product IDs.
const (
	SpotlightProductID      = "umbra_spotlight"
	ArchiveCatalogProductID = "umbra_archive_catalog"
)

const (
	conformsPoint        = "https://geojson.org/schema/Point.json"
	conformsPolygon      = "https://geojson.org/schema/Polygon.json"
	conformsMultiPolygon = "https://geojson.org/schema/MultiPolygon.json"

	satellitesDocURL = "https://docs.canopy.umbra.space/docs/umbra-satellites"
)

var umbraProvider = models.Provider{
	Name:        "Umbra",
	Description: "Global Omniscience",
	Roles: []models.ProviderRole{
		models.ProviderRoleLicensor,
		models.ProviderRoleProducer,
		models.ProviderRoleProcessor,
		models.ProviderRoleHost,
	},
	URL: "https://umbra.space",
}

var canopyDocsLink = models.Link{
	Href:  "https://docs.canopy.umbra.space",
	Rel:   "documentation",
	Type:  "docs",
	Title: "Canopy Documentation",
}

func spotlightVariant() *Variant {
	return &Variant{
		Kind:          KindSpotlight,
		Operations:    OpSearchArchive | OpSearchFeasibility | OpOrder,
		GeometryTypes: []string{"Point"},
		Product: models.Product{
			Type:        models.TypeProduct,
			ConformsTo:  []string{conformsPoint},
			ID:          SpotlightProductID,
			Title:       "Umbra Spotlight Task",
			Description: "Spotlight images served by creating new Orders or retrieving existing images from the archive.",
			Keywords:    []string{"sar", "radar", "umbra", "spotlight"},
			License:     "CC-BY-4.0",
			Providers:   []models.Provider{umbraProvider},
			Links:       []models.Link{canopyDocsLink},
			Parameters:  spotlightParameters(),
		},
	}
}

func archiveCatalogVariant() *Variant {
	return &Variant{
		Kind:          KindArchiveCatalog,
		Operations:    OpSearchArchive,
		GeometryTypes: []string{"Point", "Polygon", "MultiPolygon"},
		Product: models.Product{
			Type:        models.TypeProduct,
			ConformsTo:  []string{conformsPolygon, conformsMultiPolygon},
			ID:          ArchiveCatalogProductID,
			Title:       "Umbra Archive Catalog",
			Description: "Umbra SAR Images served by the Archive Catalog.",
			Keywords:    []string{"sar", "radar", "umbra", "catalog", "archive"},
			License:     "CC-BY-4.0",
			Providers:   []models.Provider{umbraProvider},
			Links:       []models.Link{canopyDocsLink},
			Parameters:  archiveParameters(),
		},
	}
}

// spotlightParameters is the JSON schema of models.OrderParameters.
func spotlightParameters() map[string]any {
	return objectSchema("UmbraSpotlightParameters", "Umbra Spotlight Parameters JSON Schema", map[string]any{
		"sceneSize": map[string]any{
			"title":       "Scene Size",
			"description": "The scene size of the Spotlight image.",
			"type":        "string",
			"enum":        canopy.SceneSizes,
			"default":     canopy.SceneSize5x5KM,
		},
		"grazingAngleDegrees": map[string]any{
			"title": "Grazing Angle in Degrees",
			"description": "The minimum angle between the local tangent plane at the target location " +
				"and the line of sight vector between the satellite and the target.",
			"type":    "integer",
			"default": 45,
			"minimum": 40,
			"maximum": 70,
		},
		"satelliteIds": map[string]any{
			"title":       "Satellite ID",
			"description": "The satellites to consider for this Opportunity. See " + satellitesDocURL,
			"type":        "array",
			"items":       map[string]any{"type": "string", "enum": canopy.SatelliteIDs},
			"default":     canopy.SatelliteIDs,
		},
		"deliveryConfigId": map[string]any{
			"title":       "Delivery Config ID",
			"description": "https://docs.canopy.umbra.space/docs/delivery-configs",
			"anyOf": []any{
				map[string]any{"type": "string", "format": "uuid"},
				map[string]any{"type": "null"},
			},
			"default": nil,
		},
		"productTypes": map[string]any{
			"title":       "Product Types",
			"description": "https://docs.canopy.umbra.space/docs/delivered-product-types",
			"type":        "array",
			"items":       map[string]any{"type": "string", "enum": canopy.ProductTypes},
			"default":     canopy.DefaultProductTypes,
		},
	})
}

func archiveParameters() map[string]any {
	return objectSchema("UmbraArchiveParameters", "Umbra Archive Parameters JSON Schema", map[string]any{
		"sar:resolution_range": map[string]any{
			"title":   "Range Resolution in Meters",
			"type":    "number",
			"default": canopy.DefaultRangeResolutionMinMeters,
			"minimum": canopy.MinRangeResolutionMeters,
			"maximum": canopy.MaxRangeResolutionMeters,
		},
		"sar:azimuth_looks": map[string]any{
			"title":   "Azimuth Looks",
			"type":    "integer",
			"default": 1,
			"minimum": 1,
			"maximum": 8,
		},
		"platform": map[string]any{
			"title":       "Satellite ID",
			"description": "The satellites to consider for this Opportunity. See " + satellitesDocURL,
			"type":        "array",
			"items":       map[string]any{"type": "string", "enum": canopy.SatelliteIDs},
			"default":     canopy.SatelliteIDs,
		},
	})
}

func objectSchema(title, description string, properties map[string]any) map[string]any {
	return map[string]any{
		"title":       title,
		"description": description,
		"type":        "object",
		"properties":  properties,
	}
}
