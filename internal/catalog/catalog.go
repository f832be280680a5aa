// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

// Package catalog holds the closed set of product variants this service
// offers. Each variant is keyed by product ID and carries its STAPI product
// descriptor, the geometry types it accepts and the operations it supports,
// so callers ask the variant instead of comparing product IDs.
//
// The catalog is built once at startup and never mutated.
package catalog

import (
	"slices"

	"github.com/tomtom215/stapi-canopy/internal/config"
	"github.com/tomtom215/stapi-canopy/internal/models"
)

// Kind tags a product variant.
type Kind int

const (
	// KindSpotlight is new spotlight tasking, searched through the archive
	// for past windows and feasibility for future windows.
	KindSpotlight Kind = iota + 1

	// KindArchiveCatalog is archive imagery only; it cannot be ordered.
	KindArchiveCatalog
)

// String returns the variant name used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindSpotlight:
		return "spotlight"
	case KindArchiveCatalog:
		return "archive_catalog"
	default:
		return "unknown"
	}
}

// Operation is a set of backend operations a variant supports.
type Operation uint8

const (
	OpSearchArchive Operation = 1 << iota
	OpSearchFeasibility
	OpOrder
)

// Variant is one offered product.
type Variant struct {
	Kind          Kind
	Product       models.Product
	Operations    Operation
	GeometryTypes []string
}

// Supports reports whether every operation in op is offered.
func (v *Variant) Supports(op Operation) bool {
	return v.Operations&op == op
}

// AcceptsGeometry reports whether the GeoJSON geometry type is accepted.
func (v *Variant) AcceptsGeometry(geometryType string) bool {
	return slices.Contains(v.GeometryTypes, geometryType)
}

// Catalog is the immutable set of enabled variants.
type Catalog struct {
	variants []*Variant
	byID     map[string]*Variant
}

// New builds the catalog. The spotlight product is always offered; the
// archive catalog product only when enabled in cfg.
func New(cfg config.CatalogConfig) *Catalog {
	variants := []*Variant{spotlightVariant()}
	if cfg.ArchiveCatalogEnabled {
		variants = append(variants, archiveCatalogVariant())
	}
	return newCatalog(variants...)
}

func newCatalog(variants ...*Variant) *Catalog {
	c := &Catalog{
		variants: variants,
		byID:     make(map[string]*Variant, len(variants)),
	}
	for _, v := range variants {
		c.byID[v.Product.ID] = v
	}
	return c
}

// Products returns the descriptors of all enabled variants, in catalog order.
// The returned products share their parameter schemas with the catalog and
// must be treated as read-only.
func (c *Catalog) Products() []models.Product {
	products := make([]models.Product, 0, len(c.variants))
	for _, v := range c.variants {
		products = append(products, v.Product)
	}
	return products
}

// Lookup finds the variant for a product ID.
func (c *Catalog) Lookup(productID string) (*Variant, bool) {
	v, ok := c.byID[productID]
	return v, ok
}
