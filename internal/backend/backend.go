// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

// Package backend implements the STAPI operations on top of a tasking
// vendor.
//
// Backend is the vendor-neutral contract the HTTP layer calls. CanopyBackend
// implements it for Umbra Canopy: it resolves the product variant, splits
// opportunity searches into archive and feasibility sub-queries, and maps
// vendor failures onto Error kinds. All outbound HTTP lives behind Vendor.
package backend

import (
	"context"

	"github.com/tomtom215/stapi-canopy/internal/canopy"
	"github.com/tomtom215/stapi-canopy/internal/models"
)

// Backend is the vendor-neutral STAPI contract. Every failure is an *Error.
type Backend interface {
	// Products returns the enabled product descriptors.
	Products(ctx context.Context) []models.Product

	// Product returns one product descriptor.
	Product(ctx context.Context, productID string) (models.Product, error)

	// SearchOpportunities returns archive opportunities followed by
	// feasibility opportunities for the request window.
	SearchOpportunities(ctx context.Context, req *models.OpportunityRequest) ([]models.Opportunity, error)

	// CreateOrder submits a tasking order.
	CreateOrder(ctx context.Context, req *models.OrderRequest) (models.Order, error)

	// GetOrder fetches an order by ID.
	GetOrder(ctx context.Context, orderID string) (models.Order, error)
}

// Vendor is the outbound client CanopyBackend drives.
type Vendor interface {
	GetOpportunitiesFromArchive(ctx context.Context, req *models.OpportunityRequest) ([]models.Opportunity, error)
	GetOpportunitiesFromFeasibility(ctx context.Context, req *models.OpportunityRequest, orderHref string) ([]models.Opportunity, error)
	CreateOrderFromOpportunityRequest(ctx context.Context, req *models.OrderRequest) (models.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (models.Order, error)
}

var (
	_ Vendor  = (*canopy.Client)(nil)
	_ Backend = (*CanopyBackend)(nil)
)
