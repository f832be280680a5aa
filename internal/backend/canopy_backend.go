// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package backend

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/tomtom215/stapi-canopy/internal/canopy"
	"github.com/tomtom215/stapi-canopy/internal/catalog"
	"github.com/tomtom215/stapi-canopy/internal/config"
	"github.com/tomtom215/stapi-canopy/internal/logging"
	"github.com/tomtom215/stapi-canopy/internal/models"
	"github.com/tomtom215/stapi-canopy/internal/translator"
)

// Caller-facing messages.
const (
	msgArchiveFailed      = "unable to retrieve opportunities from archive"
	msgFeasibilityFailed  = "unable to retrieve opportunities from feasibility"
	msgOrderFailed        = "unable to create order"
	msgGetOrderFailed     = "unable to retrieve order"
	msgNotImplemented     = "Not Yet Implemented"
	msgFeasibilityTimeout = "feasibility request did not complete in time"
	msgVendorRejected     = "Canopy rejected the authorization token"
)

// CanopyBackend implements Backend against Umbra Canopy.
type CanopyBackend struct {
	catalog *catalog.Catalog
	vendor  Vendor
	baseURL string
	now     func() time.Time
}

// Option customizes a CanopyBackend.
type Option func(*CanopyBackend)

// WithClock sets the clock used to split search windows.
func WithClock(now func() time.Time) Option {
	return func(b *CanopyBackend) {
		b.now = now
	}
}

// NewCanopyBackend creates the Canopy backend. cfg.Server supplies the
// public base URL used in create-order links.
func NewCanopyBackend(cfg *config.Config, cat *catalog.Catalog, vendor Vendor, opts ...Option) *CanopyBackend {
	b := &CanopyBackend{
		catalog: cat,
		vendor:  vendor,
		baseURL: cfg.Server.BaseURL(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Products returns the enabled product descriptors.
func (b *CanopyBackend) Products(_ context.Context) []models.Product {
	return b.catalog.Products()
}

// Product returns the descriptor for productID.
func (b *CanopyBackend) Product(_ context.Context, productID string) (models.Product, error) {
	v, err := b.lookup(productID)
	if err != nil {
		return models.Product{}, err
	}
	return v.Product, nil
}

// SearchOpportunities splits the request window at now: the past part is
// searched in the archive, the future part through a feasibility analysis.
// The two run one after the other and archive results come first. Results
// are not de-duplicated.
func (b *CanopyBackend) SearchOpportunities(ctx context.Context, req *models.OpportunityRequest) ([]models.Opportunity, error) {
	variant, err := b.lookup(req.ProductID)
	if err != nil {
		return nil, err
	}
	if err := checkGeometry(variant, req); err != nil {
		return nil, err
	}

	past, future := req.Datetime.SplitAt(b.now().UTC())
	if variant.Kind == catalog.KindArchiveCatalog {
		whole := req.Datetime
		past, future = &whole, nil
	}

	log := logging.Ctx(ctx)
	opportunities := make([]models.Opportunity, 0)

	if past != nil && variant.Supports(catalog.OpSearchArchive) {
		sub := *req
		sub.Datetime = *past

		found, err := b.vendor.GetOpportunitiesFromArchive(ctx, &sub)
		if err != nil {
			logging.CtxErr(ctx, err).
				Str("product_id", req.ProductID).
				Str("window", past.String()).
				Msg("Archive search failed")
			return nil, newError(KindInternal, msgArchiveFailed, err)
		}
		opportunities = append(opportunities, found...)
	}

	if future != nil && variant.Supports(catalog.OpSearchFeasibility) {
		sub := *req
		sub.Datetime = *future

		found, err := b.vendor.GetOpportunitiesFromFeasibility(ctx, &sub, b.orderHref(req.ProductID))
		if err != nil {
			logging.CtxErr(ctx, err).
				Str("product_id", req.ProductID).
				Str("window", future.String()).
				Msg("Feasibility search failed")
			return nil, feasibilityError(err)
		}
		opportunities = append(opportunities, found...)
	}

	log.Debug().
		Str("product_id", req.ProductID).
		Bool("archive", past != nil).
		Bool("feasibility", future != nil).
		Int("opportunities", len(opportunities)).
		Msg("Opportunity search completed")

	return opportunities, nil
}

// CreateOrder submits a Canopy task for the order request.
func (b *CanopyBackend) CreateOrder(ctx context.Context, req *models.OrderRequest) (models.Order, error) {
	variant, err := b.lookup(req.ProductID)
	if err != nil {
		return models.Order{}, err
	}
	if !variant.Supports(catalog.OpOrder) {
		return models.Order{}, newError(KindNotImplemented, msgNotImplemented, nil)
	}
	if err := checkGeometry(variant, &req.OpportunityRequest); err != nil {
		return models.Order{}, err
	}

	order, err := b.vendor.CreateOrderFromOpportunityRequest(ctx, req)
	if err != nil {
		logging.CtxErr(ctx, err).Str("product_id", req.ProductID).Msg("Order creation failed")
		return models.Order{}, vendorError(err, msgOrderFailed)
	}
	return order, nil
}

// GetOrder fetches the Canopy task behind orderID.
func (b *CanopyBackend) GetOrder(ctx context.Context, orderID string) (models.Order, error) {
	order, err := b.vendor.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, canopy.ErrInvalidOrderID) {
			return models.Order{}, newError(KindValidation, fmt.Sprintf("invalid order id %q: must be a UUID", orderID), err)
		}
		if errors.Is(err, canopy.ErrNotFound) {
			return models.Order{}, newError(KindNotFound, fmt.Sprintf("order %s not found", orderID), err)
		}
		logging.CtxErr(ctx, err).Str("order_id", orderID).Msg("Order lookup failed")
		return models.Order{}, vendorError(err, msgGetOrderFailed)
	}
	return order, nil
}

func (b *CanopyBackend) lookup(productID string) (*catalog.Variant, error) {
	v, ok := b.catalog.Lookup(productID)
	if !ok {
		return nil, newError(KindNotFound, "No available products matching id "+productID, nil)
	}
	return v, nil
}

func (b *CanopyBackend) orderHref(productID string) string {
	return b.baseURL + "/products/" + url.PathEscape(productID) + "/order"
}

// checkGeometry rejects geometries the variant cannot serve before any
// vendor call.
func checkGeometry(v *catalog.Variant, req *models.OpportunityRequest) error {
	geometryType := req.GeometryType()
	if geometryType == "" {
		return newError(KindValidation, "geometry is required", nil)
	}
	if !v.AcceptsGeometry(geometryType) {
		return newError(KindValidation,
			fmt.Sprintf("geometry type %s is not supported by product %s", geometryType, v.Product.ID), nil)
	}
	return nil
}

func feasibilityError(err error) *Error {
	switch {
	case errors.Is(err, canopy.ErrFeasibilityTimeout), errors.Is(err, context.DeadlineExceeded):
		return newError(KindTimeout, msgFeasibilityTimeout, err)
	default:
		return vendorError(err, msgFeasibilityFailed)
	}
}

// vendorError maps errors shared by every vendor operation. Anything
// unrecognized becomes KindInternal with fallback as the message.
func vendorError(err error, fallback string) *Error {
	var authErr *canopy.AuthorizationError
	switch {
	case errors.As(err, &authErr):
		return newError(KindUnauthorized, authErr.Message, err)
	case errors.Is(err, canopy.ErrUnauthorized):
		return newError(KindUnauthorized, msgVendorRejected, err)
	case errors.Is(err, translator.ErrPointRequired), errors.Is(err, translator.ErrInvalidConstraint):
		return newError(KindValidation, err.Error(), err)
	default:
		return newError(KindInternal, fallback, err)
	}
}
