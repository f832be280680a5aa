// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/stapi-canopy/internal/logging"
	"github.com/tomtom215/stapi-canopy/internal/models"
)

// CreateOrder submits a tasking order for the product in the path.
//
// @Summary Create order
// @Description Creates a Canopy task for the requested window and point. Requires a Canopy token.
// @Tags Orders
// @Accept json
// @Produce application/geo+json
// @Param productId path string true "Product ID"
// @Param request body models.OrderRequest true "Order request"
// @Success 201 {object} models.Order
// @Header 201 {string} Location "URL of the created order"
// @Failure 400 {object} models.ErrorResponse "Invalid request, or product cannot be ordered"
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /products/{productId}/order [post]
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if rerr := decodeJSON(w, r, h.maxBodyBytes, &req); rerr != nil {
		rerr.write(w, r)
		return
	}
	if rerr := resolveProductID(&req.OpportunityRequest, chi.URLParam(r, "productId")); rerr != nil {
		rerr.write(w, r)
		return
	}
	if rerr := validateBody(&req.OpportunityRequest, &req); rerr != nil {
		rerr.write(w, r)
		return
	}

	order, err := h.backend.CreateOrder(r.Context(), &req)
	if err != nil {
		respondBackendError(w, r, err)
		return
	}

	location := h.orderURL(order.ID)
	order.Links = append(order.Links, models.Link{Href: location, Rel: "self", Type: contentTypeGeoJSON})

	logging.Ctx(r.Context()).Info().
		Str("order_id", order.ID).
		Str("product_id", req.ProductID).
		Msg("Order created")

	w.Header().Set("Location", location)
	respondGeoJSON(w, http.StatusCreated, &order)
}

// GetOrder returns the order with the given ID.
//
// @Summary Get order
// @Tags Orders
// @Produce application/geo+json
// @Param orderId path string true "Order ID (UUID)"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorResponse "Order ID is not a UUID"
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{orderId} [get]
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := h.backend.GetOrder(r.Context(), orderID)
	if err != nil {
		respondBackendError(w, r, err)
		return
	}

	order.Links = append(order.Links, models.Link{Href: h.orderURL(order.ID), Rel: "self", Type: contentTypeGeoJSON})
	respondGeoJSON(w, http.StatusOK, &order)
}

func (h *Handler) orderURL(id string) string {
	return h.baseURL + "/orders/" + url.PathEscape(id)
}
