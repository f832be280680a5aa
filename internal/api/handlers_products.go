// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/stapi-canopy/internal/models"
)

// Products lists the offered products.
//
// @Summary List products
// @Description Returns every product this backend offers, with the JSON schema of its order parameters.
// @Tags Products
// @Produce json
// @Success 200 {object} models.ProductCollection
// @Router /products [get]
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	products := h.backend.Products(r.Context())
	if products == nil {
		products = []models.Product{}
	}

	respondJSON(w, http.StatusOK, &models.ProductCollection{
		Type:     models.TypeProductCollection,
		Products: products,
		Links: []models.Link{
			{Href: h.baseURL + "/products", Rel: "self", Type: contentTypeJSON},
		},
	})
}

// Product returns one product.
//
// @Summary Get product
// @Tags Products
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse "Unknown product"
// @Router /products/{productId} [get]
func (h *Handler) Product(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	product, err := h.backend.Product(r.Context(), productID)
	if err != nil {
		respondBackendError(w, r, err)
		return
	}

	product.Links = append(product.Links[:len(product.Links):len(product.Links)],
		models.Link{Href: h.baseURL + "/products/" + url.PathEscape(productID), Rel: "self", Type: contentTypeJSON},
		models.Link{Href: h.baseURL + "/products/" + url.PathEscape(productID) + "/opportunities", Rel: "opportunities", Type: contentTypeJSON, Method: http.MethodPost},
	)
	respondJSON(w, http.StatusOK, &product)
}
