// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/stapi-canopy/internal/models"
)

// SearchProductOpportunities searches opportunities for the product in the
// path. A product_id in the body is optional but must match.
//
// @Summary Search opportunities for a product
// @Description Splits the datetime window at the current time. The past part is answered from the Canopy archive, the future part by a Canopy feasibility analysis, which requires a Canopy token.
// @Tags Opportunities
// @Accept json
// @Produce application/geo+json
// @Param productId path string true "Product ID"
// @Param request body models.OpportunityRequest true "Opportunity search"
// @Param Authorization header string false "Bearer token forwarded to Canopy when forwarding is enabled"
// @Success 200 {object} models.OpportunityCollection
// @Failure 400 {object} models.ErrorResponse "Invalid request or non-point geometry"
// @Failure 401 {object} models.ErrorResponse "Missing, expired or rejected Canopy token"
// @Failure 404 {object} models.ErrorResponse "Unknown product"
// @Failure 504 {object} models.ErrorResponse "Feasibility did not complete in time"
// @Router /products/{productId}/opportunities [post]
func (h *Handler) SearchProductOpportunities(w http.ResponseWriter, r *http.Request) {
	h.searchOpportunities(w, r, chi.URLParam(r, "productId"))
}

// SearchOpportunities searches opportunities for the product named in the
// body.
//
// @Summary Search opportunities
// @Tags Opportunities
// @Accept json
// @Produce application/geo+json
// @Param request body models.OpportunityRequest true "Opportunity search with product_id"
// @Success 200 {object} models.OpportunityCollection
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 504 {object} models.ErrorResponse
// @Router /opportunities [post]
func (h *Handler) SearchOpportunities(w http.ResponseWriter, r *http.Request) {
	h.searchOpportunities(w, r, "")
}

func (h *Handler) searchOpportunities(w http.ResponseWriter, r *http.Request, pathProductID string) {
	var req models.OpportunityRequest
	if rerr := decodeJSON(w, r, h.maxBodyBytes, &req); rerr != nil {
		rerr.write(w, r)
		return
	}
	if rerr := resolveProductID(&req, pathProductID); rerr != nil {
		rerr.write(w, r)
		return
	}
	if rerr := validateBody(&req, &req); rerr != nil {
		rerr.write(w, r)
		return
	}

	opportunities, err := h.backend.SearchOpportunities(r.Context(), &req)
	if err != nil {
		respondBackendError(w, r, err)
		return
	}

	respondGeoJSON(w, http.StatusOK, models.NewOpportunityCollection(opportunities))
}
