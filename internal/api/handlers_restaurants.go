// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// Restaurants handles GET /api/v1/restaurants.
// The optional cuisine query parameter filters case-insensitively.
func (h *Handler) Restaurants(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	restaurants := h.catalog.All()
	if cuisine := strings.TrimSpace(r.URL.Query().Get("cuisine")); cuisine != "" {
		restaurants = h.catalog.ByCuisine(cuisine)
	}

	respondList(w, restaurants, len(restaurants), start)
}

// Restaurant handles GET /api/v1/restaurants/{id}.
func (h *Handler) Restaurant(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := chi.URLParam(r, "id")
	restaurant, err := h.catalog.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, codeNotFound, "Restaurant not found", nil)
		return
	}

	respondSuccess(w, http.StatusOK, restaurant, start)
}

// Cuisines handles GET /api/v1/cuisines.
func (h *Handler) Cuisines(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	cuisines := h.catalog.Cuisines()
	respondList(w, cuisines, len(cuisines), start)
}
