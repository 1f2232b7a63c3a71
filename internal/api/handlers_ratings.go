// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/platepick/internal/logging"
	"github.com/tomtom215/platepick/internal/metrics"
	"github.com/tomtom215/platepick/internal/models"
)

// RateRequest is the body of POST /api/v1/users/{userID}/ratings.
type RateRequest struct {
	RestaurantID      string   `json:"restaurant_id" validate:"required"`
	Rating            int      `json:"rating" validate:"required,gte=1,lte=5"`
	CuisinePreference *float64 `json:"cuisine_preference,omitempty" validate:"omitempty,gte=-1,lte=1"`
}

// Ratings handles GET /api/v1/users/{userID}/ratings.
func (h *Handler) Ratings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	ratings := h.store.GetRatings(r.Context(), userID)
	respondList(w, ratings, len(ratings), start)
}

// Rating handles GET /api/v1/users/{userID}/ratings/{restaurantID}.
func (h *Handler) Rating(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	rating := h.store.GetRatingForRestaurant(r.Context(), userID, chi.URLParam(r, "restaurantID"))
	if rating == nil {
		respondError(w, http.StatusNotFound, codeNotFound, "Rating not found", nil)
		return
	}

	respondSuccess(w, http.StatusOK, rating, start)
}

// RateRestaurant handles POST /api/v1/users/{userID}/ratings.
//
// The rating replaces any earlier rating of the same restaurant and the
// profile is updated from the restaurant's cuisine. Responds 201 for a first
// rating and 200 for a replacement.
func (h *Handler) RateRestaurant(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req RateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	restaurant, err := h.catalog.Get(req.RestaurantID)
	if err != nil {
		respondError(w, http.StatusNotFound, codeNotFound, "Restaurant not found", nil)
		return
	}

	rating := models.UserRating{
		RestaurantID:      restaurant.ID,
		Rating:            req.Rating,
		Timestamp:         time.Now().UnixMilli(),
		CuisinePreference: req.CuisinePreference,
	}

	result, err := h.store.RateRestaurant(r.Context(), userID, rating, restaurant.Cuisine)
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeStorage, "Failed to save rating", err)
		return
	}

	replacement := result.Previous != nil
	metrics.RecordRating(rating.Rating, replacement)
	logging.Ctx(r.Context()).Info().
		Str("user_id", userID).
		Str("restaurant_id", rating.RestaurantID).
		Int("rating", rating.Rating).
		Bool("replacement", replacement).
		Msg("Rating saved")

	status := http.StatusCreated
	if replacement {
		status = http.StatusOK
	}
	respondSuccess(w, status, models.RatingResult{
		Rating:      rating,
		Previous:    result.Previous,
		Preferences: result.Preferences,
	}, start)
}
