// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/platepick/internal/logging"
	"github.com/tomtom215/platepick/internal/metrics"
	"github.com/tomtom215/platepick/internal/models"
	"github.com/tomtom215/platepick/internal/recommend"
)

// modeFeed picks diverse or browse from the user's rating count.
const modeFeed = "feed"

// recommendTimeout bounds a single recommendation request.
const recommendTimeout = 10 * time.Second

// RecommendationsQuery holds the validated query of the recommendations endpoint.
type RecommendationsQuery struct {
	Mode         string   `json:"mode" validate:"omitempty,oneof=diverse ranked browse feed"`
	Count        int      `json:"count" validate:"gte=0"`
	Lat          *float64 `json:"lat" validate:"omitempty,latitude"`
	Lon          *float64 `json:"lon" validate:"omitempty,longitude"`
	ExcludeRated bool     `json:"exclude_rated"`
}

// parseRecommendationsQuery reads and validates the query string.
func parseRecommendationsQuery(r *http.Request) (RecommendationsQuery, *models.APIError) {
	var q RecommendationsQuery
	var err error

	q.Mode = r.URL.Query().Get("mode")
	if q.Count, err = parseOptionalInt(r, "count", 0); err != nil {
		return q, &models.APIError{Code: codeValidation, Message: err.Error()}
	}
	if q.Lat, err = parseOptionalFloat(r, "lat"); err != nil {
		return q, &models.APIError{Code: codeValidation, Message: err.Error()}
	}
	if q.Lon, err = parseOptionalFloat(r, "lon"); err != nil {
		return q, &models.APIError{Code: codeValidation, Message: err.Error()}
	}
	if q.ExcludeRated, err = parseOptionalBool(r, "exclude_rated"); err != nil {
		return q, &models.APIError{Code: codeValidation, Message: err.Error()}
	}

	if apiErr := validateRequest(&q); apiErr != nil {
		return q, apiErr
	}
	if (q.Lat == nil) != (q.Lon == nil) {
		return q, &models.APIError{Code: codeValidation, Message: "lat and lon must be supplied together"}
	}
	return q, nil
}

// location returns the query position, nil when none was supplied.
func (q RecommendationsQuery) location() *models.Location {
	if q.Lat == nil || q.Lon == nil {
		return nil
	}
	return &models.Location{Latitude: *q.Lat, Longitude: *q.Lon}
}

// Recommendations handles GET /api/v1/users/{userID}/recommendations.
//
// Query parameters:
//   - mode: diverse (default), ranked, browse or feed
//   - lat, lon: user position; enables distance scoring and annotation
//   - count: number of results (engine default when 0, capped at the engine maximum)
//   - exclude_rated: drop restaurants the user has already rated
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	q, apiErr := parseRecommendationsQuery(r)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), recommendTimeout)
	defer cancel()

	prefs := h.store.GetPreferences(ctx, userID)
	req := recommend.Request{
		UserID:        userID,
		Restaurants:   h.catalog.All(),
		Preferences:   &prefs,
		Location:      q.location(),
		ExcludeRated:  q.ExcludeRated,
		RatingHistory: h.store.GetRatings(ctx, userID),
		K:             q.Count,
		RequestID:     logging.RequestIDFromContext(r.Context()),
	}

	modeLabel := q.Mode
	if modeLabel == "" {
		modeLabel = recommend.ModeDiverse.String()
	}

	start := time.Now()
	resp, err := h.recommend(ctx, req, q.Mode)
	returned := 0
	if resp != nil {
		returned = len(resp.Items)
	}
	metrics.RecordRecommendation(modeLabel, time.Since(start), returned, err)

	if err != nil {
		respondError(w, http.StatusInternalServerError, codeRecommend, "Failed to generate recommendations", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.RecommendationsResponse{
			Mode:            resp.Metadata.Mode,
			Restaurants:     resp.Items,
			TotalCandidates: resp.TotalCandidates,
			Personalized:    resp.Metadata.Personalized,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: resp.Metadata.LatencyMS,
			Count:       &returned,
		},
	})
}

// recommend dispatches to Feed or Recommend. mode has already been validated.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (h *Handler) recommend(ctx context.Context, req recommend.Request, mode string) (*recommend.Response, error) {
	if mode == modeFeed {
		return h.engine.Feed(ctx, req)
	}
	m, err := recommend.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	req.Mode = m
	return h.engine.Recommend(ctx, req)
}
