// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/platepick/internal/logging"
	"github.com/tomtom215/platepick/internal/models"
	"github.com/tomtom215/platepick/internal/recommend"
)

// topCuisineCount is how many cuisines the profile view highlights.
const topCuisineCount = 5

// Preferences handles GET /api/v1/users/{userID}/preferences.
func (h *Handler) Preferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	prefs := h.store.GetPreferences(r.Context(), userID)
	lists := h.store.GetLists(r.Context(), userID)

	respondSuccess(w, http.StatusOK, models.PreferencesResponse{
		Preferences: prefs,
		TopCuisines: recommend.TopCuisines(&prefs, topCuisineCount),
		ListCount:   len(lists),
	}, start)
}

// ClearData handles DELETE /api/v1/users/{userID}/data, removing the user's
// ratings, lists and profile in one transaction.
func (h *Handler) ClearData(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	if err := h.store.ClearAll(r.Context(), userID); err != nil {
		respondError(w, http.StatusInternalServerError, codeStorage, "Failed to clear user data", err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("user_id", userID).Msg("User data cleared")
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"user_id": userID,
		"cleared": true,
	}, start)
}
