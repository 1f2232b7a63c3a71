// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package recommend

import (
	"sort"

	"github.com/tomtom215/platepick/internal/models"
)

// neutralRating maps to an affinity weight of 0.
const neutralRating = 3.0

// RatingWeight maps a 1..5 star rating onto [-1,1]: 1 → -1, 3 → 0, 5 → +1.
func RatingWeight(rating int) float64 {
	return (float64(rating) - neutralRating) / 2
}

// ApplyRating folds a rating into profile and returns the updated copy.
// profile itself is not modified.
//
// The cuisine affinity blends halfway toward the rating's weight on every
// call, including re-ratings.
//
// previous is the rating this one replaces, or nil for a first rating of the
// restaurant. A first rating adds to the running average and increments
// TotalRatings. A replacement swaps the old value for the new one inside the
// average and leaves TotalRatings unchanged, so the average stays the mean
// of the user's current ratings.
//
// A nil profile is treated as the zero state. PriceLevelPreference is never
// changed here.
func ApplyRating(profile *models.UserPreferences, rating models.UserRating, cuisine string, previous *models.UserRating) models.UserPreferences {
	updated := profile.Clone()

	current := updated.CuisinePreferences[cuisine]
	updated.CuisinePreferences[cuisine] = (current + RatingWeight(rating.Rating)) / 2

	n := float64(updated.TotalRatings)
	switch {
	case previous == nil || updated.TotalRatings == 0:
		updated.AverageRating = (updated.AverageRating*n + float64(rating.Rating)) / (n + 1)
		updated.TotalRatings++
	default:
		updated.AverageRating = (updated.AverageRating*n - float64(previous.Rating) + float64(rating.Rating)) / n
	}

	return updated
}

// TopCuisines returns up to n cuisines by descending affinity. Ties are
// ordered by name so the result is deterministic.
func TopCuisines(prefs *models.UserPreferences, n int) []models.CuisineAffinity {
	if prefs == nil || n <= 0 {
		return []models.CuisineAffinity{}
	}

	out := make([]models.CuisineAffinity, 0, len(prefs.CuisinePreferences))
	for cuisine, affinity := range prefs.CuisinePreferences {
		out = append(out, models.CuisineAffinity{Cuisine: cuisine, Affinity: affinity})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Affinity != out[j].Affinity {
			return out[i].Affinity > out[j].Affinity
		}
		return out[i].Cuisine < out[j].Cuisine
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}
