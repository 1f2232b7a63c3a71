// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package recommend

import (
	"sort"

	"github.com/tomtom215/platepick/internal/models"
)

// RankOptions controls a ranking pass.
type RankOptions struct {
	// Location enables distance scoring and sets Distance on every result.
	Location *models.Location

	// ExcludeRated removes restaurants whose id appears in RatingHistory.
	ExcludeRated bool

	// RatingHistory is only read when ExcludeRated is set.
	RatingHistory []models.UserRating
}

// Rank scores every restaurant and returns them sorted by descending score.
//
// The input slice is never modified: results hold copies. Each restaurant is
// scored once before sorting, and the sort is stable so equal scores keep
// their input order.
func Rank(restaurants []models.Restaurant, prefs *models.UserPreferences, opts RankOptions) []ScoredRestaurant {
	candidates := withDistance(excludeRated(restaurants, opts), opts.Location)

	scored := make([]ScoredRestaurant, len(candidates))
	for i := range candidates {
		scored[i] = ScoredRestaurant{
			Restaurant: candidates[i],
			Score:      Score(&candidates[i], prefs, opts.Location),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Browse orders restaurants without personalization: by ascending distance
// when a location is given, otherwise by descending rating. Scores are still
// computed against prefs so clients can display them.
func Browse(restaurants []models.Restaurant, prefs *models.UserPreferences, loc *models.Location) []ScoredRestaurant {
	candidates := withDistance(restaurants, loc)

	scored := make([]ScoredRestaurant, len(candidates))
	for i := range candidates {
		scored[i] = ScoredRestaurant{
			Restaurant: candidates[i],
			Score:      Score(&candidates[i], prefs, loc),
		}
	}

	if loc != nil {
		sort.SliceStable(scored, func(i, j int) bool {
			return *scored[i].Distance < *scored[j].Distance
		})
	} else {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Rating > scored[j].Rating
		})
	}
	return scored
}

func excludeRated(restaurants []models.Restaurant, opts RankOptions) []models.Restaurant {
	if !opts.ExcludeRated || len(opts.RatingHistory) == 0 {
		return restaurants
	}

	rated := make(map[string]struct{}, len(opts.RatingHistory))
	for _, r := range opts.RatingHistory {
		rated[r.RestaurantID] = struct{}{}
	}

	out := make([]models.Restaurant, 0, len(restaurants))
	for i := range restaurants {
		if _, ok := rated[restaurants[i].ID]; !ok {
			out = append(out, restaurants[i])
		}
	}
	return out
}

// withDistance returns copies of restaurants, annotated with their distance
// from loc when loc is set.
func withDistance(restaurants []models.Restaurant, loc *models.Location) []models.Restaurant {
	out := make([]models.Restaurant, len(restaurants))
	copy(out, restaurants)

	if loc == nil {
		return out
	}
	for i := range out {
		d := Distance(loc.Latitude, loc.Longitude, out[i].Latitude, out[i].Longitude)
		out[i].Distance = &d
	}
	return out
}
