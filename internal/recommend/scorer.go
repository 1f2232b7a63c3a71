// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package recommend

import (
	"math"

	"github.com/tomtom215/platepick/internal/models"
)

// Scoring constants. A 5-star restaurant contributes MaxScore before
// adjustments, and the final score is clamped to [MinScore, MaxScore].
const (
	earthRadiusMiles = 3959.0

	ratingWeight       = 20.0
	cuisineWeight      = 20.0
	pricePenaltyStep   = 5.0
	qualityThreshold   = 4.5
	qualityBonus       = 10.0
	farDistancePenalty = -10.0

	MinScore = 0.0
	MaxScore = 100.0
)

// Distance returns the great-circle distance in miles between two points
// using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceBonus maps a distance in miles to its score adjustment. The bands
// are checked in order and the first match wins.
func DistanceBonus(miles float64) float64 {
	switch {
	case miles < 1:
		return 15
	case miles < 3:
		return 10
	case miles < 5:
		return 5
	case miles > 10:
		return farDistancePenalty
	default:
		return 0
	}
}

// Score computes the suitability of r for a profile, in [0,100].
//
// A nil prefs scores against the zero-state profile. A nil loc skips the
// distance term. Score is pure: identical inputs always produce the same
// output, which keeps stable sorting reproducible.
func Score(r *models.Restaurant, prefs *models.UserPreferences, loc *models.Location) float64 {
	score := r.Rating * ratingWeight

	priceLevelPreference := models.DefaultPriceLevelPreference
	if prefs != nil {
		// Missing cuisines read as 0 from the map.
		score += prefs.CuisinePreferences[r.Cuisine] * cuisineWeight
		priceLevelPreference = prefs.PriceLevelPreference
	}

	if loc != nil {
		score += DistanceBonus(Distance(loc.Latitude, loc.Longitude, r.Latitude, r.Longitude))
	}

	score -= pricePenaltyStep * math.Abs(float64(r.PriceLevel-priceLevelPreference))

	if r.Rating >= qualityThreshold {
		score += qualityBonus
	}

	return math.Max(MinScore, math.Min(MaxScore, score))
}
