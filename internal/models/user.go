// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package models

// DefaultPriceLevelPreference is the price level of a fresh profile. The
// rating flow never changes it.
const DefaultPriceLevelPreference = 2

// UserRating is one user's rating of one restaurant. A user holds at most
// one rating per restaurant; a new rating replaces the old one regardless
// of timestamps.
type UserRating struct {
	RestaurantID string `json:"restaurant_id" validate:"required"`
	Rating       int    `json:"rating" validate:"gte=1,lte=5"`
	// Timestamp is Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
	// CuisinePreference is an optional explicit like/dislike in [-1,1].
	// It is stored but not used by scoring.
	CuisinePreference *float64 `json:"cuisine_preference,omitempty" validate:"omitempty,gte=-1,lte=1"`
}

// UserList is a named saved list. RestaurantIDs never holds duplicates.
type UserList struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	RestaurantIDs []string `json:"restaurant_ids"`
	// CreatedAt is Unix milliseconds.
	CreatedAt int64 `json:"created_at"`
}

// Contains reports whether restaurantID is already on the list.
func (l *UserList) Contains(restaurantID string) bool {
	for _, id := range l.RestaurantIDs {
		if id == restaurantID {
			return true
		}
	}
	return false
}

// UserPreferences is the aggregate profile learned from a user's ratings.
type UserPreferences struct {
	// CuisinePreferences maps cuisine name to an affinity in [-1,1].
	CuisinePreferences   map[string]float64 `json:"cuisine_preferences"`
	PriceLevelPreference int                `json:"price_level_preference"`
	AverageRating        float64            `json:"average_rating"`
	TotalRatings         int                `json:"total_ratings"`
}

// NewUserPreferences returns the zero-state profile.
func NewUserPreferences() UserPreferences {
	return UserPreferences{
		CuisinePreferences:   map[string]float64{},
		PriceLevelPreference: DefaultPriceLevelPreference,
		AverageRating:        0,
		TotalRatings:         0,
	}
}

// Clone returns a deep copy. A nil receiver yields the zero state.
func (p *UserPreferences) Clone() UserPreferences {
	if p == nil {
		return NewUserPreferences()
	}
	out := *p
	out.CuisinePreferences = make(map[string]float64, len(p.CuisinePreferences))
	for k, v := range p.CuisinePreferences {
		out.CuisinePreferences[k] = v
	}
	return out
}

// CuisineAffinity is a single entry of a profile's cuisine map.
type CuisineAffinity struct {
	Cuisine  string  `json:"cuisine"`
	Affinity float64 `json:"affinity"`
}
