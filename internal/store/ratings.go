// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package store

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/platepick/internal/models"
)

// GetRatings returns the user's ratings in the order they were first made.
// It returns an empty slice when nothing is stored or the read fails.
func (s *Store) GetRatings(ctx context.Context, userID string) []models.UserRating {
	var ratings []models.UserRating
	if !s.readOrDefault("get_ratings", userID, slotRatings, &ratings) || ratings == nil {
		return []models.UserRating{}
	}
	return ratings
}

// GetRatingForRestaurant returns the user's rating of one restaurant, or nil.
func (s *Store) GetRatingForRestaurant(ctx context.Context, userID, restaurantID string) *models.UserRating {
	for _, r := range s.GetRatings(ctx, userID) {
		if r.RestaurantID == restaurantID {
			rating := r
			return &rating
		}
	}
	return nil
}

// SaveRating stores rating, replacing any earlier rating of the same
// restaurant in place. It returns the replaced rating, or nil for a first
// rating.
//
//nolint:gocritic // hugeParam: rating passed by value, stored as a copy
func (s *Store) SaveRating(ctx context.Context, userID string, rating models.UserRating) (*models.UserRating, error) {
	start := time.Now()
	if rating.Timestamp == 0 {
		rating.Timestamp = time.Now().UnixMilli()
	}

	var previous *models.UserRating
	err := s.update(ctx, userID, func(txn *badger.Txn) error {
		previous = nil
		key := slotKey(userID, slotRatings)

		var ratings []models.UserRating
		if _, err := readSlot(txn, key, &ratings); err != nil {
			// A corrupt slot is replaced rather than blocking new ratings.
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("discarding unreadable ratings")
			ratings = nil
		}

		replaced := false
		for i := range ratings {
			if ratings[i].RestaurantID == rating.RestaurantID {
				old := ratings[i]
				previous = &old
				ratings[i] = rating
				replaced = true
				break
			}
		}
		if !replaced {
			ratings = append(ratings, rating)
		}

		return writeSlot(txn, key, ratings)
	})
	s.recordWrite("save_rating", start, err)
	if err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID).
			Str("restaurant_id", rating.RestaurantID).
			Msg("failed to save rating")
		return nil, err
	}

	return previous, nil
}
