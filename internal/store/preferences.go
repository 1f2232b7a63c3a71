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
	"github.com/tomtom215/platepick/internal/recommend"
)

// GetPreferences returns the user's profile, or the zero-state profile when
// nothing is stored or the read fails.
func (s *Store) GetPreferences(ctx context.Context, userID string) models.UserPreferences {
	var prefs models.UserPreferences
	if !s.readOrDefault("get_preferences", userID, slotPreferences, &prefs) {
		return models.NewUserPreferences()
	}
	if prefs.CuisinePreferences == nil {
		prefs.CuisinePreferences = map[string]float64{}
	}
	return prefs
}

// SavePreferences replaces the user's profile.
//
//nolint:gocritic // hugeParam: prefs passed by value, stored as a copy
func (s *Store) SavePreferences(ctx context.Context, userID string, prefs models.UserPreferences) error {
	start := time.Now()
	err := s.update(ctx, userID, func(txn *badger.Txn) error {
		return writeSlot(txn, slotKey(userID, slotPreferences), prefs)
	})
	s.recordWrite("save_preferences", start, err)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to save preferences")
	}
	return err
}

// UpdatePreferencesFromRating folds one rating into the stored profile and
// persists the result. previous is the rating it replaced, if any.
//
//nolint:gocritic // hugeParam: rating passed by value for immutability
func (s *Store) UpdatePreferencesFromRating(ctx context.Context, userID string, rating models.UserRating, cuisine string, previous *models.UserRating) (models.UserPreferences, error) {
	start := time.Now()

	var updated models.UserPreferences
	err := s.update(ctx, userID, func(txn *badger.Txn) error {
		key := slotKey(userID, slotPreferences)

		current := models.NewUserPreferences()
		found, err := readSlot(txn, key, &current)
		if err != nil || !found {
			if err != nil {
				s.logger.Warn().Err(err).Str("user_id", userID).Msg("discarding unreadable preferences")
			}
			current = models.NewUserPreferences()
		}

		updated = recommend.ApplyRating(&current, rating, cuisine, previous)
		return writeSlot(txn, key, updated)
	})
	s.recordWrite("update_preferences", start, err)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to update preferences")
		return models.UserPreferences{}, err
	}

	s.logger.Debug().
		Str("user_id", userID).
		Str("cuisine", cuisine).
		Int("rating", rating.Rating).
		Bool("replacement", previous != nil).
		Float64("affinity", updated.CuisinePreferences[cuisine]).
		Msg("preferences updated")
	return updated, nil
}

// RateResult is the outcome of RateRestaurant.
type RateResult struct {
	// Previous is the replaced rating, nil for a first rating.
	Previous *models.UserRating

	// Preferences is the profile after the rating was applied.
	Preferences models.UserPreferences
}

// RateRestaurant saves a rating and then updates the profile. The two writes
// are sequenced, not atomic: a failed profile update leaves the rating saved.
//
//nolint:gocritic // hugeParam: rating passed by value for immutability
func (s *Store) RateRestaurant(ctx context.Context, userID string, rating models.UserRating, cuisine string) (RateResult, error) {
	previous, err := s.SaveRating(ctx, userID, rating)
	if err != nil {
		return RateResult{}, err
	}

	prefs, err := s.UpdatePreferencesFromRating(ctx, userID, rating, cuisine, previous)
	if err != nil {
		return RateResult{Previous: previous}, err
	}

	return RateResult{Previous: previous, Preferences: prefs}, nil
}
