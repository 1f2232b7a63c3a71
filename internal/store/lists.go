// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package store

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/tomtom215/platepick/internal/models"
)

// GetLists returns the user's saved lists in creation order.
// It returns an empty slice when nothing is stored or the read fails.
func (s *Store) GetLists(ctx context.Context, userID string) []models.UserList {
	var lists []models.UserList
	if !s.readOrDefault("get_lists", userID, slotLists, &lists) || lists == nil {
		return []models.UserList{}
	}
	return lists
}

// GetList returns one list by id.
func (s *Store) GetList(ctx context.Context, userID, listID string) (*models.UserList, error) {
	for _, l := range s.GetLists(ctx, userID) {
		if l.ID == listID {
			list := l
			return &list, nil
		}
	}
	return nil, ErrListNotFound
}

// SaveList inserts or replaces a list by id. A list without an id is new:
// it gets a generated id and a creation time. Duplicate restaurant ids are
// dropped, keeping the first occurrence.
//
//nolint:gocritic // hugeParam: list passed by value, stored as a copy
func (s *Store) SaveList(ctx context.Context, userID string, list models.UserList) (models.UserList, error) {
	start := time.Now()
	if list.ID == "" {
		list.ID = uuid.New().String()
	}
	if list.CreatedAt == 0 {
		list.CreatedAt = time.Now().UnixMilli()
	}
	list.RestaurantIDs = dedupe(list.RestaurantIDs)

	err := s.modifyLists(ctx, userID, func(lists []models.UserList) ([]models.UserList, error) {
		for i := range lists {
			if lists[i].ID == list.ID {
				lists[i] = list
				return lists, nil
			}
		}
		return append(lists, list), nil
	})
	s.recordWrite("save_list", start, err)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("list_id", list.ID).Msg("failed to save list")
		return models.UserList{}, err
	}
	return list, nil
}

// DeleteList removes a list.
func (s *Store) DeleteList(ctx context.Context, userID, listID string) error {
	start := time.Now()
	err := s.modifyLists(ctx, userID, func(lists []models.UserList) ([]models.UserList, error) {
		for i := range lists {
			if lists[i].ID == listID {
				return append(lists[:i], lists[i+1:]...), nil
			}
		}
		return nil, ErrListNotFound
	})
	s.recordWrite("delete_list", start, err)
	return err
}

// AddRestaurantToList appends restaurantID to a list. Adding an id that is
// already present leaves the list unchanged.
func (s *Store) AddRestaurantToList(ctx context.Context, userID, listID, restaurantID string) (models.UserList, error) {
	start := time.Now()
	updated, err := s.modifyList(ctx, userID, listID, func(list *models.UserList) {
		if !list.Contains(restaurantID) {
			list.RestaurantIDs = append(list.RestaurantIDs, restaurantID)
		}
	})
	s.recordWrite("add_to_list", start, err)
	return updated, err
}

// RemoveRestaurantFromList removes restaurantID from a list. Removing an
// absent id is not an error.
func (s *Store) RemoveRestaurantFromList(ctx context.Context, userID, listID, restaurantID string) (models.UserList, error) {
	start := time.Now()
	updated, err := s.modifyList(ctx, userID, listID, func(list *models.UserList) {
		kept := list.RestaurantIDs[:0]
		for _, id := range list.RestaurantIDs {
			if id != restaurantID {
				kept = append(kept, id)
			}
		}
		list.RestaurantIDs = kept
	})
	s.recordWrite("remove_from_list", start, err)
	return updated, err
}

func (s *Store) modifyList(ctx context.Context, userID, listID string, fn func(*models.UserList)) (models.UserList, error) {
	var updated models.UserList
	err := s.modifyLists(ctx, userID, func(lists []models.UserList) ([]models.UserList, error) {
		for i := range lists {
			if lists[i].ID == listID {
				fn(&lists[i])
				if lists[i].RestaurantIDs == nil {
					lists[i].RestaurantIDs = []string{}
				}
				updated = lists[i]
				return lists, nil
			}
		}
		return nil, ErrListNotFound
	})
	return updated, err
}

// modifyLists reads, transforms and writes the lists slot in one transaction.
func (s *Store) modifyLists(ctx context.Context, userID string, fn func([]models.UserList) ([]models.UserList, error)) error {
	return s.update(ctx, userID, func(txn *badger.Txn) error {
		key := slotKey(userID, slotLists)

		var lists []models.UserList
		if _, err := readSlot(txn, key, &lists); err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("discarding unreadable lists")
			lists = nil
		}

		lists, err := fn(lists)
		if err != nil {
			return err
		}
		if lists == nil {
			lists = []models.UserList{}
		}
		return writeSlot(txn, key, lists)
	})
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
