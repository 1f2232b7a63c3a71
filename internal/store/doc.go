// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

// Package store persists per-user ratings, saved lists and preference
// profiles in BadgerDB.
//
// Each user owns three JSON-encoded slots:
//
//	user:<userID>:ratings      []models.UserRating
//	user:<userID>:lists        []models.UserList
//	user:<userID>:preferences  models.UserPreferences
//
// Read-modify-write operations (SaveRating, list edits, preference updates)
// run inside a single Badger transaction, and write transactions are
// serialized, so concurrent requests for the same user do not lose updates.
//
// Getters never return errors. A missing or unreadable slot is logged and
// read as its default: an empty slice, or the zero-state profile from
// models.NewUserPreferences.
package store
