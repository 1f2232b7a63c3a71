// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

/*
Package models defines the data structures shared across Platepick.

Domain entities:
  - Restaurant: catalog reference data, with a transient Distance set during ranking
  - UserRating: one rating per restaurant per user, last write wins
  - UserList: named saved list of restaurant ids, deduplicated
  - UserPreferences: aggregate profile (cuisine affinities, running average)
  - Location: a user position

API models:
  - APIResponse, APIError, Metadata: the response envelope
  - RecommendationsResponse, PreferencesResponse, ListDetailResponse: payloads

All structs serialize with snake_case JSON field names. The same encoding is
used for the values persisted by the preference store.
*/
package models
