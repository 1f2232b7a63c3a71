// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package models

import (
	"time"
)

// APIResponse is the envelope returned by every HTTP endpoint.
//
// Status is "success" (see Data) or "error" (see Error).
//
//	{
//	  "status": "success",
//	  "data": [{"id": "r1", "name": "Sakura", ...}],
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "query_time_ms": 2}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Count       *int      `json:"count,omitempty"`
}

// APIError is the machine-readable error body.
//
// Common codes:
//   - VALIDATION_ERROR: invalid path, query or body
//   - NOT_FOUND: unknown restaurant or list
//   - STORAGE_ERROR: preference store write failed
//   - RATE_LIMIT_EXCEEDED: too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RecommendationsResponse is the data payload of the recommendations endpoint.
type RecommendationsResponse struct {
	Mode            string             `json:"mode"`
	Restaurants     []ScoredRestaurant `json:"restaurants"`
	TotalCandidates int                `json:"total_candidates"`
	Personalized    bool               `json:"personalized"`
}

// ScoredRestaurant pairs a restaurant with its suitability score in [0,100].
type ScoredRestaurant struct {
	Restaurant
	Score float64 `json:"score"`
}

// PreferencesResponse is the data payload of the preferences endpoint.
type PreferencesResponse struct {
	Preferences UserPreferences   `json:"preferences"`
	TopCuisines []CuisineAffinity `json:"top_cuisines"`
	ListCount   int               `json:"list_count"`
}

// ListDetailResponse is a saved list with its restaurants resolved from the catalog.
type ListDetailResponse struct {
	UserList
	Restaurants []Restaurant `json:"restaurants"`
}

// RatingResult is the data payload of a rating submission.
type RatingResult struct {
	Rating      UserRating      `json:"rating"`
	Previous    *UserRating     `json:"previous,omitempty"`
	Preferences UserPreferences `json:"preferences"`
}

// HealthStatus is the data payload of the health endpoint.
type HealthStatus struct {
	Status      string  `json:"status"`
	Version     string  `json:"version"`
	StoreOpen   bool    `json:"store_open"`
	Restaurants int     `json:"restaurants"`
	Uptime      float64 `json:"uptime_seconds"`
}
