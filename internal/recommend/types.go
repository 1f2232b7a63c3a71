// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/platepick/internal/models"
)

// ScoredRestaurant is a restaurant paired with its score.
type ScoredRestaurant = models.ScoredRestaurant

// Request represents a recommendation request.
//
// The profile travels with the request; the engine keeps no per-user state.
type Request struct {
	// UserID is used for logging only.
	UserID string `json:"user_id"`

	// Restaurants is the candidate set, usually the full catalog.
	Restaurants []models.Restaurant `json:"-"`

	// Preferences is the user's profile. Nil means the zero-state profile.
	Preferences *models.UserPreferences `json:"-"`

	// Location enables distance scoring and annotation when set.
	Location *models.Location `json:"location,omitempty"`

	// ExcludeRated drops restaurants present in RatingHistory.
	ExcludeRated bool `json:"exclude_rated,omitempty"`

	// RatingHistory is the user's ratings, consulted when ExcludeRated is set.
	RatingHistory []models.UserRating `json:"-"`

	// K is the number of restaurants to return.
	// Defaults to Config.Limits.DefaultCount if zero.
	K int `json:"k,omitempty"`

	// Mode selects the pipeline.
	Mode RecommendMode `json:"mode"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// RecommendMode specifies the type of recommendations to generate.
type RecommendMode int

const (
	// ModeDiverse ranks by score, then spreads the top results across cuisines.
	ModeDiverse RecommendMode = iota
	// ModeRanked ranks by score only.
	ModeRanked
	// ModeBrowse ignores the profile: nearest first with a location,
	// highest rated first without one.
	ModeBrowse
)

// String returns a human-readable mode name.
func (m RecommendMode) String() string {
	switch m {
	case ModeDiverse:
		return "diverse"
	case ModeRanked:
		return "ranked"
	case ModeBrowse:
		return "browse"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name back to a RecommendMode.
func ParseMode(s string) (RecommendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "diverse", "":
		return ModeDiverse, nil
	case "ranked":
		return ModeRanked, nil
	case "browse":
		return ModeBrowse, nil
	default:
		return 0, fmt.Errorf("unknown recommendation mode %q", s)
	}
}

// Response represents a recommendation response.
type Response struct {
	// Items is the ordered list of recommended restaurants.
	Items []ScoredRestaurant `json:"items"`

	// TotalCandidates is the number of restaurants considered after exclusion.
	TotalCandidates int `json:"total_candidates"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	RequestID    string    `json:"request_id"`
	UserID       string    `json:"user_id"`
	Mode         string    `json:"mode"`
	Rerankers    []string  `json:"rerankers,omitempty"`
	Personalized bool      `json:"personalized"`
	LatencyMS    int64     `json:"latency_ms"`
	Timestamp    time.Time `json:"timestamp"`
}

// Reranker modifies a ranked list for diversity or other objectives.
type Reranker interface {
	// Name returns the reranker identifier (e.g., "cuisine_diversity").
	Name() string

	// Rerank reorders already-scored items, which arrive sorted by score.
	// It returns at most k items.
	Rerank(ctx context.Context, items []ScoredRestaurant, k int) []ScoredRestaurant
}

// Metrics contains engine counters.
type Metrics struct {
	RequestCount int64            `json:"request_count"`
	ErrorCount   int64            `json:"error_count"`
	ModeCounts   map[string]int64 `json:"mode_counts"`
}
