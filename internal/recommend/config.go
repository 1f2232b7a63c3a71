// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package recommend

import (
	"fmt"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Diversity contains parameters for cuisine diversification.
	Diversity DiversityConfig `json:"diversity"`

	// Feed controls how the feed picks between personalized and browse modes.
	Feed FeedConfig `json:"feed"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultCount is the number of restaurants returned when a request
	// does not ask for a specific count.
	// Default: 10.
	DefaultCount int `json:"default_count"`

	// MaxCount caps the requested count.
	// Default: 50.
	MaxCount int `json:"max_count"`

	// MaxCandidates is the largest candidate set a single request may score.
	// Default: 5000.
	MaxCandidates int `json:"max_candidates"`
}

// DiversityConfig contains parameters for diversity reranking.
type DiversityConfig struct {
	// Enabled registers a diversity reranker for ModeDiverse.
	// Default: true.
	Enabled bool `json:"enabled"`

	// Strategy selects the reranker: "cuisine" or "mmr".
	// Default: "cuisine".
	Strategy string `json:"strategy"`

	// MMRLambda balances score vs. similarity for the "mmr" strategy.
	// 1.0 = pure score order, 0.0 = pure diversity.
	// Default: 0.7.
	MMRLambda float64 `json:"mmr_lambda"`
}

// Diversity strategies.
const (
	StrategyCuisine = "cuisine"
	StrategyMMR     = "mmr"
)

// FeedConfig controls the feed.
type FeedConfig struct {
	// MinRatings is how many ratings a profile needs before the feed
	// switches from browse to diverse recommendations.
	// Default: 1.
	MinRatings int `json:"min_ratings"`
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultCount:  10,
			MaxCount:      50,
			MaxCandidates: 5000,
		},
		Diversity: DiversityConfig{
			Enabled:   true,
			Strategy:  StrategyCuisine,
			MMRLambda: 0.7,
		},
		Feed: FeedConfig{
			MinRatings: 1,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.DefaultCount < 1 {
		return fmt.Errorf("limits.default_count must be positive, got %d", c.Limits.DefaultCount)
	}
	if c.Limits.MaxCount < c.Limits.DefaultCount {
		return fmt.Errorf("limits.max_count must be >= limits.default_count, got %d < %d", c.Limits.MaxCount, c.Limits.DefaultCount)
	}
	if c.Limits.MaxCandidates < 1 {
		return fmt.Errorf("limits.max_candidates must be positive, got %d", c.Limits.MaxCandidates)
	}
	if c.Diversity.Strategy != StrategyCuisine && c.Diversity.Strategy != StrategyMMR {
		return fmt.Errorf("diversity.strategy must be %q or %q, got %q", StrategyCuisine, StrategyMMR, c.Diversity.Strategy)
	}
	if c.Diversity.MMRLambda < 0 || c.Diversity.MMRLambda > 1 {
		return fmt.Errorf("diversity.mmr_lambda must be in [0, 1], got %f", c.Diversity.MMRLambda)
	}
	if c.Feed.MinRatings < 1 {
		return fmt.Errorf("feed.min_ratings must be positive, got %d", c.Feed.MinRatings)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs hold value types only.
	clone := *c
	return &clone
}
