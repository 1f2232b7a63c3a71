// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

// Package recommend scores and ranks restaurants against a user's taste
// profile.
//
// # Scoring
//
// Score combines four terms and clamps the result to [MinScore, MaxScore]:
//
//   - Base: restaurant rating * 20
//   - Cuisine: learned affinity in [-1, 1] * 20
//   - Price: -5 per level away from the preferred price level
//   - Quality: +10 at a rating of 4.5 or higher
//
// With a location, DistanceBonus adds +15 under one mile, +10 under three,
// +5 under five, and -10 beyond ten. Distances use the haversine formula in
// miles.
//
// # Learning
//
// ApplyRating folds one rating into a profile and returns the new profile.
// Cuisine affinity moves halfway toward the rating's weight on every call:
//
//	affinity' = (affinity + weight) / 2
//	weight    = {1: -1, 2: -0.5, 3: 0, 4: 0.5, 5: 1}
//
// Replacing an earlier rating of the same restaurant adjusts the running
// average without counting the restaurant twice.
//
// # Pipeline
//
//	Exclude rated -> Annotate distance -> Score -> Stable sort -> Rerank -> Truncate
//
// ModeBrowse skips scoring order and sorts by distance or rating instead.
// Engine.Feed picks ModeDiverse once a profile has ratings and ModeBrowse
// before that.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	engine.RegisterReranker(reranking.NewCuisineDiversity())
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    UserID:      userID,
//	    Restaurants: catalog.All(),
//	    Preferences: &prefs,
//	    K:           10,
//	})
//
// # Thread Safety
//
// The engine holds no per-user state. Configuration and the reranker list
// are guarded by read-write locks, so Recommend is safe for concurrent use.
package recommend
