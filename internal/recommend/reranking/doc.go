// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

// Package reranking implements post-processing for recommendation diversity.
//
// Rerankers run after the score-sorted ranking:
//
//	Score -> Rank (stable, descending) -> Rerankers -> Truncate to k
//
// # Available Rerankers
//
// CuisineDiversity:
//   - One restaurant per cuisine first, in rank order
//   - Backfills by rank, skipping ids already selected
//   - The default for diverse recommendations
//
// Maximal Marginal Relevance (MMR):
//   - Trades score against similarity to already selected restaurants
//   - Similarity combines cuisine equality and price level closeness
//   - Lambda controls the tradeoff (1.0 = pure score order)
//
// Both implement recommend.Reranker:
//
//	type Reranker interface {
//	    Name() string
//	    Rerank(ctx context.Context, items []ScoredRestaurant, k int) []ScoredRestaurant
//	}
package reranking
