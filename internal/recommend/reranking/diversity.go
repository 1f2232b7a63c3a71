// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package reranking

import (
	"context"

	"github.com/tomtom215/platepick/internal/recommend"
)

// CuisineDiversity picks one restaurant per cuisine before repeating any.
//
// Selection is a two-pass greedy walk over the score-sorted input:
//  1. take the first restaurant of every cuisine not seen yet, in rank order;
//  2. if fewer than k were taken, walk again and take any restaurant whose id
//     is not already selected.
//
// Both passes preserve rank order. Diversity is best effort: with fewer
// distinct cuisines than k, the tail is filled by score.
type CuisineDiversity struct{}

// NewCuisineDiversity creates the cuisine diversity reranker.
func NewCuisineDiversity() *CuisineDiversity {
	return &CuisineDiversity{}
}

// Name returns the reranker identifier.
func (c *CuisineDiversity) Name() string {
	return "cuisine_diversity"
}

// Rerank returns at most k restaurants, never repeating an id.
func (c *CuisineDiversity) Rerank(_ context.Context, items []recommend.ScoredRestaurant, k int) []recommend.ScoredRestaurant {
	return Diversify(items, k)
}

// Diversify applies the two-pass cuisine selection to ranked.
//
//nolint:gocritic // rangeValCopy: ScoredRestaurant copied in range for clarity
func Diversify(ranked []recommend.ScoredRestaurant, count int) []recommend.ScoredRestaurant {
	if count <= 0 || len(ranked) == 0 {
		return []recommend.ScoredRestaurant{}
	}
	if count > maxRerankSize {
		count = maxRerankSize
	}

	capacity := count
	if capacity > len(ranked) {
		capacity = len(ranked)
	}
	selected := make([]recommend.ScoredRestaurant, 0, capacity)
	taken := make(map[string]struct{}, capacity)
	seenCuisines := make(map[string]struct{})

	for _, r := range ranked {
		if len(selected) >= count {
			break
		}
		if _, seen := seenCuisines[r.Cuisine]; seen {
			continue
		}
		if _, dup := taken[r.ID]; dup {
			continue
		}
		seenCuisines[r.Cuisine] = struct{}{}
		taken[r.ID] = struct{}{}
		selected = append(selected, r)
	}

	for _, r := range ranked {
		if len(selected) >= count {
			break
		}
		if _, dup := taken[r.ID]; dup {
			continue
		}
		taken[r.ID] = struct{}{}
		selected = append(selected, r)
	}

	return selected
}

var _ recommend.Reranker = (*CuisineDiversity)(nil)
