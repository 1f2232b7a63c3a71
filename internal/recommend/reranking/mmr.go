// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package reranking

import (
	"context"
	"math"
	"strings"

	"github.com/tomtom215/platepick/internal/recommend"
)

// maxRerankSize bounds slice allocations; k is also bounded by len(items).
const maxRerankSize = 10000

// Similarity weights between two restaurants. Sharing a cuisine dominates;
// price level closeness breaks ties between different cuisines.
const (
	cuisineSimilarityWeight = 0.7
	priceSimilarityWeight   = 0.3
	maxPriceGap             = 3.0
)

// MMR implements Maximal Marginal Relevance reranking.
// It balances relevance and diversity by iteratively selecting restaurants
// that score well and differ from those already selected:
//
//	MMR = argmax[lambda * score(i) - (1-lambda) * max(sim(i, s)) for s in selected]
//
// Scores are normalized from [0,100] to [0,1] before blending.
//
// Reference:
// Carbonell, J., & Goldstein, J. (1998). "The Use of MMR, Diversity-Based
// Reranking for Reordering Documents and Producing Summaries." SIGIR 1998.
type MMR struct {
	lambda float64
}

// NewMMR creates a new MMR reranker. lambda is clamped to [0,1].
func NewMMR(lambda float64) *MMR {
	if lambda < 0 {
		lambda = 0
	}
	if lambda > 1 {
		lambda = 1
	}
	return &MMR{lambda: lambda}
}

// Name returns the reranker identifier.
func (m *MMR) Name() string {
	return "mmr"
}

// Rerank applies MMR reranking and returns at most k restaurants.
//
//nolint:gocritic // rangeValCopy: ScoredRestaurant passed by value in range, acceptable for clarity
func (m *MMR) Rerank(_ context.Context, items []recommend.ScoredRestaurant, k int) []recommend.ScoredRestaurant {
	if len(items) == 0 || k <= 0 {
		return []recommend.ScoredRestaurant{}
	}

	if k > maxRerankSize {
		k = maxRerankSize
	}
	if k > len(items) {
		k = len(items)
	}

	if m.lambda >= 1.0 {
		return items[:k]
	}

	similarities := buildSimilarityMatrix(items)

	selected := make([]recommend.ScoredRestaurant, 0, k)
	selectedIndices := make([]int, 0, k)
	used := make([]bool, len(items))

	for len(selected) < k {
		bestIdx := -1
		bestMMR := math.Inf(-1)

		for i, item := range items {
			if used[i] {
				continue
			}

			maxSim := 0.0
			for _, j := range selectedIndices {
				if sim := similarities[i][j]; sim > maxSim {
					maxSim = sim
				}
			}

			mmrScore := m.lambda*(item.Score/recommend.MaxScore) - (1-m.lambda)*maxSim
			if mmrScore > bestMMR {
				bestMMR = mmrScore
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			break
		}

		selected = append(selected, items[bestIdx])
		selectedIndices = append(selectedIndices, bestIdx)
		used[bestIdx] = true
	}

	return selected
}

func buildSimilarityMatrix(items []recommend.ScoredRestaurant) [][]float64 {
	n := len(items)
	similarities := make([][]float64, n)
	for i := range similarities {
		similarities[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := restaurantSimilarity(&items[i], &items[j])
			similarities[i][j] = sim
			similarities[j][i] = sim
		}
	}

	return similarities
}

// restaurantSimilarity returns a value in [0,1].
func restaurantSimilarity(a, b *recommend.ScoredRestaurant) float64 {
	sim := 0.0
	if strings.EqualFold(a.Cuisine, b.Cuisine) {
		sim += cuisineSimilarityWeight
	}

	gap := math.Abs(float64(a.PriceLevel - b.PriceLevel))
	if gap > maxPriceGap {
		gap = maxPriceGap
	}
	sim += priceSimilarityWeight * (1 - gap/maxPriceGap)

	return sim
}

// Ensure MMR implements the interface.
var _ recommend.Reranker = (*MMR)(nil)
