// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package reranking

import (
	"context"
	"reflect"
	"testing"

	"github.com/tomtom215/platepick/internal/models"
	"github.com/tomtom215/platepick/internal/recommend"
)

func scored(id, cuisine string, price int, score float64) recommend.ScoredRestaurant {
	return recommend.ScoredRestaurant{
		Restaurant: models.Restaurant{ID: id, Name: id, Cuisine: cuisine, PriceLevel: price},
		Score:      score,
	}
}

func resultIDs(items []recommend.ScoredRestaurant) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func TestNewMMR(t *testing.T) {
	tests := []struct {
		name       string
		lambda     float64
		wantLambda float64
	}{
		{"normal value", 0.7, 0.7},
		{"zero value", 0.0, 0.0},
		{"one value", 1.0, 1.0},
		{"negative clamped to zero", -0.5, 0.0},
		{"above one clamped to one", 1.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mmr := NewMMR(tt.lambda)
			if mmr == nil {
				t.Fatal("NewMMR() returned nil")
			}
			if mmr.lambda != tt.wantLambda {
				t.Errorf("lambda = %f, want %f", mmr.lambda, tt.wantLambda)
			}
		})
	}
}

func TestMMR_Name(t *testing.T) {
	mmr := NewMMR(0.7)
	if mmr.Name() != "mmr" {
		t.Errorf("Name() = %q, want %q", mmr.Name(), "mmr")
	}
}

func TestMMR_Rerank(t *testing.T) {
	items := []recommend.ScoredRestaurant{
		scored("1", "Italian", 2, 95),
		scored("2", "Italian", 2, 90),
		scored("3", "Mexican", 1, 85),
		scored("4", "Italian", 3, 80),
		scored("5", "Thai", 2, 75),
		scored("6", "Mexican", 1, 70),
	}

	tests := []struct {
		name    string
		lambda  float64
		k       int
		wantLen int
	}{
		{"pure relevance (lambda=1)", 1.0, 3, 3},
		{"balanced (lambda=0.7)", 0.7, 3, 3},
		{"k larger than items", 0.7, 10, 6},
		{"k zero returns empty", 0.7, 0, 0},
		{"negative k returns empty", 0.7, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mmr := NewMMR(tt.lambda)
			result := mmr.Rerank(context.Background(), items, tt.k)

			if len(result) != tt.wantLen {
				t.Errorf("len(result) = %d, want %d", len(result), tt.wantLen)
			}
		})
	}
}

func TestMMR_PureRelevanceKeepsOrder(t *testing.T) {
	items := []recommend.ScoredRestaurant{
		scored("1", "Italian", 2, 95),
		scored("2", "Italian", 2, 90),
		scored("3", "Mexican", 1, 85),
	}

	got := resultIDs(NewMMR(1.0).Rerank(context.Background(), items, 3))
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Rerank() = %v, want %v", got, want)
	}
}

func TestMMR_PrefersDifferentCuisine(t *testing.T) {
	items := []recommend.ScoredRestaurant{
		scored("1", "Italian", 2, 95),
		scored("2", "Italian", 2, 90),
		scored("3", "Mexican", 1, 85),
	}

	got := resultIDs(NewMMR(0.5).Rerank(context.Background(), items, 2))
	if want := []string{"1", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Rerank() = %v, want %v", got, want)
	}
}

func TestMMR_EmptyInput(t *testing.T) {
	result := NewMMR(0.7).Rerank(context.Background(), nil, 5)
	if result == nil || len(result) != 0 {
		t.Errorf("Rerank(nil) = %v, want empty non-nil slice", result)
	}
}

func TestRestaurantSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b recommend.ScoredRestaurant
		want float64
	}{
		{"same cuisine and price", scored("a", "Thai", 2, 0), scored("b", "thai", 2, 0), 1.0},
		{"same cuisine far price", scored("a", "Thai", 1, 0), scored("b", "Thai", 4, 0), 0.7},
		{"different cuisine same price", scored("a", "Thai", 2, 0), scored("b", "Greek", 2, 0), 0.3},
		{"different cuisine far price", scored("a", "Thai", 1, 0), scored("b", "Greek", 4, 0), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := restaurantSimilarity(&tt.a, &tt.b)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("restaurantSimilarity() = %f, want %f", got, tt.want)
			}
		})
	}
}
