// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package recommend

import (
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/platepick/internal/models"
)

func TestRatingWeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rating int
		want   float64
	}{
		{1, -1},
		{2, -0.5},
		{3, 0},
		{4, 0.5},
		{5, 1},
	}
	for _, tt := range tests {
		if got := RatingWeight(tt.rating); got != tt.want {
			t.Errorf("RatingWeight(%d) = %v, want %v", tt.rating, got, tt.want)
		}
	}
}

func TestApplyRating_CuisineBlend(t *testing.T) {
	t.Parallel()

	profile := models.NewUserPreferences()

	profile = ApplyRating(&profile, models.UserRating{RestaurantID: "r1", Rating: 5}, "Sushi", nil)
	if got := profile.CuisinePreferences["Sushi"]; got != 0.5 {
		t.Fatalf("after first 5-star, affinity = %v, want 0.5", got)
	}

	profile = ApplyRating(&profile, models.UserRating{RestaurantID: "r2", Rating: 5}, "Sushi", nil)
	if got := profile.CuisinePreferences["Sushi"]; got != 0.75 {
		t.Fatalf("after second 5-star, affinity = %v, want 0.75", got)
	}

	profile = ApplyRating(&profile, models.UserRating{RestaurantID: "r3", Rating: 1}, "Pizza", nil)
	if got := profile.CuisinePreferences["Pizza"]; got != -0.5 {
		t.Errorf("after 1-star, affinity = %v, want -0.5", got)
	}
	if got := profile.CuisinePreferences["Sushi"]; got != 0.75 {
		t.Errorf("unrelated cuisine changed to %v", got)
	}
}

func TestApplyRating_NilProfile(t *testing.T) {
	t.Parallel()

	got := ApplyRating(nil, models.UserRating{RestaurantID: "r1", Rating: 5}, "Sushi", nil)

	if aff := got.CuisinePreferences["Sushi"]; aff != 0.5 {
		t.Errorf("affinity = %v, want 0.5", aff)
	}
	if got.TotalRatings != 1 {
		t.Errorf("TotalRatings = %d, want 1", got.TotalRatings)
	}
	if got.AverageRating != 5 {
		t.Errorf("AverageRating = %v, want 5", got.AverageRating)
	}
	if got.PriceLevelPreference != models.DefaultPriceLevelPreference {
		t.Errorf("PriceLevelPreference = %d, want %d", got.PriceLevelPreference, models.DefaultPriceLevelPreference)
	}
}

func TestApplyRating_ApproachesButNeverReachesWeight(t *testing.T) {
	t.Parallel()

	profile := models.NewUserPreferences()
	for i := 0; i < 30; i++ {
		profile = ApplyRating(&profile, models.UserRating{RestaurantID: "r", Rating: 5}, "Thai", nil)
	}
	got := profile.CuisinePreferences["Thai"]
	if got >= 1 || got < 0.99 {
		t.Errorf("affinity after 30 updates = %v, want in [0.99, 1)", got)
	}
}

func TestApplyRating_RunningAverage(t *testing.T) {
	t.Parallel()

	profile := models.NewUserPreferences()
	for i, r := range []int{5, 3, 4} {
		profile = ApplyRating(&profile, models.UserRating{RestaurantID: string(rune('a' + i)), Rating: r}, "Deli", nil)
	}

	if profile.TotalRatings != 3 {
		t.Errorf("TotalRatings = %d, want 3", profile.TotalRatings)
	}
	if math.Abs(profile.AverageRating-4.0) > 1e-9 {
		t.Errorf("AverageRating = %v, want 4.0", profile.AverageRating)
	}
}

func TestApplyRating_ReplacementDoesNotDoubleCount(t *testing.T) {
	t.Parallel()

	profile := models.NewUserPreferences()
	first := models.UserRating{RestaurantID: "a", Rating: 2}
	profile = ApplyRating(&profile, first, "Deli", nil)
	profile = ApplyRating(&profile, models.UserRating{RestaurantID: "b", Rating: 4}, "Deli", nil)

	replacement := models.UserRating{RestaurantID: "a", Rating: 5}
	profile = ApplyRating(&profile, replacement, "Deli", &first)

	if profile.TotalRatings != 2 {
		t.Errorf("TotalRatings = %d, want 2", profile.TotalRatings)
	}
	// Current ratings are a=5 and b=4.
	if math.Abs(profile.AverageRating-4.5) > 1e-9 {
		t.Errorf("AverageRating = %v, want 4.5", profile.AverageRating)
	}
}

func TestApplyRating_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	profile := models.NewUserPreferences()
	profile.CuisinePreferences["Thai"] = 0.2

	_ = ApplyRating(&profile, models.UserRating{RestaurantID: "r", Rating: 5}, "Thai", nil)

	if profile.CuisinePreferences["Thai"] != 0.2 || profile.TotalRatings != 0 {
		t.Errorf("input profile mutated: %+v", profile)
	}
}

func TestApplyRating_LeavesPriceLevelPreference(t *testing.T) {
	t.Parallel()

	profile := models.NewUserPreferences()
	profile.PriceLevelPreference = 3
	updated := ApplyRating(&profile, models.UserRating{RestaurantID: "r", Rating: 1}, "Steak", nil)

	if updated.PriceLevelPreference != 3 {
		t.Errorf("PriceLevelPreference = %d, want 3", updated.PriceLevelPreference)
	}
}

func TestApplyRating_NilCuisineMap(t *testing.T) {
	t.Parallel()

	profile := models.UserPreferences{PriceLevelPreference: 2}
	updated := ApplyRating(&profile, models.UserRating{RestaurantID: "r", Rating: 4}, "Thai", nil)

	if got := updated.CuisinePreferences["Thai"]; got != 0.25 {
		t.Errorf("affinity = %v, want 0.25", got)
	}
}

func TestTopCuisines(t *testing.T) {
	t.Parallel()

	prefs := &models.UserPreferences{CuisinePreferences: map[string]float64{
		"Thai":    0.5,
		"Sushi":   0.75,
		"Pizza":   -0.5,
		"Deli":    0.5,
		"Mexican": 0.1,
		"Greek":   0,
	}}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"top five", 5, []string{"Sushi", "Deli", "Thai", "Mexican", "Greek"}},
		{"top two", 2, []string{"Sushi", "Deli"}},
		{"more than available", 10, []string{"Sushi", "Deli", "Thai", "Mexican", "Greek", "Pizza"}},
		{"zero", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			top := TopCuisines(prefs, tt.n)
			got := make([]string, len(top))
			for i, c := range top {
				got[i] = c.Cuisine
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopCuisines(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}
