// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/platepick/internal/models"
)

func TestRestaurants(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)

	t.Run("lists the catalog", func(t *testing.T) {
		rec, env := srv.do(t, http.MethodGet, "/api/v1/restaurants", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var got []models.Restaurant
		decodeData(t, env, &got)
		if len(got) != 14 {
			t.Errorf("got %d restaurants, want 14", len(got))
		}
		if env.Metadata.Count == nil || *env.Metadata.Count != 14 {
			t.Errorf("metadata count = %v, want 14", env.Metadata.Count)
		}
	})

	t.Run("filters by cuisine case-insensitively", func(t *testing.T) {
		_, env := srv.do(t, http.MethodGet, "/api/v1/restaurants?cuisine=japanese", "")
		var got []models.Restaurant
		decodeData(t, env, &got)
		if len(got) != 2 {
			t.Fatalf("got %d Japanese restaurants, want 2", len(got))
		}
		for _, r := range got {
			if r.Cuisine != "Japanese" {
				t.Errorf("restaurant %s has cuisine %s", r.ID, r.Cuisine)
			}
		}
	})

	t.Run("unknown cuisine yields empty list", func(t *testing.T) {
		_, env := srv.do(t, http.MethodGet, "/api/v1/restaurants?cuisine=Martian", "")
		if string(env.Data) != "[]" {
			t.Errorf("data = %s, want []", string(env.Data))
		}
	})
}

func TestRestaurant(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)

	rec, env := srv.do(t, http.MethodGet, "/api/v1/restaurants/sf-001", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got models.Restaurant
	decodeData(t, env, &got)
	if got.Name != "Sakura Omakase" || got.PriceLevel != 4 {
		t.Errorf("got %+v", got)
	}
	if got.Distance != nil {
		t.Error("catalog lookups should not carry a distance")
	}

	rec, env = srv.do(t, http.MethodGet, "/api/v1/restaurants/nope", "")
	expectError(t, rec, env, http.StatusNotFound, codeNotFound)
}

func TestCuisines(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)

	_, env := srv.do(t, http.MethodGet, "/api/v1/cuisines", "")
	var got []string
	decodeData(t, env, &got)
	if len(got) != 11 {
		t.Fatalf("got %d cuisines, want 11: %v", len(got), got)
	}
	if got[0] != "American" || got[len(got)-1] != "Vietnamese" {
		t.Errorf("cuisines not sorted: %v", got)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil)

	rec, env := srv.do(t, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var health models.HealthStatus
	decodeData(t, env, &health)
	if health.Status != "healthy" || !health.StoreOpen || health.Restaurants != 14 {
		t.Errorf("health = %+v", health)
	}

	if err := srv.store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	rec, env = srv.do(t, http.MethodGet, "/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status after close = %d, want 503", rec.Code)
	}
	decodeData(t, env, &health)
	if health.Status != "degraded" {
		t.Errorf("status = %q, want degraded", health.Status)
	}
}
