// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

type rateRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"required"`
	Rating       int    `json:"rating" validate:"gte=1,lte=5"`
}

type listRequest struct {
	Name string `json:"name" validate:"notblank,max=100"`
}

type locationQuery struct {
	Lat   *float64 `json:"lat" validate:"omitempty,latitude"`
	Lon   *float64 `json:"lon" validate:"omitempty,longitude"`
	Mode  string   `json:"mode" validate:"omitempty,oneof=diverse ranked browse feed"`
	Count int      `json:"count" validate:"gte=0,lte=50"`
}

func ptr(f float64) *float64 { return &f }

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
	}{
		{"valid rating", &rateRequest{RestaurantID: "r1", Rating: 5}, "", ""},
		{"rating too high", &rateRequest{RestaurantID: "r1", Rating: 6}, "rating", "lte"},
		{"rating too low", &rateRequest{RestaurantID: "r1", Rating: 0}, "rating", "gte"},
		{"missing restaurant", &rateRequest{Rating: 3}, "restaurant_id", "required"},
		{"valid list name", &listRequest{Name: "Date night"}, "", ""},
		{"blank list name", &listRequest{Name: "   "}, "name", "notblank"},
		{"empty list name", &listRequest{Name: ""}, "name", "notblank"},
		{"list name too long", &listRequest{Name: strings.Repeat("x", 101)}, "name", "max"},
		{"valid location", &locationQuery{Lat: ptr(37.77), Lon: ptr(-122.41), Mode: "feed"}, "", ""},
		{"no location", &locationQuery{Mode: "browse"}, "", ""},
		{"bad latitude", &locationQuery{Lat: ptr(91), Lon: ptr(0)}, "lat", "latitude"},
		{"bad longitude", &locationQuery{Lat: ptr(10), Lon: ptr(-181)}, "lon", "longitude"},
		{"unknown mode", &locationQuery{Mode: "popular"}, "mode", "oneof"},
		{"count too high", &locationQuery{Count: 51}, "count", "lte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() error = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("error on %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestValidateUserID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"u1", true},
		{"alice.smith_2-x", true},
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"", false},
		{"bad:id", false},
		{"has space", false},
		{strings.Repeat("a", 129), false},
	}

	for _, tt := range tests {
		verr := ValidateUserID(tt.id)
		if (verr == nil) != tt.valid {
			t.Errorf("ValidateUserID(%q) = %v, want valid=%v", tt.id, verr, tt.valid)
		}
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	verr := ValidateStruct(&rateRequest{RestaurantID: "r1", Rating: 9})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "rating must be less than or equal to 5" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "rating" {
		t.Errorf("Details[field] = %v, want rating", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	verr := ValidateStruct(&rateRequest{Rating: 0})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if !strings.Contains(apiErr.Message, "restaurant_id: restaurant_id is required") {
		t.Errorf("Message = %q, missing restaurant_id", apiErr.Message)
	}
	if !strings.Contains(apiErr.Message, "rating: rating must be greater than or equal to 1") {
		t.Errorf("Message = %q, missing rating", apiErr.Message)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("Details[fields] = %v, want 2 entries", apiErr.Details["fields"])
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		input interface{}
		want  string
	}{
		{&listRequest{Name: " "}, "name must not be blank"},
		{&listRequest{Name: strings.Repeat("x", 101)}, "name must be at most 100 characters"},
		{&locationQuery{Lat: ptr(100), Lon: ptr(0)}, "lat must be a valid latitude (-90 to 90)"},
		{&locationQuery{Mode: "x"}, "mode must be one of: diverse ranked browse feed"},
	}

	for _, tt := range tests {
		verr := ValidateStruct(tt.input)
		if verr == nil {
			t.Errorf("ValidateStruct(%+v) = nil, want %q", tt.input, tt.want)
			continue
		}
		if verr.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", verr.Error(), tt.want)
		}
	}
}
