// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package models

// Restaurant is immutable reference data served from the catalog.
//
// Distance is transient: it is set on copies during a ranking pass when the
// caller supplies a location and is never persisted.
type Restaurant struct {
	ID          string   `json:"id" yaml:"id" koanf:"id" validate:"required"`
	Name        string   `json:"name" yaml:"name" koanf:"name" validate:"required"`
	Cuisine     string   `json:"cuisine" yaml:"cuisine" koanf:"cuisine" validate:"required"`
	Rating      float64  `json:"rating" yaml:"rating" koanf:"rating" validate:"gte=0,lte=5"`
	PriceLevel  int      `json:"price_level" yaml:"price_level" koanf:"price_level" validate:"gte=1,lte=4"`
	Description string   `json:"description" yaml:"description" koanf:"description"`
	Address     string   `json:"address" yaml:"address" koanf:"address"`
	Latitude    float64  `json:"latitude" yaml:"latitude" koanf:"latitude" validate:"latitude"`
	Longitude   float64  `json:"longitude" yaml:"longitude" koanf:"longitude" validate:"longitude"`
	Image       string   `json:"image,omitempty" yaml:"image" koanf:"image"`
	Distance    *float64 `json:"distance,omitempty" yaml:"-" koanf:"-"`
}

// Location is a user position in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}
