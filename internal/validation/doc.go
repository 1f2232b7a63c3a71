// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

// Package validation provides struct validation using go-playground/validator v10.
//
// It holds a thread-safe singleton validator with two custom tags and turns
// validator errors into the API's VALIDATION_ERROR format.
//
// # Custom Tags
//
//   - notblank: string must contain a non-whitespace character (list names)
//   - userid: 1-128 characters from [A-Za-z0-9._-] (path user ids)
//
// Field names in messages come from json tags, so a failing
//
//	type RateRequest struct {
//	    RestaurantID string `json:"restaurant_id" validate:"required"`
//	    Rating       int    `json:"rating" validate:"gte=1,lte=5"`
//	}
//
// reports "rating must be less than or equal to 5".
//
// # Usage
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// The catalog loader runs the same validator over every restaurant, using
// the validate tags on models.Restaurant.
package validation
