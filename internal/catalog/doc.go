// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

// Package catalog holds the restaurant reference data.
//
// The catalog is loaded once at startup, from CATALOG_PATH when set or from
// the dataset embedded in the binary, and never changes afterwards. Files
// hold a single top-level key:
//
//	restaurants:
//	  - id: sf-001
//	    name: Sakura Omakase
//	    cuisine: Japanese
//	    rating: 4.8
//	    price_level: 4
//	    latitude: 37.7853
//	    longitude: -122.4314
//
// Every restaurant is validated on load and duplicate ids are rejected.
package catalog
