// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package api

import (
	"time"

	"github.com/tomtom215/platepick/internal/catalog"
	"github.com/tomtom215/platepick/internal/recommend"
	"github.com/tomtom215/platepick/internal/store"
)

// Version is reported by the health endpoint. Overridden at build time.
var Version = "dev"

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and parsing helpers
//   - handlers_health.go: liveness
//   - handlers_restaurants.go: catalog endpoints
//   - handlers_ratings.go: rating history and rating submission
//   - handlers_lists.go: saved lists
//   - handlers_preferences.go: profile and data reset
//   - handlers_recommend.go: recommendations and feed
type Handler struct {
	store     *store.Store
	catalog   *catalog.Catalog
	engine    *recommend.Engine
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(st, cat, engine)
//	router := api.NewRouter(handler, api.NewChiMiddleware(mwCfg))
//	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
func NewHandler(st *store.Store, cat *catalog.Catalog, engine *recommend.Engine) *Handler {
	return &Handler{
		store:     st,
		catalog:   cat,
		engine:    engine,
		startTime: time.Now(),
	}
}
