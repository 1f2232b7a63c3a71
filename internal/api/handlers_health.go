// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/platepick/internal/models"
)

// Health handles GET /health.
// The service is "healthy" while the preference store is open and "degraded"
// otherwise; catalog and scoring need no external dependency.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	storeOpen := h.store != nil && !h.store.IsClosed()
	status := "healthy"
	code := http.StatusOK
	if !storeOpen {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	restaurants := 0
	if h.catalog != nil {
		restaurants = h.catalog.Len()
	}

	respondSuccess(w, code, models.HealthStatus{
		Status:      status,
		Version:     Version,
		StoreOpen:   storeOpen,
		Restaurants: restaurants,
		Uptime:      time.Since(h.startTime).Seconds(),
	}, start)
}
