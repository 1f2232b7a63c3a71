// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/platepick/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware factory uses the defaults.
func NewRouter(handler *Handler, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)         // X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)         // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)      // Recover from panics
	r.Use(router.chiMiddleware.CORS())  // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics) // Request count and latency by route pattern

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, codeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// ========================
	// Operational Endpoints
	// ========================
	r.Get("/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// API v1
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Get("/restaurants", router.handler.Restaurants)
		r.Get("/restaurants/{id}", router.handler.Restaurant)
		r.Get("/cuisines", router.handler.Cuisines)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/ratings", router.handler.Ratings)
			r.Post("/ratings", router.handler.RateRestaurant)
			r.Get("/ratings/{restaurantID}", router.handler.Rating)

			r.Get("/lists", router.handler.Lists)
			r.Post("/lists", router.handler.CreateList)
			r.Get("/lists/{listID}", router.handler.List)
			r.Delete("/lists/{listID}", router.handler.DeleteList)
			r.Put("/lists/{listID}/restaurants/{restaurantID}", router.handler.AddToList)
			r.Delete("/lists/{listID}/restaurants/{restaurantID}", router.handler.RemoveFromList)

			r.Get("/preferences", router.handler.Preferences)
			r.Delete("/data", router.handler.ClearData)

			r.Get("/recommendations", router.handler.Recommendations)
		})
	})

	return r
}
