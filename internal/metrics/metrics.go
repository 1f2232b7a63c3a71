// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for:
// - API endpoint latency and throughput
// - Recommendation pipeline latency per mode
// - Ratings and preference learning
// - Preference store operations and value log GC
// - Catalog size

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time to score, rank and rerank one recommendation request",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"mode"}, // diverse, ranked, browse
	)

	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of restaurants returned by recommendation requests",
		},
		[]string{"mode"},
	)

	RecommendationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_errors_total",
			Help: "Total number of failed recommendation requests",
		},
		[]string{"mode"},
	)

	// Rating Metrics
	RatingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratings_total",
			Help: "Total number of ratings submitted",
		},
		[]string{"stars", "kind"}, // kind: "new", "replacement"
	)

	// Preference Store Metrics
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of preference store operations",
		},
		[]string{"operation", "result"}, // result: "success", "error", "default"
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Preference store operation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"operation"},
	)

	StoreGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_gc_runs_total",
			Help: "Total number of value log garbage collection runs",
		},
		[]string{"result"},
	)

	StoreGCDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "store_gc_duration_seconds",
			Help:    "Value log garbage collection duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Catalog Metrics
	CatalogRestaurants = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_restaurants",
			Help: "Number of restaurants in the loaded catalog",
		},
	)

	CatalogCuisines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_cuisines",
			Help: "Number of distinct cuisines in the loaded catalog",
		},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one recommendation request. returned is the
// number of restaurants in the response.
func RecordRecommendation(mode string, duration time.Duration, returned int, err error) {
	RecommendationDuration.WithLabelValues(mode).Observe(duration.Seconds())
	if err != nil {
		RecommendationErrors.WithLabelValues(mode).Inc()
		return
	}
	RecommendationsServed.WithLabelValues(mode).Add(float64(returned))
}

// RecordRating records a submitted rating
func RecordRating(stars int, replacement bool) {
	kind := "new"
	if replacement {
		kind = "replacement"
	}
	RatingsTotal.WithLabelValues(strconv.Itoa(stars), kind).Inc()
}

// RecordStoreOperation records a preference store operation. result is
// "success", "error", or "default" for reads that fell back to a default.
func RecordStoreOperation(operation, result string, duration time.Duration) {
	StoreOperations.WithLabelValues(operation, result).Inc()
	StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordStoreGC records a value log GC run
func RecordStoreGC(duration time.Duration, err error) {
	StoreGCDuration.Observe(duration.Seconds())
	result := "success"
	if err != nil {
		result = "error"
	}
	StoreGCRuns.WithLabelValues(result).Inc()
}

// SetCatalogSize sets the catalog gauges
func SetCatalogSize(restaurants, cuisines int) {
	CatalogRestaurants.Set(float64(restaurants))
	CatalogCuisines.Set(float64(cuisines))
}
