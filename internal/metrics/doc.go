// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

/*
Package metrics provides Prometheus metrics for Platepick.

Metrics are registered on the default registry with promauto and exposed at
/metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: requests (counter)
    Labels: method, endpoint (chi route pattern), status_code
  - api_request_duration_seconds: request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: in-flight requests (gauge)
  - api_rate_limit_hits_total: rejected by the rate limiter (counter)
    Labels: endpoint

Recommendation Metrics:
  - recommendation_duration_seconds: pipeline latency (histogram)
    Labels: mode (diverse, ranked, browse)
  - recommendations_served_total: restaurants returned (counter)
    Labels: mode
  - recommendation_errors_total: failed requests (counter)
    Labels: mode

Rating Metrics:
  - ratings_total: submitted ratings (counter)
    Labels: stars (1-5), kind (new, replacement)

Store Metrics:
  - store_operations_total: preference store operations (counter)
    Labels: operation, result (success, error, default)
  - store_operation_duration_seconds: operation latency (histogram)
    Labels: operation
  - store_gc_runs_total: value log GC runs (counter)
    Labels: result
  - store_gc_duration_seconds: value log GC latency (histogram)

Catalog Metrics:
  - catalog_restaurants: restaurants loaded (gauge)
  - catalog_cuisines: distinct cuisines loaded (gauge)

# Usage

	start := time.Now()
	resp, err := engine.Recommend(ctx, req)
	returned := 0
	if err == nil {
	    returned = len(resp.Items)
	}
	metrics.RecordRecommendation(mode, time.Since(start), returned, err)

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
