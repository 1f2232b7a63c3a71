// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

/*
Package middleware provides chi-compatible HTTP middleware for request
tracing and Prometheus instrumentation.

Key Components:

  - RequestID: per-request id in the context, the logging context and the
    X-Request-ID response header
  - PrometheusMetrics: request count, latency and in-flight gauge labelled
    by chi route pattern

Usage:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

Handlers then log with the request id attached:

	logging.Ctx(r.Context()).Info().Msg("Rating saved")
*/
package middleware
