// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

/*
Package api provides the HTTP API for Platepick.

Routes are served by a chi router. Every response uses the models.APIResponse
envelope:

	{"status": "success", "data": ..., "metadata": {"timestamp": ..., "query_time_ms": 1}}
	{"status": "error", "data": null, "metadata": {...}, "error": {"code": "NOT_FOUND", "message": "List not found"}}

# Endpoints

Catalog:
  - GET /api/v1/restaurants?cuisine=Thai
  - GET /api/v1/restaurants/{id}
  - GET /api/v1/cuisines

Per user ({userID} matches [A-Za-z0-9._-]{1,128}):
  - GET, POST /api/v1/users/{userID}/ratings
  - GET /api/v1/users/{userID}/ratings/{restaurantID}
  - GET, POST /api/v1/users/{userID}/lists
  - GET, DELETE /api/v1/users/{userID}/lists/{listID}
  - PUT, DELETE /api/v1/users/{userID}/lists/{listID}/restaurants/{restaurantID}
  - GET /api/v1/users/{userID}/preferences
  - DELETE /api/v1/users/{userID}/data
  - GET /api/v1/users/{userID}/recommendations?mode=feed&lat=37.77&lon=-122.42&count=10

Operational:
  - GET /health
  - GET /metrics

# Errors

  - 400 VALIDATION_ERROR: malformed path, query or body
  - 404 NOT_FOUND: unknown restaurant, rating or list
  - 429 RATE_LIMIT_EXCEEDED: per-IP limit on /api/v1
  - 500 STORAGE_ERROR: a preference store write failed
  - 500 RECOMMENDATION_ERROR: the engine rejected the request
*/
package api
