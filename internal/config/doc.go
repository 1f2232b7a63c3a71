// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

/*
Package config provides centralized configuration management for Platepick.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The first existing file among
CONFIG_PATH, config.yaml, config.yml, /etc/platepick/config.yaml and
/etc/platepick/config.yml is used.

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 3858)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: Include file:line (default: false)

Preference Store:
  - STORE_PATH: BadgerDB directory (default: /data/platepick)
  - STORE_IN_MEMORY: Ephemeral in-memory store (default: false)
  - STORE_SYNC_WRITES: fsync every write (default: true)
  - STORE_COMPRESSION: Snappy compression (default: true)
  - STORE_GC_INTERVAL: Value log GC interval, 0 disables (default: 10m)
  - STORE_GC_RATIO: Value log GC discard ratio (default: 0.5)

Catalog:
  - CATALOG_PATH: JSON or YAML restaurant dataset (default: built-in)

Recommendations:
  - RECOMMEND_DEFAULT_COUNT, RECOMMEND_MAX_COUNT, RECOMMEND_MAX_CANDIDATES
  - RECOMMEND_DIVERSITY_ENABLED, RECOMMEND_DIVERSITY_STRATEGY (cuisine, mmr)
  - RECOMMEND_MMR_LAMBDA, RECOMMEND_FEED_MIN_RATINGS

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Window duration (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

# Example YAML

	server:
	  port: 8080
	store:
	  path: /var/lib/platepick
	recommend:
	  diversity_strategy: mmr
	  mmr_lambda: 0.6
	security:
	  cors_origins:
	    - https://app.example.com

# Validation

Load returns an error naming the offending environment variable when a
value is out of range, for example "HTTP_PORT must be between 1 and 65535".
*/
package config
